package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/genre"
	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/service"
)

// createMusicRequest is the POST /api/music body.
type createMusicRequest struct {
	Title         string     `json:"title" validate:"required,max=512"`
	Artist        string     `json:"artist" validate:"required,max=256"`
	MBID          string     `json:"mbid" validate:"max=64"`
	Thumbnail     string     `json:"thumbnail" validate:"max=1024"`
	Genre         genre.List `json:"genre"`
	CommentID     string     `json:"commentId"`
	IsMasterpiece bool       `json:"isMasterpiece"`
}

// updateMusicRequest is the PATCH /api/music/{id} body.
type updateMusicRequest struct {
	Title         *string     `json:"title"`
	Artist        *string     `json:"artist"`
	MBID          *string     `json:"mbid"`
	Thumbnail     *string     `json:"thumbnail"`
	Genre         *genre.List `json:"genre"`
	CommentID     *string     `json:"commentId"`
	IsMasterpiece *bool       `json:"isMasterpiece"`
}

func (s *Server) handleCreateMusic(w http.ResponseWriter, r *http.Request) {
	var req createMusicRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := service.ValidateStruct(&req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	music := &domain.Music{
		Title:     req.Title,
		Artist:    req.Artist,
		MBID:      req.MBID,
		Thumbnail: req.Thumbnail,
	}
	music.Genre = req.Genre
	music.CommentID = req.CommentID
	music.IsMasterpiece = req.IsMasterpiece

	created, err := s.musicService.Create(r.Context(), music)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, created, s.logger)
}

func (s *Server) handleUpdateMusic(w http.ResponseWriter, r *http.Request) {
	var req updateMusicRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	updated, err := s.musicService.Update(r.Context(), chi.URLParam(r, "id"), func(m *domain.Music) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Artist != nil {
			m.Artist = *req.Artist
		}
		if req.MBID != nil {
			m.MBID = *req.MBID
		}
		if req.Thumbnail != nil {
			m.Thumbnail = *req.Thumbnail
		}
		if req.Genre != nil {
			m.Genre = *req.Genre
		}
		if req.CommentID != nil {
			m.CommentID = *req.CommentID
		}
		if req.IsMasterpiece != nil {
			m.IsMasterpiece = *req.IsMasterpiece
		}
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.WithMessage(w, updatedMessage(domain.KindMusic), updated, s.logger)
}
