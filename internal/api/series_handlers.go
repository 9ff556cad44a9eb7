package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/genre"
	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/service"
)

// createSeriesRequest is the POST /api/series body. Broadcaster is optional;
// plenty of series in the wild have no single broadcaster worth recording.
type createSeriesRequest struct {
	Title         string     `json:"title" validate:"required,max=512"`
	Broadcaster   string     `json:"broadcaster" validate:"max=256"`
	PosterPath    string     `json:"posterPath" validate:"max=1024"`
	Genre         genre.List `json:"genre"`
	CommentID     string     `json:"commentId"`
	IsMasterpiece bool       `json:"isMasterpiece"`
}

// updateSeriesRequest is the PATCH /api/series/{id} body.
type updateSeriesRequest struct {
	Title         *string     `json:"title"`
	Broadcaster   *string     `json:"broadcaster"`
	PosterPath    *string     `json:"posterPath"`
	Genre         *genre.List `json:"genre"`
	CommentID     *string     `json:"commentId"`
	IsMasterpiece *bool       `json:"isMasterpiece"`
}

func (s *Server) handleCreateSeries(w http.ResponseWriter, r *http.Request) {
	var req createSeriesRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := service.ValidateStruct(&req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	series := &domain.Series{
		Title:       req.Title,
		Broadcaster: req.Broadcaster,
		PosterPath:  req.PosterPath,
	}
	series.Genre = req.Genre
	series.CommentID = req.CommentID
	series.IsMasterpiece = req.IsMasterpiece

	created, err := s.seriesService.Create(r.Context(), series)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, created, s.logger)
}

func (s *Server) handleUpdateSeries(w http.ResponseWriter, r *http.Request) {
	var req updateSeriesRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	updated, err := s.seriesService.Update(r.Context(), chi.URLParam(r, "id"), func(sr *domain.Series) {
		if req.Title != nil {
			sr.Title = *req.Title
		}
		if req.Broadcaster != nil {
			sr.Broadcaster = *req.Broadcaster
		}
		if req.PosterPath != nil {
			sr.PosterPath = *req.PosterPath
		}
		if req.Genre != nil {
			sr.Genre = *req.Genre
		}
		if req.CommentID != nil {
			sr.CommentID = *req.CommentID
		}
		if req.IsMasterpiece != nil {
			sr.IsMasterpiece = *req.IsMasterpiece
		}
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.WithMessage(w, updatedMessage(domain.KindSeries), updated, s.logger)
}
