package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/genre"
	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/service"
)

// createMovieRequest is the POST /api/movie body.
type createMovieRequest struct {
	Title         string     `json:"title" validate:"required,max=512"`
	Director      string     `json:"director" validate:"required,max=256"`
	PosterPath    string     `json:"posterPath" validate:"max=1024"`
	Genre         genre.List `json:"genre"`
	CommentID     string     `json:"commentId"`
	IsMasterpiece bool       `json:"isMasterpiece"`
}

// updateMovieRequest is the PATCH /api/movie/{id} body.
type updateMovieRequest struct {
	Title         *string     `json:"title"`
	Director      *string     `json:"director"`
	PosterPath    *string     `json:"posterPath"`
	Genre         *genre.List `json:"genre"`
	CommentID     *string     `json:"commentId"`
	IsMasterpiece *bool       `json:"isMasterpiece"`
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req createMovieRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := service.ValidateStruct(&req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	movie := &domain.Movie{
		Title:      req.Title,
		Director:   req.Director,
		PosterPath: req.PosterPath,
	}
	movie.Genre = req.Genre
	movie.CommentID = req.CommentID
	movie.IsMasterpiece = req.IsMasterpiece

	created, err := s.movieService.Create(r.Context(), movie)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, created, s.logger)
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req updateMovieRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	updated, err := s.movieService.Update(r.Context(), chi.URLParam(r, "id"), func(m *domain.Movie) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Director != nil {
			m.Director = *req.Director
		}
		if req.PosterPath != nil {
			m.PosterPath = *req.PosterPath
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
	response.WithMessage(w, updatedMessage(domain.KindMovie), updated, s.logger)
}
