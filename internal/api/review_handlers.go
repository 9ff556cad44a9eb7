package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/service"
)

// handleCreateReview stores a new review comment. The caller links it to a
// catalog entry afterwards by patching the entry's commentId.
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req service.CreateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	review, err := s.reviewService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, review, s.logger)
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	review, err := s.reviewService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, review, s.logger)
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	var req service.CreateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	review, err := s.reviewService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.WithMessage(w, "review updated", review, s.logger)
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := s.reviewService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, map[string]string{
		"message": "review deleted",
	}, s.logger)
}
