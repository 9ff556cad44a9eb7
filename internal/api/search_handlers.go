package api

import (
	"net/http"

	"github.com/seenhub/seenhub-server/internal/http/response"
)

// handleSearch runs a full-text catalog search. An empty kind searches every
// catalog.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	kind := r.URL.Query().Get("kind")

	result, err := s.searchService.Search(r.Context(), query, kind)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, result, s.logger)
}
