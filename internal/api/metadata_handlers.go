package api

import (
	"errors"
	"net/http"

	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/metadata/kakao"
	"github.com/seenhub/seenhub-server/internal/metadata/lastfm"
	"github.com/seenhub/seenhub-server/internal/metadata/tmdb"
)

// metadataQuery extracts and checks the query parameter shared by all
// metadata endpoints.
func metadataQuery(w http.ResponseWriter, r *http.Request, s *Server) (string, bool) {
	query := r.URL.Query().Get("query")
	if query == "" {
		response.BadRequest(w, "query is required", s.logger)
		return "", false
	}
	return query, true
}

// metadataError maps upstream failures. A missing API key means the feature
// is switched off, anything else is an upstream fault.
func (s *Server) metadataError(w http.ResponseWriter, err error, provider string) {
	if errors.Is(err, kakao.ErrNoAPIKey) || errors.Is(err, tmdb.ErrNoAPIKey) || errors.Is(err, lastfm.ErrNoAPIKey) {
		response.Error(w, http.StatusServiceUnavailable, provider+" metadata search is not configured", s.logger)
		return
	}
	s.logger.Warn("metadata lookup failed", "provider", provider, "error", err)
	response.Error(w, http.StatusBadGateway, provider+" metadata lookup failed", s.logger)
}

func (s *Server) handleMetadataBook(w http.ResponseWriter, r *http.Request) {
	query, ok := metadataQuery(w, r, s)
	if !ok {
		return
	}

	results, err := s.metadata.Books.SearchBooks(r.Context(), query)
	if err != nil {
		s.metadataError(w, err, "book")
		return
	}
	response.Success(w, results, s.logger)
}

func (s *Server) handleMetadataMovie(w http.ResponseWriter, r *http.Request) {
	query, ok := metadataQuery(w, r, s)
	if !ok {
		return
	}

	results, err := s.metadata.Screen.SearchMovies(r.Context(), query)
	if err != nil {
		s.metadataError(w, err, "movie")
		return
	}
	response.Success(w, results, s.logger)
}

func (s *Server) handleMetadataSeries(w http.ResponseWriter, r *http.Request) {
	query, ok := metadataQuery(w, r, s)
	if !ok {
		return
	}

	results, err := s.metadata.Screen.SearchSeries(r.Context(), query)
	if err != nil {
		s.metadataError(w, err, "series")
		return
	}
	response.Success(w, results, s.logger)
}

func (s *Server) handleMetadataMusic(w http.ResponseWriter, r *http.Request) {
	query, ok := metadataQuery(w, r, s)
	if !ok {
		return
	}

	results, err := s.metadata.Music.SearchAlbums(r.Context(), query)
	if err != nil {
		s.metadataError(w, err, "music")
		return
	}
	response.Success(w, results, s.logger)
}
