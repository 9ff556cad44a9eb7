// Package api provides the HTTP API server and handlers for the SeenHub
// application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/metadata/kakao"
	"github.com/seenhub/seenhub-server/internal/metadata/lastfm"
	"github.com/seenhub/seenhub-server/internal/metadata/tmdb"
	"github.com/seenhub/seenhub-server/internal/service"
	"github.com/seenhub/seenhub-server/internal/store"
)

// MetadataClients groups the external search clients used to prefill entry
// forms. Any of them may be disabled when its API key is not configured.
type MetadataClients struct {
	Books  *kakao.Client
	Screen *tmdb.Client
	Music  *lastfm.Client
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store         *store.Store
	authService   *service.AuthService
	bookService   *service.BookService
	movieService  *service.MovieService
	musicService  *service.MusicService
	seriesService *service.SeriesService
	reviewService *service.ReviewService
	searchService *service.SearchService
	metadata      MetadataClients
	secureCookies bool
	router        *chi.Mux
	logger        *slog.Logger
}

// Options bundles the server's dependencies.
type Options struct {
	Store         *store.Store
	AuthService   *service.AuthService
	BookService   *service.BookService
	MovieService  *service.MovieService
	MusicService  *service.MusicService
	SeriesService *service.SeriesService
	ReviewService *service.ReviewService
	SearchService *service.SearchService
	Metadata      MetadataClients

	// SecureCookies marks session cookies Secure; enabled in production.
	SecureCookies bool

	Logger *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(opts Options) *Server {
	s := &Server{
		store:         opts.Store,
		authService:   opts.AuthService,
		bookService:   opts.BookService,
		movieService:  opts.MovieService,
		musicService:  opts.MusicService,
		seriesService: opts.SeriesService,
		reviewService: opts.ReviewService,
		searchService: opts.SearchService,
		metadata:      opts.Metadata,
		secureCookies: opts.SecureCookies,
		router:        chi.NewRouter(),
		logger:        opts.Logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(_ *http.Request, _ string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api", func(r chi.Router) {
		// Catalogs. Reads are public, writes need a session.
		registerCatalog(r, s, "book", s.bookService, s.handleCreateBook, s.handleUpdateBook)
		registerCatalog(r, s, "movie", s.movieService, s.handleCreateMovie, s.handleUpdateMovie)
		registerCatalog(r, s, "music", s.musicService, s.handleCreateMusic, s.handleUpdateMusic)
		registerCatalog(r, s, "series", s.seriesService, s.handleCreateSeries, s.handleUpdateSeries)

		// Sessions.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/", s.handleLogin)
			r.Delete("/", s.handleLogout)
		})

		// Accounts.
		r.Route("/user", func(r chi.Router) {
			r.Post("/", s.handleRegister)
			r.Get("/", s.handleSession)
			r.With(s.requireAuth).Delete("/", s.handleDeleteAccount)
		})

		// Reviews.
		r.Route("/review", func(r chi.Router) {
			r.Get("/{id}", s.handleGetReview)
			r.With(s.requireAuth).Post("/", s.handleCreateReview)
			r.With(s.requireAuth).Patch("/{id}", s.handleUpdateReview)
			r.With(s.requireAuth).Delete("/{id}", s.handleDeleteReview)
		})

		// Metadata enrichment proxies.
		r.Route("/metadata", func(r chi.Router) {
			r.Get("/book", s.handleMetadataBook)
			r.Get("/movie", s.handleMetadataMovie)
			r.Get("/series", s.handleMetadataSeries)
			r.Get("/music", s.handleMetadataMusic)
		})

		// Catalog search.
		r.Get("/search", s.handleSearch)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
