package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/seenhub/seenhub-server/internal/api"
	"github.com/seenhub/seenhub-server/internal/config"
	"github.com/seenhub/seenhub-server/internal/logger"
	"github.com/seenhub/seenhub-server/internal/metadata/kakao"
	"github.com/seenhub/seenhub-server/internal/metadata/lastfm"
	"github.com/seenhub/seenhub-server/internal/metadata/tmdb"
	"github.com/seenhub/seenhub-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	handler := api.NewServer(api.Options{
		Store:         storeHandle.Store,
		AuthService:   do.MustInvoke[*service.AuthService](i),
		BookService:   do.MustInvoke[*service.BookService](i),
		MovieService:  do.MustInvoke[*service.MovieService](i),
		MusicService:  do.MustInvoke[*service.MusicService](i),
		SeriesService: do.MustInvoke[*service.SeriesService](i),
		ReviewService: do.MustInvoke[*service.ReviewService](i),
		SearchService: do.MustInvoke[*service.SearchService](i),
		Metadata: api.MetadataClients{
			Books:  do.MustInvoke[*kakao.Client](i),
			Screen: do.MustInvoke[*tmdb.Client](i),
			Music:  do.MustInvoke[*lastfm.Client](i),
		},
		SecureCookies: cfg.App.Environment == "production",
		Logger:        log.Logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
