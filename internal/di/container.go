// Package di provides dependency injection configuration for the SeenHub server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/seenhub/seenhub-server/internal/auth"
	"github.com/seenhub/seenhub-server/internal/config"
	"github.com/seenhub/seenhub-server/internal/di/providers"
	"github.com/seenhub/seenhub-server/internal/logger"
	"github.com/seenhub/seenhub-server/internal/metadata/kakao"
	"github.com/seenhub/seenhub-server/internal/metadata/lastfm"
	"github.com/seenhub/seenhub-server/internal/metadata/tmdb"
	"github.com/seenhub/seenhub-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Metadata layer
	do.Provide(injector, providers.ProvideKakaoClient)
	do.Provide(injector, providers.ProvideTMDBClient)
	do.Provide(injector, providers.ProvideLastFMClient)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideMovieService)
	do.Provide(injector, providers.ProvideMusicService)
	do.Provide(injector, providers.ProvideSeriesService)
	do.Provide(injector, providers.ProvideReviewService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle
// management. This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*kakao.Client](injector)
	_ = do.MustInvoke[*tmdb.Client](injector)
	_ = do.MustInvoke[*lastfm.Client](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)

	// Business services
	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.BookService](injector)
	_ = do.MustInvoke[*service.MovieService](injector)
	_ = do.MustInvoke[*service.MusicService](injector)
	_ = do.MustInvoke[*service.SeriesService](injector)
	_ = do.MustInvoke[*service.ReviewService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Repopulate the index when it came up empty against a populated store.
	providers.TriggerSearchReindexIfNeeded(injector)

	return nil
}
