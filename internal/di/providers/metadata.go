package providers

import (
	"github.com/samber/do/v2"

	"github.com/seenhub/seenhub-server/internal/config"
	"github.com/seenhub/seenhub-server/internal/logger"
	"github.com/seenhub/seenhub-server/internal/metadata/kakao"
	"github.com/seenhub/seenhub-server/internal/metadata/lastfm"
	"github.com/seenhub/seenhub-server/internal/metadata/tmdb"
)

// ProvideKakaoClient provides the Kakao book search client.
func ProvideKakaoClient(i do.Injector) (*kakao.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := kakao.NewClient(cfg.Metadata.KakaoRESTAPIKey, log.Logger)
	if !client.Enabled() {
		log.Warn("Kakao book metadata disabled, no API key configured")
	}
	return client, nil
}

// ProvideTMDBClient provides the TMDB movie and TV search client.
func ProvideTMDBClient(i do.Injector) (*tmdb.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := tmdb.NewClient(cfg.Metadata.TMDBAPIKey, log.Logger)
	if !client.Enabled() {
		log.Warn("TMDB metadata disabled, no API key configured")
	}
	return client, nil
}

// ProvideLastFMClient provides the Last.fm album search client.
func ProvideLastFMClient(i do.Injector) (*lastfm.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := lastfm.NewClient(cfg.Metadata.LastFMAPIKey, log.Logger)
	if !client.Enabled() {
		log.Warn("Last.fm metadata disabled, no API key configured")
	}
	return client, nil
}
