package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/seenhub/seenhub-server/internal/config"
	"github.com/seenhub/seenhub-server/internal/logger"
)

// ProvideConfig loads and validates the application configuration.
func ProvideConfig(_ do.Injector) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvideLogger provides the application logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return logger.New(logger.Config{
		Environment: cfg.App.Environment,
		Level:       logger.ParseLevel(cfg.Logger.Level),
	}), nil
}

// ProvideSlogLogger provides the underlying slog.Logger for packages that
// take the standard type.
func ProvideSlogLogger(i do.Injector) (*slog.Logger, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return log.Logger, nil
}
