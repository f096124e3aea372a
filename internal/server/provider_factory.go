package server

import (
	"log/slog"
	"net/http"

	"espn-scores-service/internal/config"
	"espn-scores-service/internal/metrics"
	"espn-scores-service/internal/providers"
	"espn-scores-service/internal/providers/espn"
	"espn-scores-service/internal/providers/fixture"
)

// providerFactory assembles the provider with the shared logging/metrics wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.Provider {
	base := selectProvider(cfg, f.logger)
	return providers.NewLoggingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.Provider {
	switch cfg.Provider {
	case "espn", "":
		var client *http.Client
		if cfg.ESPN.Timeout > 0 {
			client = &http.Client{Timeout: cfg.ESPN.Timeout}
		}
		return espn.NewClient(espn.Config{
			BaseURL:    cfg.ESPN.BaseURL,
			UserAgent:  cfg.ESPN.UserAgent,
			HTTPClient: client,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
