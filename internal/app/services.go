package app

import (
	"context"

	"octofit/internal/api"
	"octofit/internal/config"
	"octofit/internal/metrics"
	"octofit/pkg/logging"
)

// Services holds the initialized API client and optional metrics endpoint.
type Services struct {
	Client        api.Client
	BaseURLSource config.BaseURLSource
	Metrics       *metrics.Server

	stopMetrics context.CancelFunc
}

// InitializeServices resolves the base URL once and builds the client.
func InitializeServices(cfg *Config) (*Services, error) {
	octo := cfg.OctofitConfig
	baseURL, source := config.ResolveBaseURL(*octo, cfg.APIURL)
	logging.Info("Bootstrap", "Using OctoFit API at %s (source: %s)", baseURL, source)

	client := api.NewClient(baseURL,
		api.WithTimeout(octo.API.RequestTimeout),
		api.WithRateLimiter(octo.API.RateLimit),
	)

	services := &Services{
		Client:        client,
		BaseURLSource: source,
	}

	if addr := cfg.metricsAddr(); addr != "" {
		services.startMetrics(addr)
	}
	return services, nil
}

func (s *Services) startMetrics(addr string) {
	ctx, cancel := context.WithCancel(context.Background())
	s.Metrics = metrics.NewServer(addr)
	s.stopMetrics = cancel

	go func() {
		if err := s.Metrics.Start(ctx); err != nil {
			logging.Error("Bootstrap", err, "Metrics server stopped")
		}
	}()
	s.Metrics.SetReady(true)
}

// Stop shuts down background servers.
func (s *Services) Stop() {
	if s.stopMetrics != nil {
		s.Metrics.SetReady(false)
		s.stopMetrics()
		s.stopMetrics = nil
	}
}
