package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/dig"

	"github.com/seoscope/seoscope/internal/cache/memory"
	cacheredis "github.com/seoscope/seoscope/internal/cache/redis"
	"github.com/seoscope/seoscope/internal/config"
	"github.com/seoscope/seoscope/internal/domain"
	"github.com/seoscope/seoscope/internal/extract"
	"github.com/seoscope/seoscope/internal/http"
	"github.com/seoscope/seoscope/internal/http/middleware"
	"github.com/seoscope/seoscope/internal/observability"
	"github.com/seoscope/seoscope/internal/provider/openai"
	"github.com/seoscope/seoscope/internal/provider/registry"
	"github.com/seoscope/seoscope/internal/provider/static"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

//nolint:funlen // Container wiring is a flat list of providers.
func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Extraction and scoring
	if err := container.Provide(func() domain.Extractor {
		return extract.New()
	}); err != nil {
		log.Fatalf("Failed to provide extractor: %v", err)
	}
	if err := container.Provide(domain.NewScoringEngine); err != nil {
		log.Fatalf("Failed to provide scoring engine: %v", err)
	}

	// Result cache, selected by backend
	if err := container.Provide(newResultCache); err != nil {
		log.Fatalf("Failed to provide result cache: %v", err)
	}

	// Suggestion provider registry
	if err := container.Provide(func() domain.ProviderRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// OpenAI provider, optional: nil when no API key is configured so
	// resolution never fails for consumers that can run without it.
	if err := container.Provide(func(cfg *config.Config) (*openai.Provider, error) {
		if cfg.OpenAI.APIKey == "" {
			return nil, nil
		}
		return openai.NewProvider(cfg.OpenAI)
	}); err != nil {
		log.Fatalf("Failed to provide OpenAI provider: %v", err)
	}

	// Register providers with registry (invoked for side effects)
	if err := container.Invoke(func(
		reg domain.ProviderRegistry,
		openaiProvider *openai.Provider,
	) error {
		ctx := context.Background()

		// The static provider is always available for dev and tests.
		if err := reg.Register(ctx, static.NewProvider()); err != nil {
			return fmt.Errorf("failed to register static provider: %w", err)
		}

		if openaiProvider != nil {
			if err := reg.Register(ctx, openaiProvider); err != nil {
				return fmt.Errorf("failed to register OpenAI provider: %w", err)
			}
		}

		return nil
	}); err != nil {
		log.Fatalf("Failed to register providers: %v", err)
	}

	// Analyzer service
	if err := container.Provide(func(
		extractor domain.Extractor,
		engine *domain.ScoringEngine,
		cache domain.ResultCache,
		reg domain.ProviderRegistry,
		cfg *config.Config,
	) *domain.AnalyzerService {
		return domain.NewAnalyzerService(extractor, engine, cache, reg, domain.AnalyzerConfig{
			MaxContentLength: cfg.Analyzer.MaxContentLength,
			Concurrency:      cfg.Analyzer.Concurrency,
			CacheTTL:         time.Duration(cfg.Cache.DefaultTTL) * time.Second,
			Provider:         cfg.Analyzer.Provider,
		})
	}); err != nil {
		log.Fatalf("Failed to provide analyzer service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(cfg *config.Config) middleware.Middleware {
		return middleware.BuildMiddlewareChain(&cfg.CORS, &cfg.RateLimit)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// newResultCache builds the configured cache backend. "none" disables
// caching entirely.
func newResultCache(cfg *config.Config) (domain.ResultCache, error) {
	switch cfg.Cache.Backend {
	case "memory", "":
		return memory.New(memory.Config{
			MaxSize:       cfg.Cache.MaxSize,
			DefaultTTL:    time.Duration(cfg.Cache.DefaultTTL) * time.Second,
			TrackStats:    cfg.Cache.TrackStats,
			SweepInterval: time.Duration(cfg.Cache.SweepInterval) * time.Second,
		}), nil
	case "redis":
		return cacheredis.New(cfg.Redis), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}
