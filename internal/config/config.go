package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/seoscope/seoscope/internal/cache/redis"
	"github.com/seoscope/seoscope/internal/provider/openai"
)

// Config represents the service configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Cache     CacheConfig
	Redis     redis.Config
	OpenAI    openai.Config
	Analyzer  AnalyzerConfig
	RateLimit RateLimitConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// CacheConfig selects and sizes the result cache.
type CacheConfig struct {
	// Backend is "memory", "redis" or "none".
	Backend       string `env:"CACHE_BACKEND"        envDefault:"memory"`
	MaxSize       int    `env:"CACHE_MAX_SIZE"       envDefault:"1000"`
	DefaultTTL    int    `env:"CACHE_DEFAULT_TTL"    envDefault:"3600"` // seconds, 0 = never expires
	TrackStats    bool   `env:"CACHE_TRACK_STATS"    envDefault:"true"`
	SweepInterval int    `env:"CACHE_SWEEP_INTERVAL" envDefault:"60"` // seconds, 0 = no background sweep
}

// AnalyzerConfig contains analysis pipeline settings.
type AnalyzerConfig struct {
	MaxContentLength int    `env:"ANALYZER_MAX_CONTENT_LENGTH" envDefault:"100000"`
	Concurrency      int    `env:"ANALYZER_CONCURRENCY"        envDefault:"4"`
	Provider         string `env:"SUGGESTION_PROVIDER"         envDefault:""`
}

// RateLimitConfig contains request rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS"     envDefault:"20"`
	Burst             int     `env:"RATE_LIMIT_BURST"   envDefault:"40"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	Server    *ServerConfig
	CORS      *CORSConfig
	Cache     *CacheConfig
	Redis     *redis.Config
	OpenAI    *openai.Config
	Analyzer  *AnalyzerConfig
	RateLimit *RateLimitConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Server:    &cfg.Server,
		CORS:      &cfg.CORS,
		Cache:     &cfg.Cache,
		Redis:     &cfg.Redis,
		OpenAI:    &cfg.OpenAI,
		Analyzer:  &cfg.Analyzer,
		RateLimit: &cfg.RateLimit,
	}
}
