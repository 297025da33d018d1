package domain

import (
	"context"
	"time"
)

// Extractor turns raw content into metrics. Implementations must be
// tolerant: no failure on empty, malformed, or multi-byte input.
type Extractor interface {
	// Extract computes metrics for the given content.
	Extract(content string) Metrics
}

// ResultCache stores analysis results under deterministic keys.
// Any backend is pluggable as long as it honors TTL, eviction and
// stats semantics. Implementations own their values: callers always
// receive independent copies.
type ResultCache interface {
	// Get returns the cached result for key, or ErrCacheMiss when the
	// key is absent or expired.
	Get(ctx context.Context, key string) (*AnalysisResult, error)

	// Set stores a result. A ttl of 0 means "use the store default";
	// a store default of 0 means the entry never expires.
	Set(ctx context.Context, key string, result *AnalysisResult, ttl time.Duration) error

	// Delete removes a key, reporting whether it existed.
	Delete(ctx context.Context, key string) bool

	// Has reports whether a live (non-expired) entry exists for key.
	Has(ctx context.Context, key string) bool

	// Clear removes all entries and resets stats.
	Clear(ctx context.Context)

	// Stats returns a snapshot of the counters, or nil when stats
	// tracking is disabled.
	Stats() *CacheStats

	// Close releases timers and resources. Idempotent.
	Close() error
}

// SuggestionProvider generates supplementary recommendations for an
// existing analysis. Calls may fail or time out; callers treat any
// failure as "no suggestions".
type SuggestionProvider interface {
	// Suggest returns AI-generated recommendations for the analysis.
	Suggest(ctx context.Context, analysis *AnalysisResult, suggestionType SuggestionType) ([]Recommendation, error)

	// Name returns the provider identifier.
	Name() string
}

// ProviderRegistry manages available suggestion providers.
type ProviderRegistry interface {
	// Register adds a provider to the registry.
	Register(ctx context.Context, provider SuggestionProvider) error

	// Get retrieves a provider by name.
	Get(ctx context.Context, providerName string) (SuggestionProvider, error)

	// List returns all available provider names.
	List(ctx context.Context) ([]string, error)
}
