package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/seoscope/seoscope/internal/observability"
)

const (
	defaultMaxContentLength = 100_000
	defaultConcurrency      = 4
	maxKeywords             = 10
)

// AnalyzerConfig controls analyzer behavior. Updates apply on the next
// Analyze call only; in-flight analyses keep the snapshot they started
// with.
type AnalyzerConfig struct {
	// MaxContentLength rejects oversized content before any extraction
	// or cache work.
	MaxContentLength int

	// Concurrency bounds simultaneous in-flight analyses in batch mode
	// when the caller does not override it.
	Concurrency int

	// CacheTTL is the TTL passed on cache write-back. Zero means the
	// store default.
	CacheTTL time.Duration

	// Provider names the suggestion provider to use. Empty disables AI
	// augmentation.
	Provider string
}

// DefaultAnalyzerConfig returns the standard configuration.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxContentLength: defaultMaxContentLength,
		Concurrency:      defaultConcurrency,
	}
}

// ConfigPatch replaces analyzer configuration fields by shallow merge.
// Nil fields are left unchanged.
type ConfigPatch struct {
	MaxContentLength *int
	Concurrency      *int
	CacheTTL         *time.Duration
	Provider         *string
}

// BatchOptions tune one AnalyzeBatch call.
type BatchOptions struct {
	// Concurrency bounds in-flight analyses. Values <= 0 fall back to
	// the configured default, clamped to at least 1.
	Concurrency int

	// Fast selects the reduced scoring profile and skips AI
	// augmentation.
	Fast bool
}

// AnalyzerService is the facade callers use. It wraps the extractor
// and scoring engine, consults the cache when one is configured, and
// exposes single-document and bounded-concurrency batch analysis.
type AnalyzerService struct {
	extractor Extractor
	engine    *ScoringEngine
	cache     ResultCache      // nil disables caching
	registry  ProviderRegistry // nil disables AI suggestions

	mu  sync.RWMutex
	cfg AnalyzerConfig

	// Coalesces concurrent analyses of identical content so the
	// pipeline runs once per key.
	group singleflight.Group
}

// NewAnalyzerService creates the analyzer (DI constructor). cache and
// registry may be nil.
func NewAnalyzerService(
	extractor Extractor,
	engine *ScoringEngine,
	cache ResultCache,
	registry ProviderRegistry,
	cfg AnalyzerConfig,
) *AnalyzerService {
	if cfg.MaxContentLength <= 0 {
		cfg.MaxContentLength = defaultMaxContentLength
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}

	return &AnalyzerService{
		extractor: extractor,
		engine:    engine,
		cache:     cache,
		registry:  registry,
		cfg:       cfg,
	}
}

// Analyze runs the full pipeline for one document: validate, consult
// the cache, extract, score, assemble, write back.
func (s *AnalyzerService) Analyze(ctx context.Context, content string) (*AnalysisResult, error) {
	return s.analyze(ctx, content, ProfileFull)
}

func (s *AnalyzerService) analyze(ctx context.Context, content string, profile Profile) (*AnalysisResult, error) {
	cfg := s.configSnapshot()

	// Validation happens before any cache or extraction work; rejected
	// content is never cached.
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > cfg.MaxContentLength {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrContentTooLarge, len(content), cfg.MaxContentLength)
	}

	logger := observability.FromContext(ctx)
	key := ResultKey(content, serializeConfig(cfg, profile))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil && !errors.Is(err, ErrCacheMiss) {
			logger.Warn("cache get failed, continuing without cache",
				observability.Error(err))
		}
		if cached != nil {
			logger.Debug("analysis cache hit",
				observability.String("cache_key", key))
			return cached, nil
		}
	}

	result, _, _ := s.group.Do(key, func() (interface{}, error) {
		res := s.compute(ctx, content, profile)

		if s.cache != nil {
			if setErr := s.cache.Set(ctx, key, res, cfg.CacheTTL); setErr != nil {
				logger.Warn("cache write-back failed",
					observability.Error(setErr),
					observability.String("cache_key", key))
			}
		}

		return res, nil
	})

	return result.(*AnalysisResult), nil
}

// compute runs extraction and scoring. It never fails: the extractor
// is tolerant and the engine skips defective rules.
func (s *AnalyzerService) compute(ctx context.Context, content string, profile Profile) *AnalysisResult {
	metrics := s.extractor.Extract(content)
	score, recs := s.engine.Evaluate(ctx, metrics, profile)

	return &AnalysisResult{
		Metrics:         metrics,
		Keywords:        topKeywords(metrics.KeywordDensity),
		Score:           score,
		Recommendations: recs,
		AnalyzedAt:      time.Now().UTC(),
	}
}

// AnalyzeBatch fans items through the pipeline under an admission gate
// bounding in-flight analyses. One item's failure never aborts or
// blocks the others; the returned slice has one entry per input item,
// aligned to input order.
func (s *AnalyzerService) AnalyzeBatch(ctx context.Context, items []BatchItem, opts BatchOptions) []BatchResult {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = s.configSnapshot().Concurrency
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	profile := ProfileFull
	if opts.Fast {
		profile = ProfileFast
	}

	sem := semaphore.NewWeighted(int64(concurrency))
	results := make([]BatchResult, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}

		wg.Add(1)
		go func(i int, id, content string) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = BatchResult{ID: id, Err: err}
				return
			}
			defer sem.Release(1)

			itemCtx := observability.WithItemID(ctx, id)
			res, err := s.analyze(itemCtx, content, profile)
			results[i] = BatchResult{ID: id, Result: res, Err: err}
		}(i, id, item.Content)
	}
	wg.Wait()

	return results
}

// GenerateSuggestions asks the configured suggestion provider for
// supplementary recommendations. AI augmentation is best-effort: an
// absent provider or any provider failure yields an empty list, never
// an error.
func (s *AnalyzerService) GenerateSuggestions(
	ctx context.Context,
	analysis *AnalysisResult,
	suggestionType SuggestionType,
) []Recommendation {
	logger := observability.FromContext(ctx)

	if analysis == nil {
		return []Recommendation{}
	}

	providerName := s.configSnapshot().Provider
	if s.registry == nil || providerName == "" {
		logger.Debug("no suggestion provider configured, skipping AI suggestions")
		return []Recommendation{}
	}

	provider, err := s.registry.Get(ctx, providerName)
	if err != nil {
		logger.Warn("suggestion provider lookup failed",
			observability.String("provider", providerName),
			observability.Error(err))
		return []Recommendation{}
	}

	ctx = observability.WithProvider(ctx, provider.Name())
	recs, err := provider.Suggest(ctx, analysis, suggestionType)
	if err != nil {
		logger.Warn("suggestion provider failed, returning no suggestions",
			observability.Error(err))
		return []Recommendation{}
	}

	return SortRecommendations(recs)
}

// UpdateConfig applies a shallow merge over the current configuration.
// The change takes effect on the next Analyze call.
func (s *AnalyzerService) UpdateConfig(patch ConfigPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.MaxContentLength != nil && *patch.MaxContentLength > 0 {
		s.cfg.MaxContentLength = *patch.MaxContentLength
	}
	if patch.Concurrency != nil {
		s.cfg.Concurrency = *patch.Concurrency
		if s.cfg.Concurrency <= 0 {
			s.cfg.Concurrency = 1
		}
	}
	if patch.CacheTTL != nil {
		s.cfg.CacheTTL = *patch.CacheTTL
	}
	if patch.Provider != nil {
		s.cfg.Provider = *patch.Provider
	}
}

// Config returns the current configuration snapshot.
func (s *AnalyzerService) Config() AnalyzerConfig {
	return s.configSnapshot()
}

// CacheStats exposes the cache counters, or nil when no cache is
// configured or stats tracking is disabled.
func (s *AnalyzerService) CacheStats() *CacheStats {
	if s.cache == nil {
		return nil
	}
	return s.cache.Stats()
}

// ClearCache drops all cached results.
func (s *AnalyzerService) ClearCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Clear(ctx)
	}
}

func (s *AnalyzerService) configSnapshot() AnalyzerConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// serializeConfig renders the result-affecting configuration fields
// into the cache key discriminator.
func serializeConfig(cfg AnalyzerConfig, profile Profile) string {
	return fmt.Sprintf("v1|max=%d|profile=%s", cfg.MaxContentLength, profile)
}

// topKeywords returns the highest-density keywords, density
// descending with alphabetical ties, capped at ten.
func topKeywords(density map[string]float64) []string {
	if len(density) == 0 {
		return nil
	}

	keywords := make([]string, 0, len(density))
	for kw := range density {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if density[keywords[i]] != density[keywords[j]] {
			return density[keywords[i]] > density[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
