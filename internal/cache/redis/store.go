// Package redis provides a Redis-backed analysis result cache. TTL is
// enforced by Redis itself; capacity eviction is delegated to the
// server's maxmemory policy, so the evictions counter stays at zero.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seoscope/seoscope/internal/domain"
	"github.com/seoscope/seoscope/internal/observability"
)

const scanBatchSize = 100

// Config controls one Redis store.
type Config struct {
	Addr       string `env:"REDIS_ADDR"        envDefault:"localhost:6379"`
	Password   string `env:"REDIS_PASSWORD"    envDefault:""`
	DB         int    `env:"REDIS_DB"          envDefault:"0"`
	DefaultTTL int    `env:"REDIS_DEFAULT_TTL" envDefault:"3600"` // seconds, 0 = never expires
	TrackStats bool   `env:"REDIS_TRACK_STATS" envDefault:"true"`
}

// Store implements domain.ResultCache on top of Redis. Hit, miss and
// set counters are tracked client-side; they cover this process only.
type Store struct {
	client     *redis.Client
	defaultTTL time.Duration
	trackStats bool
	keyPrefix  string

	mu    sync.Mutex
	stats domain.CacheStats

	closeOnce sync.Once
	closeErr  error
}

var _ domain.ResultCache = (*Store)(nil)

// New creates a store over a dedicated Redis client.
func New(cfg Config) *Store {
	return newWithClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), cfg)
}

func newWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client:     client,
		defaultTTL: time.Duration(cfg.DefaultTTL) * time.Second,
		trackStats: cfg.TrackStats,
		keyPrefix:  "seo:",
	}
}

// Get returns the cached result for key, or domain.ErrCacheMiss when
// absent or expired. Backend failures surface as errors so callers can
// degrade to a miss.
func (s *Store) Get(ctx context.Context, key string) (*domain.AnalysisResult, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		s.count(func(st *domain.CacheStats) { st.Misses++ })
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		// A corrupt entry behaves as a miss; drop it so the next write
		// replaces it.
		observability.FromContext(ctx).Warn("dropping corrupt cache entry",
			observability.String("cache_key", key),
			observability.Error(err))
		s.client.Del(ctx, key)
		s.count(func(st *domain.CacheStats) { st.Misses++ })
		return nil, domain.ErrCacheMiss
	}

	s.count(func(st *domain.CacheStats) { st.Hits++ })
	return &result, nil
}

// Set stores the result. A ttl of 0 uses the store default; a default
// of 0 stores without expiry.
func (s *Store) Set(ctx context.Context, key string, result *domain.AnalysisResult, ttl time.Duration) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	s.count(func(st *domain.CacheStats) { st.Sets++ })
	return nil
}

// Delete removes a key, reporting whether it existed.
func (s *Store) Delete(ctx context.Context, key string) bool {
	deleted, err := s.client.Del(ctx, key).Result()
	return err == nil && deleted > 0
}

// Has reports whether a live entry exists for key.
func (s *Store) Has(ctx context.Context, key string) bool {
	exists, err := s.client.Exists(ctx, key).Result()
	return err == nil && exists > 0
}

// Clear removes all entries under the store's namespace and resets the
// client-side stats.
func (s *Store) Clear(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			observability.FromContext(ctx).Warn("cache clear scan failed",
				observability.Error(err))
			break
		}
		if len(keys) > 0 {
			s.client.Del(ctx, keys...)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	s.mu.Lock()
	s.stats = domain.CacheStats{}
	s.mu.Unlock()
}

// Stats returns a snapshot of the client-side counters, or nil when
// stats tracking is disabled. Size counts only this store's namespaced
// keys, so a shared database does not inflate it.
func (s *Store) Stats() *domain.CacheStats {
	if !s.trackStats {
		return nil
	}

	s.mu.Lock()
	snapshot := s.stats
	s.mu.Unlock()

	if size, err := s.countKeys(context.Background()); err == nil {
		snapshot.Size = size
	}
	return &snapshot
}

// countKeys walks the store's namespace with SCAN and counts entries.
func (s *Store) countKeys(ctx context.Context) (int64, error) {
	var cursor uint64
	var count int64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return 0, err
		}
		count += int64(len(keys))
		cursor = next
		if cursor == 0 {
			return count, nil
		}
	}
}

// Close releases the underlying client. Idempotent.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.client.Close()
	})
	return s.closeErr
}

func (s *Store) count(update func(*domain.CacheStats)) {
	if !s.trackStats {
		return
	}
	s.mu.Lock()
	update(&s.stats)
	s.mu.Unlock()
}
