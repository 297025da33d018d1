// Package memory provides an in-memory analysis result cache with TTL
// expiry, LRU capacity eviction and optional stats tracking.
package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/seoscope/seoscope/internal/domain"
)

// Config controls one store instance.
type Config struct {
	// MaxSize bounds the number of live entries. Zero means unbounded.
	MaxSize int

	// DefaultTTL applies to Set calls with ttl 0. Zero means entries
	// never expire.
	DefaultTTL time.Duration

	// TrackStats enables hit/miss/set/eviction counters. When false,
	// Stats returns nil.
	TrackStats bool

	// SweepInterval is how often the background sweep removes expired
	// entries. Zero disables the sweep; expiry is still enforced
	// lazily on read.
	SweepInterval time.Duration
}

type entry struct {
	key       string
	value     *domain.AnalysisResult
	createdAt time.Time
	expiresAt time.Time // zero = never expires
	element   *list.Element
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Store is a thread-safe in-memory cache with LRU eviction and TTL
// expiration. All operations are O(1) amortized: a map index plus a
// doubly linked recency list, no full scans on the hot path.
//
// The store owns its values: results are deep-copied on Set and Get so
// no caller can mutate cached state through a returned reference.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	lru     *list.List // front = most recently used
	stats   domain.CacheStats
	cfg     Config

	done      chan struct{}
	closeOnce sync.Once
}

var _ domain.ResultCache = (*Store)(nil)

// New creates a store and starts the background sweep when configured.
func New(cfg Config) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		lru:     list.New(),
		cfg:     cfg,
		done:    make(chan struct{}),
	}

	if cfg.SweepInterval > 0 {
		go s.sweepLoop()
	}

	return s
}

// Get returns a copy of the cached result, updating recency. Expired
// entries are physically removed and count as misses.
func (s *Store) Get(_ context.Context, key string) (*domain.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[key]
	if !exists {
		s.stats.Misses++
		return nil, domain.ErrCacheMiss
	}

	if e.expired(time.Now()) {
		s.removeLocked(e)
		s.stats.Misses++
		return nil, domain.ErrCacheMiss
	}

	s.lru.MoveToFront(e.element)
	s.stats.Hits++
	return e.value.Clone(), nil
}

// Set stores a copy of the result, evicting least-recently-used
// entries while over capacity.
func (s *Store) Set(_ context.Context, key string, result *domain.AnalysisResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.cfg.DefaultTTL
	}

	now := time.Now()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, exists := s.entries[key]; exists {
		e.value = result.Clone()
		e.createdAt = now
		e.expiresAt = expiresAt
		s.lru.MoveToFront(e.element)
		s.stats.Sets++
		return nil
	}

	if s.cfg.MaxSize > 0 {
		for len(s.entries) >= s.cfg.MaxSize {
			s.evictOldestLocked()
		}
	}

	e := &entry{
		key:       key,
		value:     result.Clone(),
		createdAt: now,
		expiresAt: expiresAt,
	}
	e.element = s.lru.PushFront(e)
	s.entries[key] = e
	s.stats.Sets++
	return nil
}

// Delete removes a key, reporting whether it existed. Explicit deletes
// do not count as evictions.
func (s *Store) Delete(_ context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[key]
	if !exists {
		return false
	}
	s.removeLocked(e)
	return true
}

// Has reports whether a live entry exists without touching recency or
// the hit/miss counters.
func (s *Store) Has(_ context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[key]
	if !exists {
		return false
	}
	if e.expired(time.Now()) {
		s.removeLocked(e)
		return false
	}
	return true
}

// Clear removes all entries and resets stats.
func (s *Store) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Stats returns a snapshot of the counters, or nil when stats tracking
// is disabled.
func (s *Store) Stats() *domain.CacheStats {
	if !s.cfg.TrackStats {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.stats
	snapshot.Size = int64(len(s.entries))
	return &snapshot
}

// Close stops the background sweep and clears the store. Idempotent.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		s.clearLocked()
		s.mu.Unlock()
	})
	return nil
}

func (s *Store) clearLocked() {
	s.entries = make(map[string]*entry)
	s.lru.Init()
	s.stats = domain.CacheStats{}
}

// removeLocked drops an entry without counting an eviction. Caller
// holds the lock.
func (s *Store) removeLocked(e *entry) {
	s.lru.Remove(e.element)
	delete(s.entries, e.key)
}

// evictOldestLocked removes the least-recently-used entry and counts
// an eviction. Caller holds the lock.
func (s *Store) evictOldestLocked() {
	oldest := s.lru.Back()
	if oldest == nil {
		return
	}
	e := oldest.Value.(*entry)
	s.removeLocked(e)
	s.stats.Evictions++
}

// sweepLoop periodically removes expired entries so long-idle stores
// do not hold dead values until the next read.
func (s *Store) sweepLoop() {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []*entry
	for _, e := range s.entries {
		if e.expired(now) {
			expired = append(expired, e)
		}
	}
	for _, e := range expired {
		s.removeLocked(e)
	}
}
