package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seoscope/seoscope/internal/domain"
)

func result(overall int) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Score:    domain.Score{Overall: overall, Breakdown: map[string]int{"content": overall}},
		Keywords: []string{"keyword"},
		Recommendations: []domain.Recommendation{
			{Title: "rec", Category: "content", ActionSteps: []string{"step"}},
		},
	}
}

func TestStore_SetGet(t *testing.T) {
	s := New(Config{MaxSize: 10})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", result(80), 0))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, 80, got.Score.Overall)
}

func TestStore_GetMiss(t *testing.T) {
	s := New(Config{MaxSize: 10})
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Get(context.Background(), "absent")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	require.Nil(t, got)
}

func TestStore_TTLExpiry(t *testing.T) {
	s := New(Config{MaxSize: 10, TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", result(50), 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	got, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	require.Nil(t, got)

	// Expired entries are physically removed on read, not just hidden.
	stats := s.Stats()
	require.Equal(t, int64(0), stats.Size)
	require.Equal(t, int64(1), stats.Misses)
	require.Equal(t, int64(0), stats.Evictions)
}

func TestStore_DefaultTTLApplied(t *testing.T) {
	s := New(Config{MaxSize: 10, DefaultTTL: 10 * time.Millisecond})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", result(50), 0))
	require.True(t, s.Has(ctx, "k"))

	time.Sleep(25 * time.Millisecond)
	require.False(t, s.Has(ctx, "k"))
}

func TestStore_LRUEviction(t *testing.T) {
	s := New(Config{MaxSize: 3, TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", result(1), 0))
	require.NoError(t, s.Set(ctx, "b", result(2), 0))
	require.NoError(t, s.Set(ctx, "c", result(3), 0))

	// Touch "a" so "b" becomes the LRU entry.
	_, err := s.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "d", result(4), 0))

	require.True(t, s.Has(ctx, "a"))
	require.False(t, s.Has(ctx, "b"))
	require.True(t, s.Has(ctx, "c"))
	require.True(t, s.Has(ctx, "d"))

	stats := s.Stats()
	require.Equal(t, int64(1), stats.Evictions)
	require.Equal(t, int64(3), stats.Size)
}

func TestStore_EvictionUnderSustainedPressure(t *testing.T) {
	s := New(Config{MaxSize: 5, TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("k%d", i), result(i), 0))
	}

	stats := s.Stats()
	require.Equal(t, int64(5), stats.Size)
	require.Equal(t, int64(45), stats.Evictions)

	// Only the five most recent keys survive.
	for i := 45; i < 50; i++ {
		require.True(t, s.Has(ctx, fmt.Sprintf("k%d", i)))
	}
}

func TestStore_UpdateDoesNotEvict(t *testing.T) {
	s := New(Config{MaxSize: 2, TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", result(1), 0))
	require.NoError(t, s.Set(ctx, "b", result(2), 0))
	require.NoError(t, s.Set(ctx, "a", result(10), 0))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, 10, got.Score.Overall)
	require.True(t, s.Has(ctx, "b"))
	require.Equal(t, int64(0), s.Stats().Evictions)
}

func TestStore_StatsSequence(t *testing.T) {
	s := New(Config{MaxSize: 10, TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", result(1), 0))
	_, _ = s.Get(ctx, "k")
	_, _ = s.Get(ctx, "k")
	_, _ = s.Get(ctx, "absent")

	stats := s.Stats()
	require.Equal(t, int64(1), stats.Sets)
	require.Equal(t, int64(2), stats.Hits)
	require.Equal(t, int64(1), stats.Misses)
	require.Equal(t, int64(1), stats.Size)
}

func TestStore_StatsDisabled(t *testing.T) {
	s := New(Config{MaxSize: 10})
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Set(context.Background(), "k", result(1), 0))
	require.Nil(t, s.Stats())
}

func TestStore_HasDoesNotCountStats(t *testing.T) {
	s := New(Config{MaxSize: 10, TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", result(1), 0))
	s.Has(ctx, "k")
	s.Has(ctx, "absent")

	stats := s.Stats()
	require.Equal(t, int64(0), stats.Hits)
	require.Equal(t, int64(0), stats.Misses)
}

func TestStore_Delete(t *testing.T) {
	s := New(Config{MaxSize: 10, TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", result(1), 0))
	require.True(t, s.Delete(ctx, "k"))
	require.False(t, s.Delete(ctx, "k"))
	require.Equal(t, int64(0), s.Stats().Evictions)
}

func TestStore_Clear(t *testing.T) {
	s := New(Config{MaxSize: 10, TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", result(1), 0))
	require.NoError(t, s.Set(ctx, "b", result(2), 0))
	_, _ = s.Get(ctx, "a")

	s.Clear(ctx)

	stats := s.Stats()
	require.Equal(t, int64(0), stats.Size)
	require.Equal(t, int64(0), stats.Sets)
	require.Equal(t, int64(0), stats.Hits)
	require.False(t, s.Has(ctx, "a"))
}

func TestStore_ValueIsolation(t *testing.T) {
	s := New(Config{MaxSize: 10})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	original := result(60)
	require.NoError(t, s.Set(ctx, "k", original, 0))

	// Mutating the caller's copy after Set must not reach the cache.
	original.Score.Overall = 0
	original.Keywords[0] = "mutated"
	original.Recommendations[0].ActionSteps[0] = "mutated"

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, 60, got.Score.Overall)
	require.Equal(t, "keyword", got.Keywords[0])
	require.Equal(t, "step", got.Recommendations[0].ActionSteps[0])

	// Mutating one reader's copy must not affect the next reader.
	got.Score.Breakdown["content"] = -1
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, 60, again.Score.Breakdown["content"])
}

func TestStore_CloseIdempotent(t *testing.T) {
	s := New(Config{MaxSize: 10, SweepInterval: time.Millisecond})
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", result(1), 0))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.False(t, s.Has(ctx, "k"))
}

func TestStore_SweepRemovesExpired(t *testing.T) {
	s := New(Config{MaxSize: 10, TrackStats: true, SweepInterval: 5 * time.Millisecond})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", result(1), 5*time.Millisecond))
	require.NoError(t, s.Set(ctx, "long", result(2), time.Hour))

	require.Eventually(t, func() bool {
		return s.Stats().Size == 1
	}, time.Second, 5*time.Millisecond)

	require.True(t, s.Has(ctx, "long"))
}

func TestStore_UnboundedWhenMaxSizeZero(t *testing.T) {
	s := New(Config{TrackStats: true})
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("k%d", i), result(i), 0))
	}

	stats := s.Stats()
	require.Equal(t, int64(100), stats.Size)
	require.Equal(t, int64(0), stats.Evictions)
}
