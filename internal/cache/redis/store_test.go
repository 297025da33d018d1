package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"

	"github.com/seoscope/seoscope/internal/domain"
)

func TestStore_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := newWithClient(client, Config{TrackStats: true})

	mock.ExpectGet("seo:result:absent").RedisNil()

	got, err := s.Get(context.Background(), "seo:result:absent")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	require.Nil(t, got)
	require.Equal(t, int64(1), s.stats.Misses)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := newWithClient(client, Config{TrackStats: true})

	data, err := json.Marshal(&domain.AnalysisResult{Score: domain.Score{Overall: 70}})
	require.NoError(t, err)
	mock.ExpectGet("seo:result:k").SetVal(string(data))

	got, err := s.Get(context.Background(), "seo:result:k")
	require.NoError(t, err)
	require.Equal(t, 70, got.Score.Overall)
	require.Equal(t, int64(1), s.stats.Hits)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetCorruptEntry(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := newWithClient(client, Config{TrackStats: true})

	mock.ExpectGet("seo:result:bad").SetVal("{not json")
	mock.ExpectDel("seo:result:bad").SetVal(1)

	got, err := s.Get(context.Background(), "seo:result:bad")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	require.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := newWithClient(client, Config{TrackStats: true})

	result := &domain.AnalysisResult{Score: domain.Score{Overall: 55}}
	data, err := json.Marshal(result)
	require.NoError(t, err)
	mock.ExpectSet("seo:result:k", data, time.Minute).SetVal("OK")

	require.NoError(t, s.Set(context.Background(), "seo:result:k", result, time.Minute))
	require.Equal(t, int64(1), s.stats.Sets)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_StatsCountsNamespacedKeys(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := newWithClient(client, Config{TrackStats: true})

	// Size must cover only this store's namespace, even when the
	// database holds other applications' keys.
	mock.ExpectScan(0, "seo:*", scanBatchSize).SetVal([]string{"seo:result:a", "seo:result:b"}, 7)
	mock.ExpectScan(7, "seo:*", scanBatchSize).SetVal([]string{"seo:content:c"}, 0)

	stats := s.Stats()
	require.NotNil(t, stats)
	require.Equal(t, int64(3), stats.Size)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_StatsDisabled(t *testing.T) {
	client, _ := redismock.NewClientMock()
	s := newWithClient(client, Config{})

	require.Nil(t, s.Stats())
}
