package health

import (
	"context"
	"errors"
	"testing"

	"moneta-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct {
	err error
}

func (p *pinger) Ping() error { return p.err }

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestCollectHealth_AllConnected(t *testing.T) {
	mr, rdb := setupRedis(t)
	require.NoError(t, mr.Set(middleware.KeyReqTotal, "10"))
	require.NoError(t, mr.Set(middleware.KeyReqErrors, "2"))
	require.NoError(t, mr.Set(middleware.KeyResTime, "400"))
	require.NoError(t, mr.Set(middleware.KeyResCount, "10"))

	result := CollectHealth(context.Background(), rdb, &pinger{})

	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "connected", result.Dependencies["catalog"].Status)
	assert.Equal(t, "connected", result.Dependencies["redis"].Status)
	assert.Equal(t, 10, result.Traffic.TotalRequests)
	assert.Equal(t, 8, result.Traffic.SuccessCount)
	assert.Equal(t, 2, result.Traffic.FailedCount)
	assert.Equal(t, "80.0", result.Traffic.SuccessRate)
	assert.Equal(t, "40.00", result.Traffic.AvgResponseTime)
	assert.NotEmpty(t, result.Runtime.GoVersion)
}

func TestCollectHealth_SetsStartTimeOnFirstRun(t *testing.T) {
	mr, rdb := setupRedis(t)

	CollectHealth(context.Background(), rdb, &pinger{})
	assert.True(t, mr.Exists(middleware.KeyStartTime))
}

func TestCollectHealth_NoDatabase(t *testing.T) {
	_, rdb := setupRedis(t)

	result := CollectHealth(context.Background(), rdb, nil)
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "disconnected", result.Dependencies["catalog"].Status)
}

func TestCollectHealth_DatabaseError(t *testing.T) {
	_, rdb := setupRedis(t)

	result := CollectHealth(context.Background(), rdb, &pinger{err: errors.New("closed")})
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "error", result.Dependencies["catalog"].Status)
}

func TestCollectHealth_RedisDown(t *testing.T) {
	mr, rdb := setupRedis(t)
	mr.Close()

	result := CollectHealth(context.Background(), rdb, &pinger{})
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "error", result.Dependencies["redis"].Status)
}
