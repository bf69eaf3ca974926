//go:build integration

package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jhoicas/Rollstock-api/internal/application/auth"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/Rollstock-api/pkg/config"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	rdb, err := redisstore.NewClient(config.RedisConfig{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestSessionStore(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	store := redisstore.NewSessionStore(rdb)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, store.SaveResetToken(ctx, "tok", "acc-1", time.Minute))
	id, err := store.ConsumeResetToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)
	id, err = store.ConsumeResetToken(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, id, "el token es de un solo uso")
}

func TestNotifier_PubSub(t *testing.T) {
	rdb := setupRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := redisstore.NewNotifier(rdb, nil)

	ch, err := n.Subscribe(ctx, "acc-1")
	require.NoError(t, err)
	require.NoError(t, n.Publish(ctx, "acc-1", auth.SessionEvent{Type: auth.EventAccountUpdated, At: time.Now().UTC()}))

	select {
	case ev := <-ch:
		assert.Equal(t, auth.EventAccountUpdated, ev.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("no llegó el evento")
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, 5*time.Second, 50*time.Millisecond)
}
