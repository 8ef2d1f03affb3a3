package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestTokenBlacklistRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(ctx).Err())

	repo := NewTokenBlacklistRepository(rdb)

	t.Run("Add and Contains", func(t *testing.T) {
		assert.NoError(t, repo.Add(ctx, "jti-1", time.Minute))

		ok, err := repo.Contains(ctx, "jti-1")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Unknown jti", func(t *testing.T) {
		ok, err := repo.Contains(ctx, "jti-unknown")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Expired token is not stored", func(t *testing.T) {
		assert.NoError(t, repo.Add(ctx, "jti-expired", -time.Second))

		ok, err := repo.Contains(ctx, "jti-expired")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Entry expires", func(t *testing.T) {
		assert.NoError(t, repo.Add(ctx, "jti-short", 1*time.Second))
		time.Sleep(1500 * time.Millisecond)

		ok, err := repo.Contains(ctx, "jti-short")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
