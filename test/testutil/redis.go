// Package testutil provides shared test helpers: a TEST_REDIS_URL-gated
// live-store setup plus fixture builders.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// SetupTestRedis connects to a real Redis instance for integration tests
// of store.RedisStore, skipping when TEST_REDIS_URL is unset.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_URL")
	if addr == "" {
		t.Skip("TEST_REDIS_URL not set, skipping redis test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
