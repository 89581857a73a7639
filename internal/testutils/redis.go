package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// CreateTestRedisClient spins up a miniredis instance and returns a client
// wired to it. Both are torn down with the test.
func CreateTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
