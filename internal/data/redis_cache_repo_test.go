package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localjobs/localjobs-web/internal/core"
	"github.com/localjobs/localjobs-web/internal/testutil"
)

func runCacheRepoContract(t *testing.T, repo core.CacheRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "test:key:1", []byte("test value"), 5*time.Minute))

		got, err := repo.Get(ctx, "test:key:1")
		require.NoError(t, err)
		assert.Equal(t, []byte("test value"), got)
	})

	t.Run("get missing key returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, "non:existent:key")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete reports presence", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "test:key:2", []byte("doomed"), time.Minute))

		deleted, err := repo.Delete(ctx, "test:key:2")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "test:key:2")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("exists", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "test:key:3", []byte("x"), time.Minute))

		ok, err := repo.Exists(ctx, "test:key:3")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, "test:key:missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty keys are rejected", func(t *testing.T) {
		require.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))
		_, err := repo.Get(ctx, "")
		require.Error(t, err)
		_, err = repo.Delete(ctx, "")
		require.Error(t, err)
		_, err = repo.Exists(ctx, "")
		require.Error(t, err)
	})

	t.Run("health", func(t *testing.T) {
		assert.NoError(t, repo.Health(ctx))
	})
}

func TestRedisCacheRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	client := testutil.SetupTestRedis(t)

	repo := NewRedisCacheRepo(client)
	runCacheRepoContract(t, repo)

	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, "test:ttl", []byte("v"), 5*time.Minute))
	ttl := client.TTL(ctx, "test:ttl").Val()
	assert.True(t, ttl > 0 && ttl <= 5*time.Minute, "unexpected ttl %s", ttl)
}

func TestMemoryCacheRepo(t *testing.T) {
	t.Parallel()
	runCacheRepoContract(t, NewMemoryCacheRepo())
}

func TestMemoryCacheRepo_Expiry(t *testing.T) {
	t.Parallel()
	now := testutil.TestTime()
	repo := NewMemoryCacheRepo()
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "short", []byte("v"), time.Minute))
	require.NoError(t, repo.Set(ctx, "forever", []byte("v"), 0))

	now = now.Add(time.Minute)

	got, err := repo.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err := repo.Exists(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryCacheRepo_CopiesValues(t *testing.T) {
	t.Parallel()
	repo := NewMemoryCacheRepo()
	ctx := context.Background()

	val := []byte("abc")
	require.NoError(t, repo.Set(ctx, "k", val, 0))
	val[0] = 'z'

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}
