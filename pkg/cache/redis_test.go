package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) *Client {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewClientFromRedis(rdb)
}

func TestSetAndGet(t *testing.T) {
	client := setupTestClient(t)

	err := client.Set(context.Background(), "key", "value", time.Minute)
	require.NoError(t, err)

	got, err := client.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestGet_MissingKey(t *testing.T) {
	client := setupTestClient(t)

	_, err := client.Get(context.Background(), "absent")
	assert.Error(t, err)
	assert.True(t, IsMiss(err))
}

func TestDelete(t *testing.T) {
	client := setupTestClient(t)

	require.NoError(t, client.Set(context.Background(), "key", "value", time.Minute))
	require.NoError(t, client.Delete(context.Background(), "key"))

	exists, err := client.Exists(context.Background(), "key")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIsMiss_OtherErrors(t *testing.T) {
	assert.False(t, IsMiss(nil))
	assert.False(t, IsMiss(context.Canceled))
}
