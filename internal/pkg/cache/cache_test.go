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

type dept struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, ttl), mr
}

func TestCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	in := []dept{{ID: "d1", Name: "HR"}, {ID: "d2", Name: "IT"}}
	require.NoError(t, c.SetJSON(ctx, "reference:departments", in))

	var out []dept
	require.NoError(t, c.GetJSON(ctx, "reference:departments", &out))
	assert.Equal(t, in, out)
}

func TestCache_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	var out []dept
	err := c.GetJSON(context.Background(), "reference:missing", &out)

	assert.ErrorIs(t, err, ErrMiss)
}

func TestCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "reference:departments", []dept{{ID: "d1", Name: "HR"}}))
	mr.FastForward(2 * time.Second)

	var out []dept
	assert.ErrorIs(t, c.GetJSON(ctx, "reference:departments", &out), ErrMiss)
}
