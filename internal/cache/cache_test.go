package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return New(mr.Addr(), "", 0), mr
}

type cachedProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestClient_JSONRoundTrip(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	c.SetJSON(ctx, "profile:1", cachedProfile{ID: "1", Name: "Jon"}, time.Minute)

	var got cachedProfile
	require.True(t, c.GetJSON(ctx, "profile:1", &got))
	assert.Equal(t, "Jon", got.Name)
	assert.True(t, c.Exists(ctx, "profile:1"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, c.GetJSON(ctx, "profile:1", &got))
}

func TestClient_DeleteMany(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	c.Set(ctx, "a", []byte("1"), time.Minute)
	c.Set(ctx, "b", []byte("2"), time.Minute)
	c.Delete(ctx, "a", "b")

	assert.Nil(t, c.Get(ctx, "a"))
	assert.Nil(t, c.Get(ctx, "b"))
}

func TestClient_FailsSafeWhenRedisIsDown(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()
	mr.Close()

	assert.NotPanics(t, func() {
		c.Set(ctx, "k", []byte("v"), time.Minute)
		c.Delete(ctx, "k")
	})
	assert.Nil(t, c.Get(ctx, "k"))
	assert.False(t, c.Exists(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
}

func TestClient_NilIsACacheMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	var dst cachedProfile
	assert.False(t, c.GetJSON(ctx, "k", &dst))
	assert.NotPanics(t, func() { c.SetJSON(ctx, "k", dst, time.Minute) })
	assert.NoError(t, c.Close())
}
