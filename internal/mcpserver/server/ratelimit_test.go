package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/config"
)

func newTestRateLimiter(t *testing.T, perMinute, burst int) (*RateLimiter, *time.Time) {
	t.Helper()
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: perMinute, Burst: burst})
	t.Cleanup(rl.Close)

	clock := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }
	return rl, &clock
}

func TestRateLimiter_BurstThenRefill(t *testing.T) {
	rl, clock := newTestRateLimiter(t, 60, 3)

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := rl.Allow("10.0.0.1")
		require.True(t, allowed, "request %d", i)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, _, next := rl.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, clock.Add(time.Second), next)

	*clock = clock.Add(time.Second)
	allowed, _, _ = rl.Allow("10.0.0.1")
	assert.True(t, allowed, "one token refilled after a second")

	allowed, _, _ = rl.Allow("10.0.0.2")
	assert.True(t, allowed, "buckets are per client")
}

func TestRateLimiter_RefillCapsAtBurst(t *testing.T) {
	rl, clock := newTestRateLimiter(t, 600, 2)

	rl.Allow("c")
	*clock = clock.Add(time.Hour - time.Minute)

	allowed, remaining, _ := rl.Allow("c")
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
}

func TestRateLimiter_RemoveIdle(t *testing.T) {
	rl, clock := newTestRateLimiter(t, 60, 1)

	rl.Allow("stale")
	*clock = clock.Add(50 * time.Minute)
	rl.Allow("fresh")
	*clock = clock.Add(15 * time.Minute)

	assert.Equal(t, 1, rl.removeIdle())
	assert.Len(t, rl.buckets, 1)
	assert.Contains(t, rl.buckets, "fresh")
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl, _ := newTestRateLimiter(t, 60, 1)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := call("192.0.2.7:5000")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "60", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Burst"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	// Same IP from another port shares the bucket
	second := call("192.0.2.7:6000")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, call("192.0.2.8:5000").Code)
}

func TestServer_RateLimitedPost(t *testing.T) {
	ts := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit = config.RateLimitConfig{RequestsPerMinute: 60, Burst: 2}
	})

	ping := `{"jsonrpc":"2.0","id":1,"method":"ping"}`
	for i := 0; i < 2; i++ {
		resp := ts.post(t, ping, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := ts.post(t, ping, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	health, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode, "only /mcp posts are limited")
}
