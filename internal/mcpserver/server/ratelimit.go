package server

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/config"
)

// Per-client token bucket limiting for POST /mcp.
//
// Each client IP gets a bucket holding up to Burst tokens that refills at
// RequestsPerMinute/60 tokens per second. A request spends one token; an
// empty bucket yields 429 with Retry-After set to when the next token lands.
// Buckets idle for bucketIdleTTL are dropped by the cleanup loop.

const (
	bucketIdleTTL      = time.Hour
	bucketCleanupEvery = 10 * time.Minute
)

// tokenBucket is a single client's allowance
type tokenBucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// allow refills the bucket for the time elapsed since the last call and
// spends a token if one is available. It returns the tokens left and, when
// denied, when the next token becomes available.
func (b *tokenBucket) allow(now time.Time) (bool, int, time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.refillRate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.lastRefill = now
	}

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true, int(b.tokens), now
	}

	wait := (1.0 - b.tokens) / b.refillRate
	return false, 0, now.Add(time.Duration(wait * float64(time.Second)))
}

// RateLimiter tracks one token bucket per client key
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*tokenBucket
	cfg      config.RateLimitConfig
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter and starts its idle-bucket cleanup loop
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		cfg:     cfg,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanupLoop(bucketCleanupEvery)
	return rl
}

// Allow spends a token from key's bucket, creating a full bucket on first use
func (rl *RateLimiter) Allow(key string) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = &tokenBucket{
			tokens:     float64(rl.cfg.Burst),
			capacity:   float64(rl.cfg.Burst),
			refillRate: float64(rl.cfg.RequestsPerMinute) / 60.0,
			lastRefill: now,
		}
		rl.buckets[key] = bucket
	}
	return bucket.allow(now)
}

// Close stops the cleanup loop. Safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := rl.removeIdle(); n > 0 {
				log.Debug().Int("removed", n).Msg("Dropped idle rate limit buckets")
			}
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) removeIdle() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, bucket := range rl.buckets {
		if now.Sub(bucket.lastRefill) > bucketIdleTTL {
			delete(rl.buckets, key)
			removed++
		}
	}
	return removed
}

// Middleware enforces the limit per client IP. chi's RealIP middleware must
// run first so proxied clients are keyed by their forwarded address.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	limit := strconv.Itoa(rl.cfg.RequestsPerMinute)
	burst := strconv.Itoa(rl.cfg.Burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		allowed, remaining, nextToken := rl.Allow(key)

		w.Header().Set("X-RateLimit-Limit", limit)
		w.Header().Set("X-RateLimit-Burst", burst)
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(nextToken.Sub(rl.now()).Seconds() + 0.999)
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			log.Ctx(r.Context()).Warn().
				Str("client", key).
				Int("retryAfter", retryAfter).
				Msg("Rate limit exceeded")

			http.Error(w, "rate limit exceeded, retry after "+strconv.Itoa(retryAfter)+" seconds", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
