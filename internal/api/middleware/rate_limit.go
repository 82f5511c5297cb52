package middleware

import (
	"container/list"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// tokenBucket is a per-key token bucket refilled one token per interval.
type tokenBucket struct {
	lastRefill time.Time
	tokens     int
}

// MemoryLimiter keeps one token bucket per key in a bounded LRU.
type MemoryLimiter struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
	capacity int
	burst    int
	refill   time.Duration
	now      func() time.Time
}

type bucketEntry struct {
	key    string
	bucket *tokenBucket
}

// NewMemoryLimiter allows requestsPerMinute per key and tracks at most
// capacity keys, evicting the least recently used.
func NewMemoryLimiter(requestsPerMinute, capacity int) *MemoryLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if capacity <= 0 {
		capacity = 10000
	}
	return &MemoryLimiter{
		items:    make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
		burst:    requestsPerMinute,
		refill:   time.Minute / time.Duration(requestsPerMinute),
		now:      time.Now,
	}
}

// Allow consumes a token for key if one is available.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	b := m.bucket(key, now)

	if elapsed := now.Sub(b.lastRefill); elapsed >= m.refill {
		n := int(elapsed / m.refill)
		b.tokens += n
		// Keep the partial interval so sustained traffic gets the full rate.
		b.lastRefill = b.lastRefill.Add(time.Duration(n) * m.refill)
		if b.tokens >= m.burst {
			b.tokens = m.burst
			b.lastRefill = now
		}
	}

	if b.tokens > 0 {
		b.tokens--
		return true, nil
	}
	return false, nil
}

func (m *MemoryLimiter) bucket(key string, now time.Time) *tokenBucket {
	if elem, ok := m.items[key]; ok {
		m.order.MoveToFront(elem)
		return elem.Value.(*bucketEntry).bucket
	}

	b := &tokenBucket{lastRefill: now, tokens: m.burst}
	m.items[key] = m.order.PushFront(&bucketEntry{key: key, bucket: b})

	if m.order.Len() > m.capacity {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.items, oldest.Value.(*bucketEntry).key)
	}
	return b
}

// RedisLimiter shares a sliding one-minute window across server instances.
type RedisLimiter struct {
	client            redis.UniversalClient
	keyPrefix         string
	requestsPerMinute int
	windowSize        time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(client redis.UniversalClient, keyPrefix string, requestsPerMinute int) *RedisLimiter {
	return &RedisLimiter{
		client:            client,
		keyPrefix:         strings.TrimSuffix(keyPrefix, ":"),
		requestsPerMinute: requestsPerMinute,
		windowSize:        time.Minute,
	}
}

// Allow records the request and reports whether the window still has room.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := r.key(key)
	now := time.Now()
	windowStart := now.Add(-r.windowSize)

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	count := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, redisKey, r.windowSize+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis rate limiting error: %w", err)
	}

	return count.Val() < int64(r.requestsPerMinute), nil
}

// key namespaces a client key as "<prefix>:<client>".
func (r *RedisLimiter) key(client string) string {
	if r.keyPrefix == "" {
		return client
	}
	return r.keyPrefix + ":" + client
}

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	Limiter Limiter
	Logger  *slog.Logger
	// KeyGenerator defaults to the client IP.
	KeyGenerator func(c *gin.Context) string
}

// RateLimitMiddleware rejects requests over the limit with 429. Limiter
// errors fail open so a Redis outage never takes the card views down.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	keyFor := config.KeyGenerator
	if keyFor == nil {
		keyFor = func(c *gin.Context) string { return c.ClientIP() }
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		allowed, err := config.Limiter.Allow(c.Request.Context(), keyFor(c))
		if err != nil {
			logger.WarnContext(c.Request.Context(), "rate limiter unavailable",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()),
			)
			c.Header("X-RateLimit-Error", "true")
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"type":    "RATE_LIMIT_ERROR",
					"code":    "TOO_MANY_REQUESTS",
					"message": "Rate limit exceeded. Please try again later.",
				},
			})
			return
		}

		c.Next()
	}
}
