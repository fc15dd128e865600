package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/config"
	"github.com/YokoReis/focus-flash-forge-23/metrics"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// rateLimitKey is per-IP, per-method, per-endpoint
func rateLimitKey(c *gin.Context) string {
	return "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
}

func rejectOrContinue(c *gin.Context, snapshot *models.RateLimiter, exceeded bool) {
	// Store in context for controllers
	c.Set(models.RateLimiterContextKey, snapshot)

	if exceeded {
		metrics.RecordRateLimited(c.FullPath())
		c.JSON(http.StatusTooManyRequests, models.ApiResponse{
			Message: "Too many requests",
			Error:   true,
			Rate:    snapshot,
		})
		c.Abort()
		return
	}
	c.Next()
}

// RedisRateLimiter is a fixed-window limiter shared by every instance that talks to
// the same Redis.
func RedisRateLimiter(client redis.Cmdable, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		key := rateLimitKey(c)
		resetKey := key + ":resetAt"

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[rate-limit] redis incr %s: %v", key, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			c.Abort()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := client.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Printf("[rate-limit] redis window %s: %v", key, err)
			}
		}

		resetAtUnix, err := client.Get(ctx, resetKey).Int64()
		if err != nil {
			resetAtUnix = time.Now().Add(window).Unix()
		}
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rejectOrContinue(c, &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}, int(count) > maxRequests)
	}
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter keeps one token bucket per client key in process memory. It refills
// maxRequests tokens evenly over window.
type LocalLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*localBucket
	maxRequests int
	window      time.Duration
	idleAfter   time.Duration
	lastSweep   time.Time
	now         func() time.Time
}

// NewLocalLimiter creates an in-process limiter
func NewLocalLimiter(maxRequests int, window time.Duration) *LocalLimiter {
	if maxRequests <= 0 {
		maxRequests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LocalLimiter{
		buckets:     make(map[string]*localBucket),
		maxRequests: maxRequests,
		window:      window,
		idleAfter:   2 * window,
		now:         time.Now,
	}
}

// Allow consumes one token for key and returns the resulting snapshot.
func (l *LocalLimiter) Allow(key string) (*models.RateLimiter, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		every := rate.Every(l.window / time.Duration(l.maxRequests))
		b = &localBucket{limiter: rate.NewLimiter(every, l.maxRequests)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)
	remaining := int(tokens)
	if remaining < 0 {
		remaining = 0
	}

	// Time until the bucket is full again.
	missing := float64(l.maxRequests) - tokens
	resetIn := time.Duration(missing / float64(b.limiter.Limit()) * float64(time.Second))
	if resetIn < 0 {
		resetIn = 0
	}

	return &models.RateLimiter{
		Limit:          l.maxRequests,
		Remaining:      remaining,
		ResetAt:        now.Add(resetIn),
		ResetInSeconds: int(resetIn.Seconds()),
	}, allowed
}

// sweep drops buckets idle for longer than idleAfter; callers hold mu.
func (l *LocalLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleAfter {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleAfter {
			delete(l.buckets, key)
		}
	}
}

// Middleware enforces the limit on every request.
func (l *LocalLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, allowed := l.Allow(rateLimitKey(c))
		rejectOrContinue(c, snapshot, !allowed)
	}
}

// LocalRateLimiter is shorthand for NewLocalLimiter(maxRequests, window).Middleware().
func LocalRateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return NewLocalLimiter(maxRequests, window).Middleware()
}
