package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
	"github.com/lokeshbhai007/faad-do-dsa/internal/utils"
)

// RateLimiter is a fixed-window limiter backed by Redis INCR+EXPIRE. It is
// fail-open: if Redis is unreachable the request goes through.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	logger *zap.Logger
}

func NewRateLimiter(redisAddr string, limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:ip:" + clientIdentifier(r)

		pipe := rl.rdb.Pipeline()
		incr := pipe.Incr(r.Context(), key)
		pipe.Expire(r.Context(), key, rl.window)
		if _, err := pipe.Exec(r.Context()); err != nil {
			rl.logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		current := int(incr.Val())
		remaining := rl.limit - current
		if remaining < 0 {
			remaining = 0
		}
		reset := time.Now().Add(rl.window).Unix()

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

		if current > rl.limit {
			utils.JSON(w, http.StatusTooManyRequests, models.ErrorResponse{
				Message: "Too many requests",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIdentifier prefers an API key when one is sent, else the caller IP.
// chi's RealIP middleware has already resolved X-Forwarded-For into RemoteAddr.
func clientIdentifier(r *http.Request) string {
	if apiKey := r.Header.Get("X-API-Key"); apiKey != "" {
		return "apikey:" + apiKey
	}
	return r.RemoteAddr
}
