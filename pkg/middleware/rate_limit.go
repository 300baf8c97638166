package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/swrzee/console/pkg/composables"
	"github.com/swrzee/console/pkg/configuration"
)

type RateLimitConfig struct {
	RequestsPerPeriod int
	Period            time.Duration
	Store             limiter.Store
	// KeyFunc derives the bucket key, defaults to the client IP.
	KeyFunc func(r *http.Request) string
}

func NewMemoryStore() limiter.Store {
	return memory.NewStore()
}

func NewRedisStore(redisURL string) (limiter.Store, error) {
	client := redis.NewClient(&redis.Options{Addr: redisURL})
	return redisstore.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "rate_limit",
	})
}

// RateLimit rejects requests over the configured rate with 429.
func RateLimit(cfg RateLimitConfig) mux.MiddlewareFunc {
	conf := configuration.Use()
	period := cfg.Period
	if period == 0 {
		period = time.Minute
	}
	store := cfg.Store
	if store == nil {
		store = NewMemoryStore()
	}
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = func(r *http.Request) string {
			return getRealIP(r, conf)
		}
	}
	instance := limiter.New(store, limiter.Rate{
		Period: period,
		Limit:  int64(cfg.RequestsPerPeriod),
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiterCtx, err := instance.Get(r.Context(), keyFunc(r))
			if err != nil {
				composables.UseLogger(r.Context()).WithError(err).Error("rate limit store failure")
				next.ServeHTTP(w, r)
				return
			}
			if limiterCtx.Reached {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
