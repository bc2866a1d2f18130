package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	apperrors "codeberg.org/swarmworks/server/internal/errors"
	"codeberg.org/swarmworks/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const (
	keyPrefix = "swarmworks:ratelimit"

	headerLimit     = "X-RateLimit-Limit"
	headerRemaining = "X-RateLimit-Remaining"
	headerReset     = "X-RateLimit-Reset"
)

// paths never counted against the limit
var defaultExemptPaths = []string{"/health", "/metrics"}

// per-client-IP request limiter
type Limiter struct {
	limiter *limiter.Limiter
	exempt  map[string]bool
	client  *redis.Client // owned only when created by FromConfig
}

// builds a limiter from RATE_LIMIT and REDIS_URL values, nil when formatted is empty
func FromConfig(formatted, redisURL string) (*Limiter, error) {
	if formatted == "" {
		return nil, nil
	}

	var client *redis.Client

	if redisURL != "" {
		var err error

		client, err = NewRedisClient(redisURL)
		if err != nil {
			return nil, err
		}
	}

	l, err := New(formatted, client)
	if err != nil {
		if client != nil {
			_ = client.Close()
		}

		return nil, err
	}

	l.client = client

	return l, nil
}

// releases the redis connection opened by FromConfig
func (l *Limiter) Close() error {
	if l == nil || l.client == nil {
		return nil
	}

	return l.client.Close()
}

// formatted is "<n>-<S|M|H|D>", a nil client selects the in-memory store
func New(formatted string, client *redis.Client) (*Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	var store limiter.Store

	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   keyPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          keyPrefix,
			CleanUpInterval: time.Minute,
		})
	}

	exempt := make(map[string]bool, len(defaultExemptPaths))
	for _, p := range defaultExemptPaths {
		exempt[p] = true
	}

	return &Limiter{
		limiter: limiter.New(store, rate),
		exempt:  exempt,
	}, nil
}

// returns a gin middleware rejecting clients over the limit with 429
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.exempt[c.Request.URL.Path] {
			c.Next()
			return
		}

		ip := c.ClientIP()

		state, err := l.limiter.Get(c.Request.Context(), ip)
		if err != nil {
			// store outages must not take the API down
			logger.ErrorErr(err, "failed to check rate limit", "ip", ip)
			c.Next()

			return
		}

		c.Header(headerLimit, strconv.FormatInt(state.Limit, 10))
		c.Header(headerRemaining, strconv.FormatInt(state.Remaining, 10))
		c.Header(headerReset, strconv.FormatInt(state.Reset, 10))

		if state.Reached {
			logger.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
			apperrors.TooManyRequests(c, "rate limit exceeded, retry later")
			c.Abort()

			return
		}

		c.Next()
	}
}

// connects to redis from a URL and verifies the connection
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
