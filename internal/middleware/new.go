package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"household-relay/config"
	"household-relay/pkg/log"
)

const (
	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)

type Middleware struct {
	l        log.Logger
	config   config.RateLimitConfig
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:        l,
		config:   cfg,
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
	}
}
