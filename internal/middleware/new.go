package middleware

import (
	"golang.org/x/time/rate"

	"timeflow/config"
	"timeflow/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *rate.Limiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	perMin := cfg.Resolver.RateLimitPerMin
	if perMin <= 0 {
		perMin = 20
	}
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: rate.NewLimiter(rate.Limit(float64(perMin)/60), perMin),
	}
}
