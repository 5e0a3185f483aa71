package middleware

import (
	"conversational-assistant/config"
	"conversational-assistant/pkg/log"
)

type Middleware struct {
	l      log.Logger
	config *config.Config

	limiter *clientLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	perMin := 60
	if cfg != nil && cfg.HTTPServer.RateLimitPerMin > 0 {
		perMin = cfg.HTTPServer.RateLimitPerMin
	}
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newClientLimiter(perMin),
	}
}
