package middleware

import (
	"voice-task-assistant/pkg/log"
	"voice-task-assistant/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

// New creates the shared gin middleware set. A non-positive rateLimitPerMin disables rate limiting.
func New(l log.Logger, jwtManager scope.Manager, rateLimitPerMin int) Middleware {
	m := Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
	if rateLimitPerMin > 0 {
		m.limiter = newRateLimiter(rateLimitPerMin)
	}
	return m
}
