package middleware

import (
	"tasksync/config"
	"tasksync/internal/session"
	"tasksync/pkg/log"
)

// SessionStatus is the part of the session the middleware inspects.
type SessionStatus interface {
	Status() session.Status
}

type Middleware struct {
	l       log.Logger
	session SessionStatus
	limiter *rateLimiter
}

func New(l log.Logger, sess SessionStatus, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		session: sess,
		limiter: newRateLimiter(rl.PerMin, rl.Burst),
	}
}
