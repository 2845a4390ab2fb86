// Package ratelimit guards the destructive admin endpoints (bot resets,
// turn triggers) against accidental rapid-fire invocation.
package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// NoopLimiter allows everything; used when redis is not configured.
type NoopLimiter struct{}

func NewNoopLimiter() RateLimiter {
	return &NoopLimiter{}
}

func (l *NoopLimiter) Allow(string, RateLimitConfig) (bool, error) {
	return true, nil
}

func (l *NoopLimiter) GetRemaining(string, time.Duration) (int64, error) {
	return 0, nil
}

func (l *NoopLimiter) Reset(string) error {
	return nil
}
