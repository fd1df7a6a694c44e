package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// LoginLimit throttles credential guessing per client IP.
func LoginLimit() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   60,
	}
}

// TicketCreateLimit caps how many tickets one user can open; the daily
// cap exists because a runaway integration once flooded the queue.
func TicketCreateLimit() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 5,
		RequestsPerHour:   30,
		RequestsPerDay:    100,
	}
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// NoopRateLimiter is used when redis is disabled in configuration.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(string, RateLimitConfig) (bool, error) { return true, nil }

func (l *NoopRateLimiter) GetRemaining(string, time.Duration) (int64, error) { return 0, nil }

func (l *NoopRateLimiter) Reset(string) error { return nil }
