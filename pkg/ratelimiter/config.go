package ratelimiter

import (
	"fmt"
	"time"
)

// Config defines the token bucket.
type Config struct {
	Enabled         bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Capacity        int           `env:"RATE_LIMIT_CAPACITY" envDefault:"20"`         // burst size
	RefillRate      int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`       // tokens per interval
	RefillInterval  time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"3s"`
	CleanupInterval time.Duration `env:"RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"5m"` // 0 disables cleanup
	StaleAfter      time.Duration `env:"RATE_LIMIT_STALE_AFTER" envDefault:"1h"`      // idle buckets are dropped after this
}

// Validate reports whether the bucket settings are usable.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
