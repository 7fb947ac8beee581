package sampler

import "math/rand/v2"

// DefaultMaxLength is the default upper bound on seed plus generated characters.
const DefaultMaxLength = 17

// Option configures a Sampler.
type Option func(*Sampler)

// WithMaxLength sets the maximum number of characters a candidate may reach,
// counting the seed but not the markers.
func WithMaxLength(n int) Option {
	return func(s *Sampler) {
		if n < 1 {
			panic("sampler: max length must be at least 1")
		}
		s.maxLength = n
	}
}

// WithRand sets the random source. A *rand.Rand is not safe for concurrent
// use, so a sampler built with one must not be shared between goroutines.
func WithRand(r *rand.Rand) Option {
	return func(s *Sampler) {
		if r == nil {
			panic("sampler: rand cannot be nil")
		}
		s.float64 = r.Float64
	}
}
