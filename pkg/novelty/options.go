package novelty

import "log/slog"

const (
	// DefaultOversample is the default ratio of requested candidates to missing names.
	DefaultOversample = 1.5
	// DefaultMaxAttempts is the default number of sampler batches per call.
	DefaultMaxAttempts = 100
)

// Option configures a Filter.
type Option func(*Filter)

// WithOversample sets how many candidates are requested per missing name.
func WithOversample(f float64) Option {
	return func(n *Filter) {
		if !(f >= 1) {
			panic("novelty: oversample factor must be at least 1")
		}
		n.oversample = f
	}
}

// WithMaxAttempts bounds the number of sampler batches per Generate call.
func WithMaxAttempts(n int) Option {
	return func(f *Filter) {
		if n < 1 {
			panic("novelty: max attempts must be at least 1")
		}
		f.maxAttempts = n
	}
}

// WithUnique rejects names already accepted earlier in the same call.
func WithUnique() Option {
	return func(f *Filter) {
		f.unique = true
	}
}

// WithLogger sets the logger used for per-batch debug records.
func WithLogger(l *slog.Logger) Option {
	return func(f *Filter) {
		if l == nil {
			panic("novelty: logger cannot be nil")
		}
		f.log = l
	}
}
