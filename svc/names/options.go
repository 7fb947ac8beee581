package names

import "log/slog"

const (
	// DefaultMaxCount is the largest count accepted per request.
	DefaultMaxCount = 100

	// AttachmentName is the file name of the download.
	AttachmentName = "generated_names.txt"
)

// Option configures a Service.
type Option func(*Service)

// WithMaxCount sets the largest accepted count. It panics if n < 1.
func WithMaxCount(n int) Option {
	if n < 1 {
		panic("names: max count must be at least 1")
	}
	return func(s *Service) {
		s.maxCount = n
	}
}

// WithLogger sets the logger used for generation events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}
