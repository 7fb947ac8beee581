package corpus

import "errors"

var (
	ErrNoSources       = errors.New("no corpus sources configured")
	ErrEmptyCorpus     = errors.New("corpus contains no names")
	ErrSourceFailed    = errors.New("corpus source failed")
	ErrInvalidEncoding = errors.New("corpus line is not valid UTF-8")
	ErrObjectNotFound  = errors.New("corpus object not found")
	ErrInvalidConfig   = errors.New("invalid corpus source configuration")
)
