package sampler

import "errors"

// ErrInvalidCount is returned when fewer than one candidate is requested.
var ErrInvalidCount = errors.New("count must be at least 1")
