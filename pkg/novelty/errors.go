package novelty

import "errors"

var (
	ErrInvalidCount        = errors.New("count must be at least 1")
	ErrInvalidSeed         = errors.New("seed contains unknown characters")
	ErrSeedTooLong         = errors.New("seed leaves no room for generated characters")
	ErrGenerationExhausted = errors.New("could not generate enough novel names")
)
