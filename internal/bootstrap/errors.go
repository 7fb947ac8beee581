package bootstrap

import "errors"

var (
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrVocabularyMismatch means the model predicts over a different
	// number of characters than the vocabulary holds.
	ErrVocabularyMismatch = errors.New("model output does not match the vocabulary")
)
