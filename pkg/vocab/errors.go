package vocab

import "errors"

var (
	// ErrUnknownCharacter is returned when a character was never seen while building the vocabulary.
	ErrUnknownCharacter = errors.New("unknown character")

	// ErrUnknownIndex is returned when an index does not map to any vocabulary entry.
	ErrUnknownIndex = errors.New("unknown index")

	// ErrReservedCharacter is returned when a training name contains a START or END marker.
	ErrReservedCharacter = errors.New("name contains a reserved marker character")

	// ErrEmptyVocabulary is returned when no data characters are available to build a vocabulary.
	ErrEmptyVocabulary = errors.New("vocabulary has no data characters")
)
