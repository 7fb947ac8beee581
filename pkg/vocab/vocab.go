package vocab

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// StartSymbol marks the beginning of a name in the raw character stream.
	StartSymbol = '<'
	// EndSymbol marks the end of a name in the raw character stream.
	EndSymbol = '>'
	// PadIndex is the index reserved for padding.
	PadIndex = 0
)

// Vocabulary is an immutable bidirectional character/index mapping.
type Vocabulary struct {
	runeToIndex map[rune]int
	indexToRune []rune
	start       int
	end         int
}

// New builds a vocabulary from the characters of the given names.
// Names must not contain the START or END markers.
func New(names []string) (*Vocabulary, error) {
	set := map[rune]struct{}{
		StartSymbol: {},
		EndSymbol:   {},
	}
	for _, name := range names {
		for _, r := range name {
			if r == StartSymbol || r == EndSymbol {
				return nil, fmt.Errorf("%w: %q in %q", ErrReservedCharacter, r, name)
			}
			set[r] = struct{}{}
		}
	}
	if len(set) == 2 {
		return nil, ErrEmptyVocabulary
	}

	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	slices.Sort(runes)

	v := &Vocabulary{
		runeToIndex: make(map[rune]int, len(runes)),
		indexToRune: make([]rune, len(runes)+1),
	}
	// PAD decodes to START.
	v.indexToRune[PadIndex] = StartSymbol
	for i, r := range runes {
		v.runeToIndex[r] = i + 1
		v.indexToRune[i+1] = r
	}
	v.start = v.runeToIndex[StartSymbol]
	v.end = v.runeToIndex[EndSymbol]

	return v, nil
}

// Encode maps every character of text to its index.
func (v *Vocabulary) Encode(text string) ([]int, error) {
	indices := make([]int, 0, utf8.RuneCountInString(text))
	for pos, r := range text {
		idx, ok := v.runeToIndex[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrUnknownCharacter, r, pos)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// Decode maps indices back to text. PAD decodes to StartSymbol.
func (v *Vocabulary) Decode(indices []int) (string, error) {
	var b strings.Builder
	b.Grow(len(indices))
	for _, idx := range indices {
		r, ok := v.Symbol(idx)
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrUnknownIndex, idx)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Symbol returns the character for a single index.
func (v *Vocabulary) Symbol(idx int) (rune, bool) {
	if idx < 0 || idx >= len(v.indexToRune) {
		return 0, false
	}
	return v.indexToRune[idx], true
}

// Index returns the index of a single character.
func (v *Vocabulary) Index(r rune) (int, bool) {
	idx, ok := v.runeToIndex[r]
	return idx, ok
}

// IsKnown reports whether r is a data character, i.e. one that may appear
// inside a name. The START and END markers are not data characters.
func (v *Vocabulary) IsKnown(r rune) bool {
	if r == StartSymbol || r == EndSymbol {
		return false
	}
	_, ok := v.runeToIndex[r]
	return ok
}

// Size returns the number of indices including PAD.
func (v *Vocabulary) Size() int {
	return len(v.indexToRune)
}

// Start returns the index of the START marker.
func (v *Vocabulary) Start() int { return v.start }

// End returns the index of the END marker.
func (v *Vocabulary) End() int { return v.end }

// Pad returns the padding index.
func (v *Vocabulary) Pad() int { return PadIndex }

// Characters returns the data characters in index order.
func (v *Vocabulary) Characters() []rune {
	chars := make([]rune, 0, len(v.indexToRune)-3)
	for _, r := range v.indexToRune[1:] {
		if r == StartSymbol || r == EndSymbol {
			continue
		}
		chars = append(chars, r)
	}
	return chars
}

// StartSymbol returns the START marker character.
func (v *Vocabulary) StartSymbol() rune { return StartSymbol }

// EndSymbol returns the END marker character.
func (v *Vocabulary) EndSymbol() rune { return EndSymbol }
