package validator

// Alphabet reports whether a character may appear in a name.
// *vocab.Vocabulary satisfies it.
type Alphabet interface {
	IsKnown(r rune) bool
}

// ValidSeed reports whether every character of seed is in the alphabet.
// The empty seed is valid.
func ValidSeed(a Alphabet, seed string) bool {
	for _, r := range seed {
		if !a.IsKnown(r) {
			return false
		}
	}
	return true
}
