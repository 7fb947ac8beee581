package corpus

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/namegen/pkg/vocab"
)

// trimSet holds the characters stripped from both ends of a name.
var trimSet = string([]rune{vocab.StartSymbol, vocab.EndSymbol, ' '})

// Clean trims whitespace and markers from name and lower-cases it. The
// characters themselves are kept, so "Straße" becomes "straße".
func Clean(name string) string {
	name = strings.Trim(strings.TrimSpace(name), trimSet)
	if name == "" {
		return ""
	}
	// A Caser keeps internal state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(name)
}

// Normalize returns the canonical form of a name used for membership tests.
// Unlike Clean it applies full case folding, so "Straße" becomes "strasse".
func Normalize(name string) string {
	name = strings.Trim(strings.TrimSpace(name), trimSet)
	if name == "" {
		return ""
	}
	return cases.Fold().String(name)
}

// Index is an immutable set of names. Membership is decided on the
// normalized form; the cleaned spellings are kept for Names.
type Index struct {
	keys  map[string]struct{}
	names map[string]struct{}
}

// New builds an index from raw names. Empty entries are dropped and
// duplicates collapse into one.
func New(names ...string) *Index {
	idx := &Index{
		keys:  make(map[string]struct{}, len(names)),
		names: make(map[string]struct{}, len(names)),
	}
	for _, name := range names {
		key := Normalize(name)
		if key == "" {
			continue
		}
		idx.keys[key] = struct{}{}
		idx.names[Clean(name)] = struct{}{}
	}
	return idx
}

// Contains reports whether the normalized form of name is in the index.
func (i *Index) Contains(name string) bool {
	if i == nil {
		return false
	}
	_, ok := i.keys[Normalize(name)]
	return ok
}

// Len returns the number of distinct normalized names.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.keys)
}

// Names returns the distinct cleaned names in sorted order. Spellings that
// only differ after case folding, such as "straße" and "strasse", are both
// listed, so Names may be longer than Len.
func (i *Index) Names() []string {
	if i == nil {
		return nil
	}
	out := make([]string, 0, len(i.names))
	for name := range i.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
