package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lower case.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	return cases.Title(language.Und).String(strings.ToLower(s))
}

// Seed normalizes a seed before validation.
var Seed = Compose(Trim, ToLower)

// Names normalizes every entry like Seed and drops the ones left empty.
func Names(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if n := Seed(name); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// CapitalizeAll returns a copy of names with every entry capitalized.
func CapitalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = Capitalize(name)
	}
	return out
}
