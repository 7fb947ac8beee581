// Package sanitizer normalizes user input and formats names for display.
//
// Transformations are plain func(T) T values that can be chained with Apply
// or stored as a pipeline with Compose:
//
//	seed := sanitizer.Seed("  AN ")          // "an"
//	name := sanitizer.Capitalize("annabel")  // "Annabel"
//	names := sanitizer.Names([]string{" Ab ", "", "cd"}) // ["ab", "cd"]
//
// Case mapping uses golang.org/x/text/cases so non-ASCII letters are handled
// the way Unicode defines them.
package sanitizer
