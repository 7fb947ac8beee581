// Package validator checks user input before it reaches the generator.
//
// ValidSeed is the single domain predicate: a seed is acceptable when every
// character is a known data character of the vocabulary. The empty seed is
// always acceptable. Callers trim and lower-case the seed before validating
// it (see package sanitizer); the predicate itself does not normalize.
//
// Request level checks are expressed as Rule values and evaluated with Apply,
// which collects every failure into a ValidationErrors value:
//
//	err := validator.Apply(
//	    validator.SeedAlphabet("seed", seed, v),
//	    validator.MaxRunes("seed", seed, 16),
//	    validator.MinNum("count", count, 1),
//	    validator.MaxNum("count", count, 100),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("count") returns the messages for one field
//	}
//
// Every ValidationError carries a translation key and values next to the
// English message so front ends can render localized messages.
package validator
