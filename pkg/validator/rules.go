package validator

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// SeedAlphabet validates that value only uses characters of the alphabet.
func SeedAlphabet(field, value string, a Alphabet) Rule {
	return Rule{
		Check: func() bool {
			return ValidSeed(a, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "contains characters that cannot appear in a name",
			TranslationKey: "validation.alphabet",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxRunes validates that value has at most max characters.
func MaxRunes(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Integer validates that value parses as a base 10 integer.
func Integer(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := strconv.Atoi(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a whole number",
			TranslationKey: "validation.integer",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxItems validates that a slice has at most max elements.
func MaxItems[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at most %d items", max),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Each runs rule against every element and returns the first failing
// element rule, with the field suffixed by the element index. The elements
// are checked when Each is called.
func Each[T any](field string, values []T, rule func(field string, value T) Rule) Rule {
	for i, v := range values {
		r := rule(fmt.Sprintf("%s[%d]", field, i), v)
		if !r.Check() {
			return r
		}
	}
	return Rule{Check: func() bool { return true }}
}
