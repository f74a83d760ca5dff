package validator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rule is a deferred check paired with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Check builds a rule from a precomputed condition.
func Check(field string, ok bool, message string) Rule {
	return Rule{
		Check: func() bool { return ok },
		Error: ValidationError{Field: field, Message: message},
	}
}

// Required fails for blank strings.
func Required(field, value, message string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: message},
	}
}

// MinLen fails when the trimmed value has fewer than min runes.
func MinLen(field, value string, min int, message string) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(strings.TrimSpace(value)) >= min },
		Error: ValidationError{Field: field, Message: message},
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email fails unless value looks like local@domain.tld.
func Email(field, value, message string) Rule {
	return Rule{
		Check: func() bool { return emailPattern.MatchString(value) },
		Error: ValidationError{Field: field, Message: message},
	}
}

// Numeric fails unless value parses as a finite decimal number.
func Numeric(field, value, message string) Rule {
	return Rule{
		Check: func() bool {
			_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			return err == nil
		},
		Error: ValidationError{Field: field, Message: message},
	}
}

// GreaterThan fails unless value > bound.
func GreaterThan(field string, value, bound float64, message string) Rule {
	return Rule{
		Check: func() bool { return value > bound },
		Error: ValidationError{Field: field, Message: message},
	}
}

// AtMost fails when value > bound.
func AtMost(field string, value, bound float64, message string) Rule {
	return Rule{
		Check: func() bool { return value <= bound },
		Error: ValidationError{Field: field, Message: message},
	}
}

// NotEmpty fails for empty slices.
func NotEmpty[T any](field string, values []T, message string) Rule {
	return Rule{
		Check: func() bool { return len(values) > 0 },
		Error: ValidationError{Field: field, Message: message},
	}
}

var httpURLPattern = regexp.MustCompile(`^https?://.+`)

// HTTPURLs fails if any value does not start with http:// or https://.
func HTTPURLs(field string, values []string, message string) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !httpURLPattern.MatchString(v) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: message},
	}
}
