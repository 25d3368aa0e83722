// Package validate holds the pure format predicates the wizard runs
// against canonical field values. Required-ness is checked separately from
// format: an empty value never fails a format check here.
package validate

import (
	"regexp"
	"strings"

	"github.com/gapbbong/survey-1cl/model"
)

var (
	rePhone     = regexp.MustCompile(`^010-\d{4}-\d{4}$`)
	reCode4Full = regexp.MustCompile(`^[EI][SN][TF][JP]$`)
)

// Phone reports whether value is a complete local mobile number,
// prefix fixed to 010.
func Phone(value string) bool {
	return rePhone.MatchString(value)
}

// Code4Verdict classifies a personality-type entry.
type Code4Verdict int

const (
	// Code4Empty: nothing entered yet, not an error.
	Code4Empty Code4Verdict = iota
	Code4Pass
	Code4TooLong
	Code4BadFull
	Code4BadSingle
	// Code4BadPartial: 2 or 3 letters can never be valid; the field takes
	// either the full four-letter code or a lone E/I for "unsure".
	Code4BadPartial
)

func (v Code4Verdict) Valid() bool {
	return v == Code4Pass
}

// Code4 applies the four-letter grammar with its partial-entry affordance:
// a single E or I stands in for an undecided answer.
func Code4(value string) Code4Verdict {
	val := strings.ToUpper(strings.TrimSpace(value))
	switch {
	case len(val) == 0:
		return Code4Empty
	case len(val) >= 5:
		return Code4TooLong
	case len(val) == 4:
		if reCode4Full.MatchString(val) {
			return Code4Pass
		}
		return Code4BadFull
	case len(val) == 1:
		if val == "E" || val == "I" {
			return Code4Pass
		}
		return Code4BadSingle
	default:
		return Code4BadPartial
	}
}

// Handle reports whether a handle carries more than just the @ prefix.
func Handle(value string) bool {
	return len(strings.TrimSpace(value)) > 1
}

// RequiredFilled reports whether a required field holds an answer: a
// non-blank string, or at least one selection for grouped controls.
func RequiredFilled(value model.FieldValue) bool {
	return !value.Empty()
}
