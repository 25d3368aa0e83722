// Package normalize maps raw field input to canonical form. Every function
// is pure: callers decide when to apply them (per keystroke vs. on blur).
package normalize

import (
	"regexp"
	"strings"
)

var (
	reNonDigit   = regexp.MustCompile(`[^0-9]`)
	rePhoneShape = regexp.MustCompile(`^(\d{2,3})(\d{3,4})(\d{4})$`)
	reHandleJunk = regexp.MustCompile(`[^\w.@]`)
	reNonLetter  = regexp.MustCompile(`[^A-Z]`)
)

// phoneMaxLen is the visible ceiling for a hyphenated local number,
// e.g. "010-1234-5678".
const phoneMaxLen = 13

// Phone strips non-digits and hyphenates once the digits form a complete
// 10-11 digit local number. Partial input stays digits-only, so nothing
// jumps around while the user is still typing.
func Phone(raw string) string {
	digits := reNonDigit.ReplaceAllString(raw, "")
	return rePhoneShape.ReplaceAllString(digits, "$1-$2-$3")
}

// PhoneKeystroke applies Phone but refuses results past the visible
// ceiling, keeping the previous value instead.
func PhoneKeystroke(prev, raw string) string {
	hyphenated := Phone(raw)
	if len(hyphenated) <= phoneMaxLen {
		return hyphenated
	}
	return prev
}

// HandleKeystroke strips anything outside alphanumerics, underscore,
// period and @.
func HandleKeystroke(raw string) string {
	return reHandleJunk.ReplaceAllString(raw, "")
}

// HandleBlur prefixes a non-empty handle with @ when missing.
func HandleBlur(raw string) string {
	val := strings.TrimSpace(raw)
	if val != "" && !strings.HasPrefix(val, "@") {
		return "@" + val
	}
	return val
}

// Code4Keystroke upper-cases and keeps letters only.
func Code4Keystroke(raw string) string {
	return reNonLetter.ReplaceAllString(strings.ToUpper(raw), "")
}

// ContactDigits canonicalizes a number handed over by a contact picker:
// digits only, the 82 country prefix rewritten to a leading zero, then the
// usual hyphenation.
func ContactDigits(raw string) string {
	digits := reNonDigit.ReplaceAllString(raw, "")
	if strings.HasPrefix(digits, "82") {
		digits = "0" + digits[2:]
	}
	return Phone(digits)
}
