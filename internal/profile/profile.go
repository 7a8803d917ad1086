// Package profile sanitizes and validates submitted profile fields.
package profile

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/xaenox/career-guide/internal/models"
)

const (
	// MinFieldLen and MaxFieldLen bound every profile field, counted in
	// runes after sanitization.
	MinFieldLen = 3
	MaxFieldLen = 500
)

// disallowed matches any character outside the permitted input set:
// word characters, whitespace and the literals @ . , -
var disallowed = regexp.MustCompile(`[^\w\s@.,-]`)

// Sanitize strips every disallowed character from text and trims
// surrounding whitespace. It is total and idempotent; empty input yields
// an empty string.
func Sanitize(text string) string {
	return strings.TrimSpace(disallowed.ReplaceAllString(text, ""))
}

// Validate checks the sanitized profile fields against the length rules
// and the raw, pre-sanitization name against the character rule. It
// returns one human-readable message per violation; an empty slice means
// the profile is valid.
//
// The character rule deliberately inspects rawName: running it on the
// sanitized value could never fire, since Sanitize already removed
// everything it would reject.
func Validate(in models.ProfileInput, rawName string) []string {
	var errs []string

	fields := []struct {
		title string
		value string
	}{
		{"User Name", in.UserName},
		{"Interests", in.Interests},
		{"Skills", in.Skills},
		{"Education", in.Education},
		{"Goals", in.Goals},
	}

	for _, f := range fields {
		n := utf8.RuneCountInString(f.value)
		if n < MinFieldLen {
			errs = append(errs, fmt.Sprintf("%s too short (min %d chars)", f.title, MinFieldLen))
		}
		if n > MaxFieldLen {
			errs = append(errs, fmt.Sprintf("%s exceeds %d chars", f.title, MaxFieldLen))
		}
	}

	if disallowed.MatchString(rawName) {
		errs = append(errs, "Invalid characters in name")
	}

	return errs
}
