// Package validation holds the pure input predicates applied at the request
// boundary, before any persistence or token work happens. All functions are
// deterministic and side-effect free.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	nameMinLen = 2
	nameMaxLen = 20

	passwordMinLen  = 8
	passwordSymbols = "#$^+=!*()@%&"
)

var (
	// One or two alphabetic words separated by a single space.
	nameRe = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)?$`)

	emailRe = regexp.MustCompile(`^[\w.-]+@([A-Za-z0-9-]+\.)+[A-Za-z]{2,6}$`)
)

// IsValidName reports whether s is an acceptable first or last name:
// letters with at most one internal space, 2 to 20 characters.
func IsValidName(s string) bool {
	return len(s) >= nameMinLen && len(s) <= nameMaxLen && nameRe.MatchString(s)
}

// IsValidEmail reports whether s has the local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPassword reports whether s is at least 8 characters and contains a
// lowercase letter, an uppercase letter, a digit and one of #$^+=!*()@%&.
// Go's RE2 has no lookahead, so the class checks are plain scans.
func IsValidPassword(s string) bool {
	// Length counts characters, not bytes, so multibyte passwords are
	// measured the same way clients see them.
	if utf8.RuneCountInString(s) < passwordMinLen {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}
