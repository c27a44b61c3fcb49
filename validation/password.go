package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// passwordSymbols is the fixed punctuation set a password must draw its
// symbol from. Wire-stable: widening it would accept passwords that older
// clients reject.
const passwordSymbols = "@$!%*?&"

// MinPasswordLength is the minimum rune count of a new password.
const MinPasswordLength = 8

// passwordShapeRe is the overall shape rule: at least 8 characters, drawn
// only from letters, digits, and the fixed symbol set. It deliberately
// restates the length bound, so a short password breaks both the length
// rule and this one.
var passwordShapeRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)

// passwordRule is one independent strength predicate with its deficiency
// line. Rules are checked in declaration order and never short-circuit, so
// the report always lists every unmet rule.
type passwordRule struct {
	deficiency string
	ok         func(s string) bool
}

var passwordRules = []passwordRule{
	{"must be at least 8 characters long", func(s string) bool {
		return len([]rune(s)) >= MinPasswordLength
	}},
	{"must contain an uppercase letter", func(s string) bool {
		return strings.ContainsFunc(s, unicode.IsUpper)
	}},
	{"must contain a lowercase letter", func(s string) bool {
		return strings.ContainsFunc(s, unicode.IsLower)
	}},
	{"must contain a digit", func(s string) bool {
		return strings.ContainsFunc(s, unicode.IsDigit)
	}},
	{"must contain a symbol from " + passwordSymbols, func(s string) bool {
		return strings.ContainsAny(s, passwordSymbols)
	}},
	{"must be 8 or more characters using only letters, digits, and " + passwordSymbols, func(s string) bool {
		return passwordShapeRe.MatchString(s)
	}},
}

// PasswordDeficiencies returns one line per unmet strength rule, in the
// fixed order length, uppercase, lowercase, digit, symbol, overall shape.
// Empty means the password is acceptable.
func PasswordDeficiencies(s string) []string {
	var lines []string
	for _, rule := range passwordRules {
		if !rule.ok(s) {
			lines = append(lines, rule.deficiency)
		}
	}
	return lines
}

// Password validates intake password strength. All deficiencies are
// reported in a single issue as a bullet list, never just the first.
func Password(path, value string) Issues {
	lines := PasswordDeficiencies(value)
	if len(lines) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("password is not strong enough:")
	for _, line := range lines {
		b.WriteString("\n- ")
		b.WriteString(line)
	}
	return Issues{{Path: path, Message: b.String()}}
}
