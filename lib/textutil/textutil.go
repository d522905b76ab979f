package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims and collapses inner whitespace so that
// "  Max   Mustermann " and "max mustermann" compare equal.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Trim(s, " \n\t")
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// EitherContains reports whether one normalized string contains the other.
// Roster pages truncate long names, so containment must work in both
// directions ("Mueller" vs "Th. Mueller").
func EitherContains(a, b string) bool {
	a = Normalize(a)
	b = Normalize(b)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ContainsFold is a case-insensitive strings.Contains.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// MatchAny reports whether the normalized input contains any of the
// given normalized markers.
func MatchAny(s string, markers []string) bool {
	s = Normalize(s)
	for _, m := range markers {
		if m == "" {
			continue
		}
		if strings.Contains(s, Normalize(m)) {
			return true
		}
	}
	return false
}
