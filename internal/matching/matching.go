// Package matching decides whether two skill spellings name the same skill.
package matching

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// aliases maps a normalized canonical key to its accepted normalized variants.
// Lookups are one hop only: two variants of the same key do not match each other.
var aliases = map[string][]string{
	"javascript": {"js", "ecmascript"},
	"typescript": {"ts"},
	"react":      {"reactjs"},
	"vue":        {"vuejs"},
	"node":       {"nodejs"},
	"postgres":   {"postgresql"},
	"kubernetes": {"k8s"},
	"docker":     {"containerization"},
}

type Result struct {
	Matched []string
	Missing []string
}

// Normalize lower-cases s, folds accents and drops '.', '-', '_' and whitespace.
func Normalize(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if r == '.' || r == '-' || r == '_' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Equivalent reports whether a and b denote the same skill: equal or contained in one
// another after normalization, or related through the alias table. Blank spellings never match.
func Equivalent(a, b string) bool {
	s1, s2 := Normalize(a), Normalize(b)
	if s1 == "" || s2 == "" {
		return false
	}

	if s1 == s2 || strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return true
	}

	for base, variants := range aliases {
		if (s1 == base && lo.Contains(variants, s2)) || (s2 == base && lo.Contains(variants, s1)) {
			return true
		}
	}
	return false
}

// MatchSkills splits targets into those equivalent to at least one candidate and the rest,
// preserving target order.
func MatchSkills(targets, candidates []string) Result {
	result := Result{Matched: make([]string, 0), Missing: make([]string, 0)}
	for _, target := range targets {
		if lo.SomeBy(candidates, func(candidate string) bool { return Equivalent(target, candidate) }) {
			result.Matched = append(result.Matched, target)
		} else {
			result.Missing = append(result.Missing, target)
		}
	}
	return result
}
