// Package extraction finds dictionary skills in free text and splits a job posting's skills
// into required and preferred sets.
//
// Matching is literal: a skill is present only when its dictionary spelling appears as a
// whole word (case-insensitive). "Customer Service" is found in "excellent customer service
// skills" but not in "great with customers".
package extraction

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/maxaizer/jobfit/internal/skills"
	"github.com/samber/lo"
)

// MaxTextLength bounds the number of bytes scanned per call.
const MaxTextLength = 200_000

var (
	requiredKeywords  = []string{"required", "must have", "must-have", "essential", "mandatory", "necessary"}
	preferredKeywords = []string{"preferred", "nice to have", "nice-to-have", "bonus", "plus", "desirable", "would be great"}
)

type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

var patterns = buildPatterns(skills.All())

func buildPatterns(list []string) []skillPattern {
	return lo.Map(list, func(skill string, _ int) skillPattern {
		return skillPattern{skill: skill, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)}
	})
}

// SkillSet is the job-side view of a posting. Required and Preferred partition All.
type SkillSet struct {
	All       []string
	Required  []string
	Preferred []string
}

// ExtractSkills returns the dictionary skills present in text, in dictionary order.
func ExtractSkills(text string) []string {
	text = Truncate(text)
	found := make([]string, 0)
	for _, p := range patterns {
		if p.re.MatchString(text) {
			found = append(found, p.skill)
		}
	}
	return found
}

// ExtractRequiredSkills walks text line by line. A line containing a required keyword
// switches the required block on (its own skills included), a line containing a preferred
// keyword switches it off. When no required keyword appears anywhere, the first half
// (rounded up) of ExtractSkills is treated as required.
func ExtractRequiredSkills(text string) []string {
	return requiredFrom(Truncate(text), ExtractSkills(text))
}

// ExtractPreferredSkills returns the skills of text that are not required, in dictionary order.
func ExtractPreferredSkills(text string) []string {
	all := ExtractSkills(text)
	return preferredFrom(all, requiredFrom(Truncate(text), all))
}

func ExtractSkillSet(text string) SkillSet {
	all := ExtractSkills(text)
	required := requiredFrom(Truncate(text), all)
	return SkillSet{
		All:       all,
		Required:  required,
		Preferred: preferredFrom(all, required),
	}
}

func requiredFrom(text string, all []string) []string {
	candidates := lo.Filter(patterns, func(p skillPattern, _ int) bool {
		return lo.Contains(all, p.skill)
	})

	required := make([]string, 0)
	seen := make(map[string]bool)
	keywordFound, inRequired := false, false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

		if containsAny(lower, requiredKeywords) {
			inRequired, keywordFound = true, true
		} else if containsAny(lower, preferredKeywords) {
			inRequired = false
		}

		if !inRequired {
			continue
		}
		for _, p := range candidates {
			if !seen[p.skill] && p.re.MatchString(line) {
				seen[p.skill] = true
				required = append(required, p.skill)
			}
		}
	}

	if !keywordFound {
		half := int(math.Ceil(float64(len(all)) / 2))
		return append(make([]string, 0, half), all[:half]...)
	}
	return required
}

func preferredFrom(all, required []string) []string {
	return lo.Filter(all, func(skill string, _ int) bool {
		return !lo.Contains(required, skill)
	})
}

func containsAny(s string, keywords []string) bool {
	return lo.SomeBy(keywords, func(keyword string) bool {
		return strings.Contains(s, keyword)
	})
}

// Truncate cuts text to at most MaxTextLength bytes on a rune boundary.
func Truncate(text string) string {
	if len(text) <= MaxTextLength {
		return text
	}
	cut := MaxTextLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
