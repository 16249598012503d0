package scoring

import (
	"math"
	"unicode/utf8"
)

const (
	baseConfidence      = 0.5
	detailedJobLength   = 500
	shortJobLength      = 200
	detailedResumeSkill = 5
)

// Confidence estimates how much the analysis can be trusted, in [0, 1]. Informational only.
func Confidence(resumeSkills, experienceEntries int, jobDescription string) float64 {
	confidence := baseConfidence

	if resumeSkills > detailedResumeSkill {
		confidence += 0.1
	}
	if experienceEntries > 1 {
		confidence += 0.1
	}

	length := utf8.RuneCountInString(jobDescription)
	if length > detailedJobLength {
		confidence += 0.1
	}
	if length < shortJobLength {
		confidence -= 0.2
	}

	confidence = math.Max(0, math.Min(1, confidence))
	return math.Round(confidence*100) / 100
}
