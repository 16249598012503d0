// Package resume turns plain résumé text into a structured profile.
package resume

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/extraction"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const maxSummaryLength = 500

func Parse(rawText string) models.ResumeProfile {
	return ParseAt(rawText, time.Now())
}

// ParseAt is Parse with "present" durations measured up to now.
func ParseAt(rawText string, now time.Time) models.ResumeProfile {
	text := extraction.Truncate(rawText)
	sections := DetectSections(text)
	experience := ExtractExperience(sections.Experience)

	profile := models.ResumeProfile{
		PersonalInfo:         ExtractPersonalInfo(text),
		Summary:              summarize(sections.Summary),
		Skills:               collectSkills(text, sections),
		Experience:           experience,
		Education:            ExtractEducation(sections.Education),
		Certifications:       ExtractCertifications(sections.Certifications),
		Languages:            ExtractLanguages(sections.Languages),
		TotalExperienceYears: TotalExperienceYears(experience, now),
	}

	log.WithFields(log.Fields{
		"skills":         len(profile.Skills),
		"experience":     len(profile.Experience),
		"education":      len(profile.Education),
		"certifications": len(profile.Certifications),
		"total_years":    profile.TotalExperienceYears,
	}).Debug("resume parsed")

	return profile
}

// collectSkills unions the skills of the skills, experience and projects sections,
// falling back to the whole text when none of them mention any.
func collectSkills(text string, sections Sections) []string {
	found := make([]string, 0)
	for _, section := range []string{sections.Skills, sections.Experience, sections.Projects} {
		if section != "" {
			found = append(found, extraction.ExtractSkills(section)...)
		}
	}
	if len(found) == 0 {
		found = extraction.ExtractSkills(text)
	}

	found = lo.Uniq(found)
	sort.Strings(found)
	return found
}

func summarize(summary string) string {
	summary = strings.TrimSpace(summary)
	if utf8.RuneCountInString(summary) <= maxSummaryLength {
		return summary
	}
	return string([]rune(summary)[:maxSummaryLength])
}
