package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/maxaizer/jobfit/internal/matching"
	"github.com/samber/lo"
)

var (
	frontendSkills = []string{"React", "Vue", "Angular", "JavaScript", "TypeScript", "HTML", "CSS"}
	backendSkills  = []string{"Node.js", "Python", "Java", "Django", "Express", "SQL"}
	cloudSkills    = []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes"}
	supportSkills  = []string{"Technical Support", "IT Support", "Help Desk", "Service Desk", "Troubleshooting", "Active Directory", "Windows"}
)

const defaultStrength = "Relevant technical skills"

// Strengths describes the matched skills in prose. It is presentational only.
func Strengths(matched []string, experienceYears float64) []string {
	strengths := make([]string, 0)

	frontend := countIn(matched, frontendSkills)
	backend := countIn(matched, backendSkills)

	if frontend >= 3 {
		strengths = append(strengths, "Strong frontend development background")
	}
	if backend >= 3 {
		strengths = append(strengths, "Solid backend development experience")
	}
	if frontend >= 2 && backend >= 2 {
		strengths = append(strengths, "Full-stack development capabilities")
	}
	if countIn(matched, cloudSkills) >= 2 {
		strengths = append(strengths, "Cloud and DevOps experience")
	}
	if countIn(matched, supportSkills) >= 3 {
		strengths = append(strengths, "Strong IT support background")
	}
	if experienceYears >= 3 {
		strengths = append(strengths, fmt.Sprintf("%d+ years of professional experience", int(math.Floor(experienceYears))))
	}

	if len(strengths) == 0 && len(matched) > 0 {
		strengths = append(strengths, defaultStrength)
	}
	return strengths
}

// Weaknesses describes the missing required skills in prose.
func Weaknesses(missingRequired []string) []string {
	switch len(missingRequired) {
	case 0:
		return []string{}
	case 1:
		return []string{fmt.Sprintf("Missing %s experience", missingRequired[0])}
	case 2:
		return []string{fmt.Sprintf("Missing %s experience", strings.Join(missingRequired, " and "))}
	default:
		return []string{fmt.Sprintf("Missing %d required skills", len(missingRequired))}
	}
}

func countIn(matched, group []string) int {
	return lo.CountBy(matched, func(skill string) bool {
		return lo.SomeBy(group, func(g string) bool { return matching.Equivalent(skill, g) })
	})
}
