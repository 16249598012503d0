// Package scoring turns matched and total job skills into a weighted 0-100 match score.
package scoring

import (
	"math"

	"github.com/maxaizer/jobfit/internal/skills"
)

const (
	requiredMultiplier  = 3.0
	preferredMultiplier = 1.0

	bonusPerYear = 5.0
	maxBonus     = 20.0
	maxScore     = 100.0
)

type Breakdown struct {
	RequiredWeight    float64
	RequiredPossible  float64
	PreferredWeight   float64
	PreferredPossible float64
	RequiredMatched   int
	RequiredTotal     int
	PreferredMatched  int
	PreferredTotal    int
}

// Result keeps BaseScore and Bonus unrounded. MatchScore is the only rounded value and is
// computed from their sum, so nearby inputs do not collapse onto one percentage.
type Result struct {
	MatchScore int
	BaseScore  float64
	Bonus      float64
	Breakdown  Breakdown
}

func Score(required, matchedRequired, preferred, matchedPreferred []string, experienceYears float64) Result {
	b := Breakdown{
		RequiredWeight:    skills.WeightedTotal(matchedRequired) * requiredMultiplier,
		RequiredPossible:  skills.WeightedTotal(required) * requiredMultiplier,
		PreferredWeight:   skills.WeightedTotal(matchedPreferred) * preferredMultiplier,
		PreferredPossible: skills.WeightedTotal(preferred) * preferredMultiplier,
		RequiredMatched:   len(matchedRequired),
		RequiredTotal:     len(required),
		PreferredMatched:  len(matchedPreferred),
		PreferredTotal:    len(preferred),
	}

	base := 0.0
	if possible := b.RequiredPossible + b.PreferredPossible; possible > 0 {
		base = (b.RequiredWeight + b.PreferredWeight) / possible * 100
	}

	bonus := ExperienceBonus(experienceYears)

	return Result{
		MatchScore: Combine(base, bonus),
		BaseScore:  base,
		Bonus:      bonus,
		Breakdown:  b,
	}
}

// ExperienceBonus is 5 points per year, capped at 20. Unusable inputs give no bonus.
func ExperienceBonus(years float64) float64 {
	if math.IsNaN(years) || years <= 0 {
		return 0
	}
	return math.Min(maxBonus, years*bonusPerYear)
}

// Combine is the single rounding point of the score: round(min(100, base + bonus)).
func Combine(base, bonus float64) int {
	return int(math.Round(math.Max(0, math.Min(maxScore, base+bonus))))
}
