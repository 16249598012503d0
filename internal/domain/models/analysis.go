package models

import "time"

type Recommendation string

const (
	RecommendationApply Recommendation = "apply"
	RecommendationMaybe Recommendation = "maybe"
	RecommendationPass  Recommendation = "pass"
)

type MatchDetails struct {
	MatchedSkills []string `json:"matchedSkills"`
	// MissingSkills holds required skills only.
	MissingSkills []string `json:"missingSkills"`
	StrengthAreas []string `json:"strengthAreas"`
	WeakAreas     []string `json:"weakAreas"`
}

type ScoringBreakdown struct {
	RequiredMatched  int     `json:"requiredMatched"`
	RequiredTotal    int     `json:"requiredTotal"`
	PreferredMatched int     `json:"preferredMatched"`
	PreferredTotal   int     `json:"preferredTotal"`
	ExperienceBonus  float64 `json:"experienceBonus"`
	WeightedScore    float64 `json:"weightedScore"`
}

type AnalysisResult struct {
	JobID          string           `json:"jobId"`
	AnalyzedDate   time.Time        `json:"analyzedDate"`
	MatchScore     int              `json:"matchScore"`
	BaseScore      int              `json:"baseScore"`
	BonusPoints    int              `json:"bonusPoints"`
	Recommendation Recommendation   `json:"recommendation"`
	MatchDetails   MatchDetails     `json:"matchDetails"`
	Confidence     float64          `json:"confidence"`
	Breakdown      ScoringBreakdown `json:"scoringBreakdown"`
}
