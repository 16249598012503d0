// Package analysis compares a job posting with a résumé profile.
package analysis

import (
	"math"
	"strings"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/extraction"
	"github.com/maxaizer/jobfit/internal/matching"
	"github.com/maxaizer/jobfit/internal/scoring"
	"github.com/samber/lo"
)

func AnalyzeJob(job models.JobPosting, profile models.ResumeProfile) models.AnalysisResult {
	return AnalyzeJobAt(job, profile, time.Now())
}

// AnalyzeJobAt is AnalyzeJob with a fixed analysis date. Two calls with the same arguments
// return equal results.
func AnalyzeJobAt(job models.JobPosting, profile models.ResumeProfile, now time.Time) models.AnalysisResult {
	skillSet := extraction.ExtractSkillSet(job.Description)
	resumeSkills := lo.Map(profile.Skills, func(skill string, _ int) string {
		return strings.TrimSpace(skill)
	})

	all := matching.MatchSkills(skillSet.All, resumeSkills)
	required := matching.MatchSkills(skillSet.Required, resumeSkills)
	preferred := matching.MatchSkills(skillSet.Preferred, resumeSkills)

	score := scoring.Score(skillSet.Required, required.Matched, skillSet.Preferred, preferred.Matched,
		profile.TotalExperienceYears)

	return models.AnalysisResult{
		JobID:          JobID(job.URL),
		AnalyzedDate:   now,
		MatchScore:     score.MatchScore,
		BaseScore:      int(math.Round(score.BaseScore)),
		BonusPoints:    int(math.Round(score.Bonus)),
		Recommendation: scoring.Recommend(score.MatchScore, len(required.Missing), len(all.Matched)),
		MatchDetails: models.MatchDetails{
			MatchedSkills: all.Matched,
			MissingSkills: required.Missing,
			StrengthAreas: scoring.Strengths(all.Matched, profile.TotalExperienceYears),
			WeakAreas:     scoring.Weaknesses(required.Missing),
		},
		Confidence: scoring.Confidence(len(profile.Skills), len(profile.Experience), job.Description),
		Breakdown: models.ScoringBreakdown{
			RequiredMatched:  score.Breakdown.RequiredMatched,
			RequiredTotal:    score.Breakdown.RequiredTotal,
			PreferredMatched: score.Breakdown.PreferredMatched,
			PreferredTotal:   score.Breakdown.PreferredTotal,
			ExperienceBonus:  score.Bonus,
			WeightedScore:    score.BaseScore,
		},
	}
}
