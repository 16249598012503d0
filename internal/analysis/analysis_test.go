package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

var analyzedAt = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

const itSupportPosting = `IT Support Technician
Required:
- Windows
- Active Directory
- Technical Support
- IT Support
- Networking
- Microsoft Office
- Troubleshooting
- Customer Service
- Communication
- Documentation
2+ years experience required`

func itSupportProfile() models.ResumeProfile {
	return models.ResumeProfile{
		Skills: []string{
			"Windows", "Active Directory", "Technical Support", "IT Support", "Networking",
			"Microsoft Office", "Troubleshooting", "Customer Service", "Communication", "Documentation",
		},
		TotalExperienceYears: 1.7,
	}
}

func Test_AnalyzeJob_ITSupportScenario_RecommendsApply(t *testing.T) {
	job := models.JobPosting{URL: "https://www.linkedin.com/jobs/view/1", Title: "IT Support Technician", Description: itSupportPosting}

	result := AnalyzeJobAt(job, itSupportProfile(), analyzedAt)

	assert.Greater(t, result.MatchScore, 70)
	assert.Equal(t, models.RecommendationApply, result.Recommendation)
	assert.Len(t, result.MatchDetails.MatchedSkills, 10)
	assert.Empty(t, result.MatchDetails.MissingSkills)
	assert.Equal(t, 10, result.Breakdown.RequiredTotal)
	assert.Equal(t, 0, result.Breakdown.PreferredTotal)
	assert.InDelta(t, 8.5, result.Breakdown.ExperienceBonus, 1e-9)
	assert.Contains(t, result.MatchDetails.StrengthAreas, "Strong IT support background")
}

func Test_AnalyzeJob_SameInput_IsDeterministic(t *testing.T) {
	job := models.JobPosting{URL: "https://example.com/job/1", Title: "Dev", Description: itSupportPosting}

	first := AnalyzeJobAt(job, itSupportProfile(), analyzedAt)
	second := AnalyzeJobAt(job, itSupportProfile(), analyzedAt)

	assert.Equal(t, first, second)
}

func Test_AnalyzeJob_EmptyProfile_ScoresNearZero(t *testing.T) {
	job := models.JobPosting{URL: "https://example.com/job/2", Title: "Dev", Description: itSupportPosting}

	result := AnalyzeJobAt(job, models.ResumeProfile{}, analyzedAt)

	assert.Less(t, result.MatchScore, 10)
	assert.Empty(t, result.MatchDetails.MatchedSkills)
	assert.Equal(t, models.RecommendationPass, result.Recommendation)
}

func Test_AnalyzeJob_MoreExperience_RaisesScoreUntilCap(t *testing.T) {
	job := models.JobPosting{URL: "https://example.com/job/3", Title: "Dev", Description: "Required:\nPython\nGo"}
	profile := models.ResumeProfile{Skills: []string{"Python"}}

	scores := make([]int, 0)
	for _, years := range []float64{0, 1, 2, 3, 4, 5, 10} {
		profile.TotalExperienceYears = years
		scores = append(scores, AnalyzeJobAt(job, profile, analyzedAt).MatchScore)
	}

	assert.Equal(t, []int{50, 55, 60, 65, 70, 70, 70}, scores)
}

func Test_AnalyzeJob_RequiredMatch_BeatsPreferredMatch(t *testing.T) {
	profile := models.ResumeProfile{Skills: []string{"Python"}}
	requiredMatch := models.JobPosting{URL: "https://example.com/a", Title: "A", Description: "Required: Python\nNice to have: Docker"}
	preferredMatch := models.JobPosting{URL: "https://example.com/b", Title: "B", Description: "Required: Docker\nNice to have: Python"}

	a := AnalyzeJobAt(requiredMatch, profile, analyzedAt)
	b := AnalyzeJobAt(preferredMatch, profile, analyzedAt)

	assert.Greater(t, a.MatchScore, b.MatchScore)
}

func Test_AnalyzeJob_AnyInput_StaysInRange(t *testing.T) {
	descriptions := []string{
		"",
		"Required: Python, Go, Rust, Java, Docker, Kubernetes, AWS",
		strings.Repeat("React TypeScript Node.js ", 5000),
		"💥 must have ünïcödé ☃",
	}
	profiles := []models.ResumeProfile{
		{},
		{Skills: []string{"Python", "Go", "Docker"}, TotalExperienceYears: 50},
		{Skills: []string{"React", "TypeScript", "Node.js", "JS"}, TotalExperienceYears: -2},
	}

	for _, description := range descriptions {
		for _, profile := range profiles {
			result := AnalyzeJobAt(models.JobPosting{URL: "u", Title: "t", Description: description}, profile, analyzedAt)
			assert.GreaterOrEqual(t, result.MatchScore, 0)
			assert.LessOrEqual(t, result.MatchScore, 100)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		}
	}
}
