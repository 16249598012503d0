package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	analyzed = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	applied  = time.Date(2024, time.June, 17, 9, 30, 0, 0, time.UTC)
)

func sampleJobs() []models.AnalyzedJob {
	return []models.AnalyzedJob{
		{
			JobID:          "job_1",
			URL:            "https://www.linkedin.com/jobs/view/1",
			Title:          "IT Support Technician",
			Company:        "Acme, Inc.",
			AnalyzedDate:   analyzed,
			MatchScore:     85,
			Recommendation: models.RecommendationApply,
			Status:         models.StatusApplied,
			MatchDetails: models.MatchDetails{
				MatchedSkills: []string{"Windows", "Active Directory"},
				MissingSkills: []string{"Networking"},
				StrengthAreas: []string{"Strong IT support background"},
				WeakAreas:     []string{"Missing Networking experience"},
			},
			Notes:           `Recruiter said "call back"`,
			ApplicationDate: &applied,
		},
		{
			JobID:          "job_2",
			URL:            "https://www.reed.co.uk/jobs/dev/2",
			Title:          "Developer",
			Company:        "Globex",
			AnalyzedDate:   analyzed,
			MatchScore:     40,
			Recommendation: models.RecommendationPass,
			Status:         models.StatusAnalyzed,
		},
	}
}

func Test_ToCSV_NoJobs_ReturnsPlaceholder(t *testing.T) {
	out, err := ToCSV(nil)

	require.NoError(t, err)
	assert.Equal(t, "No jobs to export", out)
}

func Test_ToCSV_WritesHeaderAndEscapedRows(t *testing.T) {
	out, err := ToCSV(sampleJobs())

	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Job Title,Company,URL,Match Score,Status,Analyzed Date,Application Date,"+
		"Matched Skills Count,Missing Skills Count,Strengths Count,Gaps Count,Notes", lines[0])
	assert.Equal(t, `IT Support Technician,"Acme, Inc.",https://www.linkedin.com/jobs/view/1,85,applied,`+
		`2024-06-15T10:00:00Z,2024-06-17T09:30:00Z,2,1,1,1,"Recruiter said ""call back"""`, lines[1])
	assert.Equal(t, "Developer,Globex,https://www.reed.co.uk/jobs/dev/2,40,analyzed,2024-06-15T10:00:00Z,,0,0,0,0,", lines[2])
}

func Test_ToJSON_RoundTripsFields(t *testing.T) {
	out, err := ToJSON(sampleJobs())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "job_1", decoded[0]["jobId"])
	assert.Equal(t, "applied", decoded[0]["status"])
	assert.NotContains(t, decoded[1], "applicationDate")
	assert.True(t, strings.HasPrefix(out, "[\n  {"))
}

func Test_ToJSON_NoJobs_IsEmptyArray(t *testing.T) {
	out, err := ToJSON(nil)

	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func Test_ToMarkdown_Report(t *testing.T) {
	out := ToMarkdown(sampleJobs(), analyzed)

	assert.True(t, strings.HasPrefix(out, "# Job Application Analysis Report\n\n**Total Jobs Analyzed:** 2\n**Report Generated:** 2024-06-15\n"))
	assert.Contains(t, out, "- **Average Match Score:** 63%\n")
	assert.Contains(t, out, "  - Applied: 1\n  - Analyzed: 1\n")
	assert.Contains(t, out, "### 1. IT Support Technician at Acme, Inc.\n\n- **Match Score:** 85% 🎯\n")
	assert.Contains(t, out, "- **Applied:** 2024-06-17\n")
	assert.Contains(t, out, "**✓ Matched Skills (2):**\nWindows, Active Directory\n\n")
	assert.Contains(t, out, "**⚠️ Gaps:**\n- Missing Networking experience\n\n")
	assert.Contains(t, out, "**Notes:** Recruiter said \"call back\"\n\n")
	assert.Contains(t, out, "### 2. Developer at Globex\n\n- **Match Score:** 40% ❌\n")
}

func Test_ToMarkdown_NoJobs(t *testing.T) {
	assert.Equal(t, "# Job Application Analysis Report\n\nNo jobs analyzed yet.", ToMarkdown(nil, analyzed))
}

func Test_FileName(t *testing.T) {
	assert.Equal(t, "job-analysis-2024-06-15.md", FileName("md", analyzed))
}
