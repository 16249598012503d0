package analysis

import (
	"strings"
	"testing"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func Test_JobID(t *testing.T) {
	assert.Equal(t, "job_0", JobID(""))
	assert.Equal(t, "job_2p", JobID("a"))
	assert.Equal(t, "job_2e9", JobID("ab"))
}

func Test_JobID_LongURL_IsStableAndDistinct(t *testing.T) {
	long := "https://www.linkedin.com/jobs/view/" + strings.Repeat("9", 200)

	assert.Equal(t, JobID(long), JobID(long))
	assert.NotEqual(t, JobID(long), JobID(long+"1"))
	assert.True(t, strings.HasPrefix(JobID(long), "job_"))
	assert.NotContains(t, JobID(long), "-")
}

func Test_NormalizeJobURL(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/jobs/view/123",
		NormalizeJobURL("https://www.linkedin.com/jobs/view/123?trk=abc&ref=x#top"))
	assert.Equal(t, "not a url", NormalizeJobURL("not a url"))
}

func Test_DetectJobSource(t *testing.T) {
	tests := []struct {
		url      string
		expected models.JobSource
		ok       bool
	}{
		{"https://www.linkedin.com/jobs/view/3912345678", models.SourceLinkedIn, true},
		{"https://www.linkedin.com/jobs/collections/42", models.SourceLinkedIn, true},
		{"https://uk.indeed.com/viewjob?jk=abc", models.SourceIndeed, true},
		{"https://www.reed.co.uk/jobs/it-support/51234567", models.SourceReed, true},
		{"https://hh.ru/vacancy/98765", models.SourceHH, true},
		{"https://example.com/careers/1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			source, ok := DetectJobSource(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, source)
		})
	}
}
