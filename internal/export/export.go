// Package export renders the analyzed job history as JSON, CSV or a Markdown report.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	NoJobsCSV = "No jobs to export"

	dateLayout = "2006-01-02"
)

var csvHeader = []string{
	"Job Title", "Company", "URL", "Match Score", "Status", "Analyzed Date", "Application Date",
	"Matched Skills Count", "Missing Skills Count", "Strengths Count", "Gaps Count", "Notes",
}

var titleCase = cases.Title(language.English)

// FileName returns the conventional export file name for the format, e.g. job-analysis-2024-06-15.csv.
func FileName(format string, now time.Time) string {
	return fmt.Sprintf("job-analysis-%s.%s", now.Format(dateLayout), format)
}

func ToJSON(jobs []models.AnalyzedJob) (string, error) {
	if jobs == nil {
		jobs = []models.AnalyzedJob{}
	}
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal jobs")
	}
	return string(data), nil
}

func ToCSV(jobs []models.AnalyzedJob) (string, error) {
	if len(jobs) == 0 {
		return NoJobsCSV, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", errors.Wrap(err, "failed to write csv header")
	}
	for _, job := range jobs {
		applicationDate := ""
		if job.ApplicationDate != nil {
			applicationDate = job.ApplicationDate.Format(time.RFC3339)
		}

		record := []string{
			job.Title,
			job.Company,
			job.URL,
			strconv.Itoa(job.MatchScore),
			string(job.Status),
			job.AnalyzedDate.Format(time.RFC3339),
			applicationDate,
			strconv.Itoa(len(job.MatchDetails.MatchedSkills)),
			strconv.Itoa(len(job.MatchDetails.MissingSkills)),
			strconv.Itoa(len(job.MatchDetails.StrengthAreas)),
			strconv.Itoa(len(job.MatchDetails.WeakAreas)),
			job.Notes,
		}
		if err := w.Write(record); err != nil {
			return "", errors.Wrapf(err, "failed to write csv row for job %s", job.JobID)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "failed to flush csv")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ToMarkdown renders a human-readable report: summary statistics followed by one section per job.
func ToMarkdown(jobs []models.AnalyzedJob, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# Job Application Analysis Report\n\n")
	if len(jobs) == 0 {
		b.WriteString("No jobs analyzed yet.")
		return b.String()
	}

	fmt.Fprintf(&b, "**Total Jobs Analyzed:** %d\n", len(jobs))
	fmt.Fprintf(&b, "**Report Generated:** %s\n\n", generatedAt.Format(dateLayout))

	average := float64(lo.SumBy(jobs, func(job models.AnalyzedJob) int { return job.MatchScore })) / float64(len(jobs))
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Average Match Score:** %d%%\n", int(math.Round(average)))
	b.WriteString("- **Status Breakdown:**\n")

	statuses := lo.Uniq(lo.Map(jobs, func(job models.AnalyzedJob, _ int) models.JobStatus { return job.Status }))
	for _, status := range statuses {
		count := lo.CountBy(jobs, func(job models.AnalyzedJob) bool { return job.Status == status })
		fmt.Fprintf(&b, "  - %s: %d\n", titleCase.String(string(status)), count)
	}
	b.WriteString("\n---\n\n## Job Details\n\n")

	for i, job := range jobs {
		writeJob(&b, i+1, job)
	}
	return b.String()
}

func writeJob(b *strings.Builder, n int, job models.AnalyzedJob) {
	fmt.Fprintf(b, "### %d. %s at %s\n\n", n, job.Title, job.Company)
	fmt.Fprintf(b, "- **Match Score:** %d%% %s\n", job.MatchScore, scoreMark(job.MatchScore))
	fmt.Fprintf(b, "- **Status:** %s\n", titleCase.String(string(job.Status)))
	fmt.Fprintf(b, "- **Analyzed:** %s\n", job.AnalyzedDate.Format(dateLayout))
	if job.ApplicationDate != nil {
		fmt.Fprintf(b, "- **Applied:** %s\n", job.ApplicationDate.Format(dateLayout))
	}
	fmt.Fprintf(b, "- **URL:** %s\n\n", job.URL)

	details := job.MatchDetails
	if len(details.MatchedSkills) > 0 {
		fmt.Fprintf(b, "**✓ Matched Skills (%d):**\n%s\n\n", len(details.MatchedSkills), strings.Join(details.MatchedSkills, ", "))
	}
	if len(details.MissingSkills) > 0 {
		fmt.Fprintf(b, "**✗ Missing Skills (%d):**\n%s\n\n", len(details.MissingSkills), strings.Join(details.MissingSkills, ", "))
	}
	writeList(b, "**💪 Strengths:**", details.StrengthAreas)
	writeList(b, "**⚠️ Gaps:**", details.WeakAreas)

	if job.Notes != "" {
		fmt.Fprintf(b, "**Notes:** %s\n\n", job.Notes)
	}
	b.WriteString("---\n\n")
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(title + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func scoreMark(score int) string {
	switch {
	case score >= 80:
		return "🎯"
	case score >= 70:
		return "✅"
	case score >= 50:
		return "⚠️"
	default:
		return "❌"
	}
}
