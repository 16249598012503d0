package analysis

import (
	"net/url"
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/maxaizer/jobfit/internal/domain/models"
)

// JobID derives a stable identifier from a job URL: a 32-bit rolling hash (h*31 + c over
// UTF-16 code units) of which the absolute value is written in base 36.
func JobID(jobURL string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(jobURL)) {
		h = h*31 + int32(c)
	}

	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return "job_" + strconv.FormatInt(abs, 36)
}

// NormalizeJobURL drops the query and fragment. Unparseable input is returned as is.
func NormalizeJobURL(jobURL string) string {
	u, err := url.Parse(jobURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return jobURL
	}
	return u.Scheme + "://" + u.Host + u.Path
}

var jobSources = []struct {
	source  models.JobSource
	pattern *regexp.Regexp
}{
	{models.SourceLinkedIn, regexp.MustCompile(`linkedin\.com/jobs/(view|collections)/\d+`)},
	{models.SourceIndeed, regexp.MustCompile(`indeed\.com/viewjob`)},
	{models.SourceReed, regexp.MustCompile(`reed\.co\.uk/jobs/[^/]+/\d+`)},
	{models.SourceHH, regexp.MustCompile(`hh\.ru/vacancy/\d+`)},
}

// DetectJobSource reports which known job site the URL points to.
func DetectJobSource(jobURL string) (models.JobSource, bool) {
	for _, s := range jobSources {
		if s.pattern.MatchString(jobURL) {
			return s.source, true
		}
	}
	return "", false
}
