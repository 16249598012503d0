package resume

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/samber/lo"
)

var (
	yearPattern    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	presentPattern = regexp.MustCompile(`(?i)\b(?:present|current|now|today)\b`)

	monthYearPattern   = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+((?:19|20)\d{2})\b`)
	numericMonthPattern = regexp.MustCompile(`\b(0?[1-9]|1[0-2])[/.](?:19|20)\d{2}\b`)

	selfEmploymentMarkers = []string{"independent", "freelance", "self-employed", "consulting", "contract"}
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

type datePoint struct {
	year  int
	month int // 0 when only the year is known
}

// MonthsElapsed turns a free-text duration like "Sep 2021 – Mar 2022" or "2020 – Present"
// into whole months. Anything it cannot read yields 0.
func MonthsElapsed(duration string, now time.Time) int {
	points := datePoints(duration)
	if len(points) == 0 {
		return 0
	}

	start := points[0]
	var end datePoint

	switch {
	case presentPattern.MatchString(duration):
		end = datePoint{year: now.Year()}
		if start.month > 0 {
			end.month = int(now.Month())
		}
	case len(points) >= 2:
		end = points[1]
	default:
		return 0
	}

	var months int
	if start.month > 0 && end.month > 0 {
		months = (end.year*12 + end.month) - (start.year*12 + start.month)
	} else {
		months = (end.year - start.year) * 12
	}
	return max(0, months)
}

// datePoints returns every year in s, in order, with the month that directly precedes it.
func datePoints(s string) []datePoint {
	months := make(map[int]int)
	for _, m := range monthYearPattern.FindAllStringSubmatchIndex(s, -1) {
		name := strings.ToLower(s[m[2]:m[3]])
		months[m[4]] = monthNumbers[name[:3]]
	}
	for _, m := range numericMonthPattern.FindAllStringSubmatchIndex(s, -1) {
		month, _ := strconv.Atoi(s[m[2]:m[3]])
		// the year starts right after the separator
		months[m[3]+1] = month
	}

	locations := yearPattern.FindAllStringIndex(s, -1)
	points := make([]datePoint, 0, len(locations))
	for _, loc := range locations {
		year, _ := strconv.Atoi(s[loc[0]:loc[1]])
		points = append(points, datePoint{year: year, month: months[loc[0]]})
	}
	return points
}

// IsSelfEmployed reports whether the entry looks like freelance or contract work.
func IsSelfEmployed(entry models.ExperienceEntry) bool {
	label := strings.ToLower(entry.Title + " " + entry.Company)
	return lo.SomeBy(selfEmploymentMarkers, func(marker string) bool {
		return strings.Contains(label, marker)
	})
}

// TotalExperienceYears sums the months of every employed entry and converts them to years
// rounded to one decimal.
func TotalExperienceYears(entries []models.ExperienceEntry, now time.Time) float64 {
	total := lo.SumBy(entries, func(entry models.ExperienceEntry) int {
		if IsSelfEmployed(entry) {
			return 0
		}
		return MonthsElapsed(entry.Duration, now)
	})
	return math.Round(float64(total)/12*10) / 10
}
