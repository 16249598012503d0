package hh

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrTooDeepPagination = errors.New("too deep pagination")

const (
	defaultPerPage = 20
	maxResults     = 2000
)

type Experience string

const (
	NoExperience Experience = "noExperience"
	Between1and3 Experience = "between1And3"
	Between3and6 Experience = "between3And6"
	MoreThan6    Experience = "moreThan6"
)

// ExperienceFromYears maps a candidate's total years to the hh experience bucket.
func ExperienceFromYears(years float64) Experience {
	switch {
	case years < 1:
		return NoExperience
	case years < 3:
		return Between1and3
	case years < 6:
		return Between3and6
	default:
		return MoreThan6
	}
}

type Schedule string

const (
	FullDay  Schedule = "fullDay"
	Flexible Schedule = "flexible"
	Remote   Schedule = "remote"
)

func ParseSchedule(s string) (Schedule, error) {
	switch Schedule(strings.TrimSpace(s)) {
	case FullDay:
		return FullDay, nil
	case Flexible:
		return Flexible, nil
	case Remote:
		return Remote, nil
	default:
		return "", fmt.Errorf("invalid schedule type: %v", s)
	}
}

type SearchParameters struct {
	Text                   string
	AreaID                 string
	Experience             Experience
	Schedules              []Schedule
	OrderByPublicationTime bool
	DateFrom               time.Time
	Period                 int
	Page                   int
	// PerPage defaults to 20 when zero.
	PerPage int
}

func (s SearchParameters) perPage() int {
	if s.PerPage == 0 {
		return defaultPerPage
	}
	return s.PerPage
}

func (s SearchParameters) Validate() error {
	if s.Period != 0 && !s.DateFrom.IsZero() {
		return fmt.Errorf("can't use both period and dateFrom")
	}

	if s.Page < 0 {
		return fmt.Errorf("page must be non-negative")
	}

	if s.PerPage < 0 || s.PerPage > 100 {
		return fmt.Errorf("per page must be between 0 and 100")
	}

	if s.Page >= maxResults/s.perPage() {
		return ErrTooDeepPagination
	}

	return nil
}

func (s SearchParameters) ToUrlParams() url.Values {
	params := url.Values{}
	params.Add("text", s.Text)
	if s.Experience != "" {
		params.Add("experience", string(s.Experience))
	}
	for _, schedule := range s.Schedules {
		params.Add("schedule", string(schedule))
	}

	if s.AreaID != "" {
		params.Add("area", s.AreaID)
	}

	params.Add("page", strconv.Itoa(s.Page))
	params.Add("per_page", strconv.Itoa(s.perPage()))

	if s.OrderByPublicationTime {
		params.Add("order_by", "publication_time")
	}

	if s.Period != 0 {
		params.Add("period", strconv.Itoa(s.Period))
	}

	if !s.DateFrom.IsZero() {
		params.Add("date_from", s.DateFrom.Format("2006-01-02T15:04:05-0700"))
	}

	return params
}
