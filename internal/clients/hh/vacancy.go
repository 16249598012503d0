package hh

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/samber/lo"
)

type Vacancy struct {
	VacancyPreview
	Description string
	KeySkills   []KeySkill `json:"key_skills"`
}

type VacancyPreview struct {
	ID          string
	Name        string
	Url         string     `json:"alternate_url"`
	PublishedAt CustomTime `json:"published_at"`
	Employer    Employer   `json:"employer"`
	Area        Area       `json:"area"`
}

type Employer struct {
	Name string `json:"name"`
}

type KeySkill struct {
	Name string
}

type CustomTime struct {
	time.Time
}

func (dt *CustomTime) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}

	t, err := time.Parse("2006-01-02T15:04:05-0700", str)
	if err != nil {
		return fmt.Errorf("parsing time %s: %v", str, err)
	}
	dt.Time = t
	return nil
}

// ToJobPosting converts the HTML description to line-oriented markdown and appends the
// employer's key skills under a required heading.
func (v Vacancy) ToJobPosting() (models.JobPosting, error) {
	description, err := htmltomarkdown.ConvertString(v.Description)
	if err != nil {
		return models.JobPosting{}, fmt.Errorf("converting description of vacancy %s: %w", v.ID, err)
	}

	skills := lo.FilterMap(v.KeySkills, func(s KeySkill, _ int) (string, bool) {
		name := strings.TrimSpace(s.Name)
		return name, name != ""
	})
	if len(skills) > 0 {
		description = strings.TrimSpace(description) + "\n\nRequired key skills:\n" + strings.Join(skills, "\n")
	}

	return models.JobPosting{
		URL:         v.Url,
		Title:       v.Name,
		Company:     v.Employer.Name,
		Location:    v.Area.Name,
		Description: description,
		Source:      models.SourceHH,
	}, nil
}
