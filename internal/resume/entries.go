package resume

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/extraction"
	"github.com/samber/lo"
)

const (
	monthAlternation = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	rangeSeparator   = `\s*(?:[-–—]|to)\s*`
	presentWord      = `(?:present|current|now|today)`

	maxTitleWords  = 8
	maxTitleLength = 60
	maxNameLength  = 50
)

var (
	dateRangePattern      = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}` + rangeSeparator + `(?:(?:19|20)\d{2}|` + presentWord + `)\b`)
	monthYearRangePattern = regexp.MustCompile(`(?i)\b` + monthAlternation + `\.?\s+\d{4}` + rangeSeparator + `(?:` + monthAlternation + `\.?\s+\d{4}|` + presentWord + `)\b`)
	numericRangePattern   = regexp.MustCompile(`(?i)\b\d{1,2}[/.]\d{4}` + rangeSeparator + `(?:\d{1,2}[/.]\d{4}|` + presentWord + `)\b`)

	bulletPattern = regexp.MustCompile(`^\s*[•●○■□▪▫–—*-]\s*`)

	degreePattern = regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|doctorate|associate|diploma|certificate|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?)\b`)
	gradePattern  = regexp.MustCompile(`(?i)\b(?:gpa|grade|honou?rs|distinction|first class|cum laude)\b`)

	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePatterns   = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\+\d{1,4}[-.\s]?\d{1,5}[-.\s]?\d{1,5}[-.\s]?\d{1,5}\b`),
	}
	linkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	gitHubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	locationPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:[ \t-][A-Z][a-z]+)*,[ \t]*[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)?\b`)

	titleConnectors = []string{"of", "and", "the", "for", "at", "in", "to", "&", "|", "-", "–", "—", "/", "@"}
)

func nonEmptyLines(text string) []string {
	lines := lo.Map(strings.Split(text, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Compact(lines)
}

func isDateRangeLine(line string) bool {
	return dateRangePattern.MatchString(line) ||
		monthYearRangePattern.MatchString(line) ||
		numericRangePattern.MatchString(line)
}

// isTitleLine reports whether line is a short capitalised phrase such as a job title or
// a company name. Labelled lines, lists and sentences are never titles.
func isTitleLine(line string) bool {
	if bulletPattern.MatchString(line) || utf8.RuneCountInString(line) > maxTitleLength {
		return false
	}
	if strings.ContainsAny(line, ":,") || strings.HasSuffix(line, ".") {
		return false
	}

	words := strings.Fields(line)
	if len(words) == 0 || len(words) > maxTitleWords {
		return false
	}

	return lo.EveryBy(words, func(word string) bool {
		if lo.Contains(titleConnectors, strings.ToLower(word)) {
			return true
		}
		first, _ := utf8.DecodeRuneInString(strings.TrimLeft(word, `("'`))
		return unicode.IsUpper(first) || unicode.IsDigit(first)
	})
}

type experienceBuilder struct {
	entries     []models.ExperienceEntry
	current     *models.ExperienceEntry
	description []string
}

func (b *experienceBuilder) start(entry models.ExperienceEntry) {
	b.flush()
	b.current = &entry
}

// flush emits the current entry if it has both a title and a company.
func (b *experienceBuilder) flush() {
	defer func() {
		b.current = nil
		b.description = nil
	}()

	if b.current == nil || b.current.Title == "" || b.current.Company == "" {
		return
	}

	entry := *b.current
	entry.Description = strings.Join(b.description, " ")
	entry.Technologies = extraction.ExtractSkills(entry.Description)
	b.entries = append(b.entries, entry)
}

func (b *experienceBuilder) add(line string) {
	switch {
	case isDateRangeLine(line):
		if b.current != nil && b.current.Duration == "" && len(b.description) == 0 {
			b.current.Duration = line
			return
		}
		b.start(models.ExperienceEntry{Duration: line})

	case isTitleLine(line):
		if b.current == nil || len(b.description) > 0 || (b.current.Title != "" && b.current.Company != "") {
			b.start(models.ExperienceEntry{Title: line})
			return
		}
		if b.current.Title == "" {
			b.current.Title = line
		} else {
			b.current.Company = line
		}

	case b.current != nil:
		b.description = append(b.description, bulletPattern.ReplaceAllString(line, ""))
	}
}

// ExtractExperience reads entries from an experience section. Short capitalised lines are
// taken as title then company, date range lines as the duration, and everything else as
// description of the latest entry. Entries missing a title or company are dropped.
func ExtractExperience(text string) []models.ExperienceEntry {
	b := &experienceBuilder{entries: make([]models.ExperienceEntry, 0)}
	for _, line := range nonEmptyLines(text) {
		b.add(line)
	}
	b.flush()
	return b.entries
}

func ExtractEducation(text string) []models.EducationEntry {
	education := make([]models.EducationEntry, 0)
	var current *models.EducationEntry

	flush := func() {
		if current != nil && current.Degree != "" && current.Institution != "" {
			education = append(education, *current)
		}
		current = nil
	}

	for _, line := range nonEmptyLines(text) {
		line = bulletPattern.ReplaceAllString(line, "")
		year := yearPattern.FindString(line)

		switch {
		case degreePattern.MatchString(line):
			if current == nil || current.Degree != "" {
				flush()
				current = &models.EducationEntry{}
			}
			current.Degree = line
			if year != "" && current.Year == "" {
				current.Year = year
			}

		case year != "":
			if current == nil || current.Year != "" {
				flush()
				current = &models.EducationEntry{}
			}
			current.Year = year
			if current.Institution == "" {
				current.Institution = strings.Trim(strings.Replace(line, year, "", 1), " ,;|-–—()")
			}

		case current == nil:
			// nothing to attach to yet

		case gradePattern.MatchString(line):
			current.Grade = line

		case current.Institution == "":
			current.Institution = line
		}
	}
	flush()

	return education
}

func ExtractCertifications(text string) []string {
	certifications := make([]string, 0)
	for _, line := range nonEmptyLines(text) {
		line = bulletPattern.ReplaceAllString(line, "")
		if _, isHeader := detectHeader(line); isHeader {
			continue
		}
		if utf8.RuneCountInString(line) > 3 {
			certifications = append(certifications, line)
		}
	}
	return certifications
}

var languageSeparators = regexp.MustCompile(`[,;|•·]`)

func ExtractLanguages(text string) []string {
	languages := make([]string, 0)
	for _, line := range nonEmptyLines(text) {
		for _, part := range languageSeparators.Split(bulletPattern.ReplaceAllString(line, ""), -1) {
			if part = strings.TrimSpace(part); part != "" {
				languages = append(languages, part)
			}
		}
	}
	return lo.Uniq(languages)
}

// ExtractPersonalInfo looks for contact details anywhere in the text. The name is the last
// capitalised line before the email address.
func ExtractPersonalInfo(text string) models.PersonalInfo {
	var info models.PersonalInfo

	info.Email = emailPattern.FindString(text)
	for _, re := range phonePatterns {
		if phone := re.FindString(text); phone != "" {
			info.Phone = strings.TrimSpace(phone)
			break
		}
	}
	info.Location = locationPattern.FindString(text)
	info.LinkedIn = linkedInPattern.FindString(text)
	info.GitHub = gitHubPattern.FindString(text)

	if info.Email == "" {
		return info
	}

	before := text[:strings.Index(text, info.Email)]
	lines := strings.Split(before, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.Trim(lines[i], " \t\r|,·•-–—")
		if line == "" || utf8.RuneCountInString(line) >= maxNameLength {
			continue
		}
		if first, _ := utf8.DecodeRuneInString(line); unicode.IsUpper(first) {
			info.Name = line
			break
		}
	}
	return info
}
