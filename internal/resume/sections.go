package resume

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Sections holds the text of each recognised résumé section. Missing sections are empty.
type Sections struct {
	Summary        string
	Experience     string
	Education      string
	Skills         string
	Certifications string
	Projects       string
	Languages      string
	Other          string
}

type sectionKind int

const (
	otherSection sectionKind = iota
	experienceSection
	educationSection
	skillsSection
	certificationsSection
	summarySection
	projectsSection
	languagesSection
)

type headerFamily struct {
	kind     sectionKind
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	return lo.Map(exprs, func(expr string, _ int) *regexp.Regexp {
		return regexp.MustCompile(`(?i)^\s*` + expr + `\s*:?\s*$`)
	})
}

// Checked in order, first family wins.
var headerFamilies = []headerFamily{
	{experienceSection, compileAll(
		`(professional\s+)?experience`,
		`work\s+(history|experience)`,
		`employment\s+(history|record)`,
		`career\s+(history|summary)`,
		`professional\s+background`,
		`work`,
	)},
	{educationSection, compileAll(
		`education`,
		`academic\s+(background|qualifications)`,
		`educational\s+background`,
		`qualifications`,
		`degrees?`,
	)},
	{skillsSection, compileAll(
		`(technical\s+)?skills`,
		`core\s+(competencies|skills)`,
		`competencies`,
		`areas\s+of\s+expertise`,
		`technical\s+proficienc(y|ies)`,
		`key\s+skills`,
	)},
	{certificationsSection, compileAll(
		`certifications?`,
		`professional\s+certifications?`,
		`licenses?(\s+and\s+certifications?)?`,
		`credentials`,
	)},
	{summarySection, compileAll(
		`(professional\s+)?(summary|profile)`,
		`career\s+(objective|summary)`,
		`objective`,
		`about\s+(me|myself)`,
		`executive\s+summary`,
	)},
	{projectsSection, compileAll(
		`projects?`,
		`key\s+projects?`,
		`notable\s+projects?`,
		`portfolio`,
	)},
	{languagesSection, compileAll(
		`languages?`,
		`language\s+proficienc(y|ies)`,
		`linguistic\s+skills`,
	)},
}

func detectHeader(line string) (sectionKind, bool) {
	for _, family := range headerFamilies {
		if lo.SomeBy(family.patterns, func(re *regexp.Regexp) bool { return re.MatchString(line) }) {
			return family.kind, true
		}
	}
	return otherSection, false
}

// DetectSections splits résumé text on section header lines. Header lines are dropped,
// lines before the first header go to Other, and text without any header is returned
// whole as Other.
func DetectSections(text string) Sections {
	buffers := make(map[sectionKind][]string)
	current := otherSection
	headerFound := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			if kind, ok := detectHeader(line); ok {
				current, headerFound = kind, true
				continue
			}
		}
		buffers[current] = append(buffers[current], line)
	}

	if !headerFound {
		return Sections{Other: text}
	}

	join := func(kind sectionKind) string {
		return strings.TrimSpace(strings.Join(buffers[kind], "\n"))
	}
	return Sections{
		Summary:        join(summarySection),
		Experience:     join(experienceSection),
		Education:      join(educationSection),
		Skills:         join(skillsSection),
		Certifications: join(certificationsSection),
		Projects:       join(projectsSection),
		Languages:      join(languagesSection),
		Other:          join(otherSection),
	}
}
