package models

type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
	GitHub   string `json:"gitHub,omitempty"`
}

type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Grade       string `json:"grade,omitempty"`
}

// ResumeProfile is built once per résumé upload and replaced wholesale on re-upload.
// TotalExperienceYears is derived from Experience durations, never edited directly.
type ResumeProfile struct {
	PersonalInfo         PersonalInfo      `json:"personalInfo"`
	Summary              string            `json:"summary,omitempty"`
	Skills               []string          `json:"skills"`
	Experience           []ExperienceEntry `json:"experience"`
	Education            []EducationEntry  `json:"education"`
	Certifications       []string          `json:"certifications"`
	Languages            []string          `json:"languages,omitempty"`
	TotalExperienceYears float64           `json:"totalExperienceYears"`
}
