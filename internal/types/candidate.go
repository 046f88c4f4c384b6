// Package types provides type definitions for structured data used throughout the job-board pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds contact details extracted from a resume.
// Every field is best-effort: an empty string means no match was found,
// and the extractor never fabricates a value.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry represents one position parsed from the experience section
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents one degree parsed from the education section
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// CandidateData is the structured form of one resume.
// Slice order mirrors resume order; most-recent-first is preserved when the
// resume uses it but never enforced.
type CandidateData struct {
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
}

// HasContact reports whether any contact field was extracted
func (c *CandidateData) HasContact() bool {
	p := c.PersonalInfo
	return p.Name != "" || p.Email != "" || p.Phone != "" ||
		p.Address != "" || p.LinkedIn != "" || p.Website != ""
}
