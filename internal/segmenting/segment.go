// Package segmenting splits raw resume text into labeled sections using
// heading-keyword detection. Lines before the first recognized heading are
// not part of any section; contact matchers scan the full text separately.
package segmenting

import "strings"

// Section identifies one recognized resume section
type Section string

// Recognized sections, in heading-priority order.
const (
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
)

// sectionPriority is the order checked when a heading line is ambiguous;
// the first matching section wins.
var sectionPriority = []Section{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
}

// headingKeywords maps each section to the lowercase keywords that mark its heading line
var headingKeywords = map[Section][]string{
	SectionSummary:        {"summary", "objective", "profile"},
	SectionExperience:     {"experience", "work", "employment"},
	SectionEducation:      {"education", "degree"},
	SectionSkills:         {"skills", "technical", "competencies"},
	SectionCertifications: {"certification", "license"},
}

// Sections holds the joined body of each recognized section. A section whose
// heading was seen but had no content lines is absent from the map.
type Sections map[Section]string

// Get returns the body of a section, or "" when absent
func (s Sections) Get(sec Section) string {
	return s[sec]
}

// Segment splits raw resume text into labeled sections. Each section body is
// the joined block of lines between its heading line (excluded) and the next
// recognized heading or end of text.
func Segment(rawText string) Sections {
	lines := strings.Split(rawText, "\n")

	sections := make(Sections)
	var current Section
	var body []string

	flush := func() {
		if current == "" {
			return
		}
		joined := strings.TrimSpace(strings.Join(body, "\n"))
		if joined != "" {
			sections[current] = joined
		}
		body = body[:0]
	}

	for _, line := range lines {
		if sec, ok := matchHeading(line); ok {
			flush()
			current = sec
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// matchHeading reports whether a line is a section heading, checking sections
// in priority order so ambiguous headings resolve deterministically.
func matchHeading(line string) (Section, bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" {
		return "", false
	}
	for _, sec := range sectionPriority {
		for _, kw := range headingKeywords[sec] {
			if strings.Contains(lower, kw) {
				return sec, true
			}
		}
	}
	return "", false
}
