package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/segmenting"
	"github.com/jonathan/jobboard-pipeline/internal/textutil"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// entryStartPattern matches "Title at Company", "Title @ Company" and
// "Title - Company" lines that open a new experience entry.
var entryStartPattern = regexp.MustCompile(`^(.{2,80}?)\s+(?:at|@|-)\s+(.{2,80})$`)

// degreeKeywords start a new education entry when found in a line
var degreeKeywords = []string{"bachelor", "master", "phd", "doctorate", "associate", "certificate"}

// institutionKeywords identify the school line of an education entry
var institutionKeywords = []string{"university", "college", "institute", "school"}

// Extract parses raw resume text into structured candidate data. Contact
// matchers scan the full text; section parsers only see their segment.
func Extract(rawText string) types.CandidateData {
	cleaned := CleanText(rawText)
	sections := segmenting.Segment(cleaned)

	data := types.CandidateData{
		PersonalInfo:   extractPersonalInfo(cleaned),
		Summary:        joinSummary(sections.Get(segmenting.SectionSummary)),
		Experience:     parseExperience(sections.Get(segmenting.SectionExperience)),
		Education:      parseEducation(sections.Get(segmenting.SectionEducation)),
		Skills:         parseSkills(sections.Get(segmenting.SectionSkills)),
		Certifications: parseCertifications(sections.Get(segmenting.SectionCertifications)),
	}
	return data
}

// extractPersonalInfo runs the contact matchers over the whole document;
// first match wins for each field.
func extractPersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{}
	if email, ok := MatchEmail(text); ok {
		info.Email = email
	}
	if phone, ok := MatchPhone(text); ok {
		info.Phone = phone
	}
	if linkedin, ok := MatchLinkedIn(text); ok {
		info.LinkedIn = linkedin
	}
	if name, ok := MatchName(text); ok {
		info.Name = name
	}
	return info
}

// joinSummary concatenates the summary section lines into a single string
func joinSummary(section string) string {
	if section == "" {
		return ""
	}
	return textutil.NormalizeWhitespace(strings.ReplaceAll(section, "\n", " "))
}

// parseExperience walks the experience section line by line. A "Title at
// Company" line opens an entry; bullets append to its description; a year or
// present/current line sets the duration. Entries missing title or company
// are dropped.
func parseExperience(section string) []types.ExperienceEntry {
	if section == "" {
		return nil
	}

	var entries []types.ExperienceEntry
	var current *types.ExperienceEntry
	var bullets []string

	flush := func() {
		if current == nil {
			return
		}
		if current.Title != "" && current.Company != "" {
			current.Description = strings.Join(bullets, "\n")
			entries = append(entries, *current)
		}
		current = nil
		bullets = bullets[:0]
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isBulletLine(line) {
			if current != nil {
				bullets = append(bullets, stripBullet(line))
			}
			continue
		}

		if isDurationLine(line) {
			if current != nil && current.Duration == "" {
				current.Duration = line
			}
			continue
		}

		if m := entryStartPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &types.ExperienceEntry{
				Title:   strings.TrimSpace(m[1]),
				Company: strings.TrimSpace(m[2]),
			}
		}
	}
	flush()

	return entries
}

// parseEducation groups degree/institution/year/gpa lines into entries.
// A degree keyword opens a new entry; the other matchers fill the current one.
func parseEducation(section string) []types.EducationEntry {
	if section == "" {
		return nil
	}

	var entries []types.EducationEntry
	var current *types.EducationEntry

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if containsAny(lower, degreeKeywords) {
			flush()
			current = &types.EducationEntry{Degree: line}
			continue
		}
		if current == nil {
			continue
		}
		switch {
		case containsAny(lower, institutionKeywords):
			if current.Institution == "" {
				current.Institution = line
			}
		case strings.Contains(lower, "gpa") || strings.Contains(lower, "grade"):
			if current.GPA == "" {
				current.GPA = line
			}
		default:
			if year, ok := matchYear(line); ok && current.Year == "" {
				current.Year = year
			}
		}
	}
	flush()

	return entries
}

// parseSkills splits the skills section on list delimiters and keeps
// fragments with a plausible skill length, de-duplicated in order.
func parseSkills(section string) []string {
	if section == "" {
		return nil
	}
	var skills []string
	for _, fragment := range textutil.SplitList(section) {
		if len(fragment) > 1 && len(fragment) < 30 {
			skills = append(skills, fragment)
		}
	}
	return textutil.Dedupe(skills)
}

// parseCertifications keeps every bulleted line of the section, verbatim
// minus the bullet marker.
func parseCertifications(section string) []string {
	if section == "" {
		return nil
	}
	var certs []string
	for _, line := range strings.Split(section, "\n") {
		if isBulletLine(line) {
			certs = append(certs, stripBullet(line))
		}
	}
	return certs
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
