// Package parsing extracts a structured skill profile from free-text job
// descriptions via pattern scanning.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// maxRequiredSkills caps the extracted required-skill list
const maxRequiredSkills = 5

// skillPatterns capture the fragment following a requirements lead-in phrase,
// up to the end of the sentence.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:experience with|proficiency in|knowledge of)\s*:?\s*([^.]+)`),
	regexp.MustCompile(`(?:skills|technologies|tools):\s*([^.]+)`),
	regexp.MustCompile(`(?:required|must have|should have):\s*([^.]+)`),
}

// domainKeywords is the fixed vocabulary matched against descriptions by
// lexical containment. Output order follows this list, not the description.
var domainKeywords = []string{
	"agile", "scrum", "leadership", "collaboration", "communication",
	"problem-solving", "analytical", "creative", "innovative", "strategic",
}

// ParseJobRequirements derives a JobRequirements profile from a job posting.
// Title, company and description are carried verbatim. PreferredSkills and
// Responsibilities stay empty: this pass is lexical only, deeper extraction
// is deferred to the AI rewrite collaborator.
func ParseJobRequirements(title, company, description string) types.JobRequirements {
	return types.JobRequirements{
		Title:            title,
		Company:          company,
		Description:      description,
		RequiredSkills:   extractRequiredSkills(description),
		PreferredSkills:  []string{},
		Responsibilities: []string{},
		Keywords:         extractKeywords(description),
	}
}

// extractRequiredSkills scans the lowercased description with each lead-in
// pattern, splits the captured fragments on ','/';' and keeps the first five
// distinct skills in match order.
func extractRequiredSkills(description string) []string {
	lower := strings.ToLower(description)

	var skills []string
	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			for _, fragment := range splitSkillFragment(match[1]) {
				skills = append(skills, NormalizeSkillName(fragment))
			}
		}
	}

	skills = dedupe(skills)
	if len(skills) > maxRequiredSkills {
		skills = skills[:maxRequiredSkills]
	}
	return skills
}

// splitSkillFragment splits a captured requirements fragment on commas and
// semicolons, trimming connective noise like a leading "and".
func splitSkillFragment(fragment string) []string {
	parts := strings.FieldsFunc(fragment, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimPrefix(p, "and ")
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// extractKeywords intersects the description with the domain vocabulary
func extractKeywords(description string) []string {
	lower := strings.ToLower(description)
	var found []string
	for _, kw := range domainKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return dedupe(found)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
