// Package enhancing produces an enhanced resume text from structured
// candidate data and a parsed job-requirements profile. The guiding rule is
// enhancement without fabrication: contact details pass through verbatim and
// new skill claims need textual support in the candidate's own experience.
package enhancing

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// maxSkills bounds the enhanced skills list
const maxSkills = 15

// actionVerbs are the openers a bullet may already have; bullets starting
// with one are never rewritten.
var actionVerbs = []string{
	"Led", "Implemented", "Developed", "Improved", "Achieved", "Delivered", "Optimized",
}

// techKeywords decide which skills land on the "Technical:" line of the output
var techKeywords = []string{
	"python", "java", "javascript", "typescript", "go", "sql", "aws", "azure",
	"docker", "kubernetes", "react", "node", "html", "css", "git", "linux",
	"terraform", "c++", "c#", "ruby", "php", "swift", "kotlin", "scala",
}

// Enhancer rewrites one candidate's resume against one job profile
type Enhancer struct {
	candidate types.CandidateData
	job       types.JobRequirements
}

// New creates an Enhancer for the given candidate and job
func New(candidate types.CandidateData, job types.JobRequirements) *Enhancer {
	return &Enhancer{candidate: candidate, job: job}
}

// Enhance renders the enhanced resume text. Sections appear in fixed order
// and empty sections are omitted entirely.
func (e *Enhancer) Enhance() string {
	var sb strings.Builder

	e.writeContact(&sb)
	e.writeSummary(&sb)
	e.writeExperience(&sb)
	e.writeSkills(&sb)
	e.writeEducation(&sb)

	return strings.TrimRight(sb.String(), "\n")
}

// writeContact copies the contact block verbatim. Candidate-supplied contact
// details must never be altered or invented.
func (e *Enhancer) writeContact(sb *strings.Builder) {
	info := e.candidate.PersonalInfo

	if info.Name != "" {
		sb.WriteString(strings.ToUpper(info.Name))
		sb.WriteString("\n")
	}

	fields := []string{info.Email, info.Phone, info.Address, info.LinkedIn, info.Website}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) > 0 {
		sb.WriteString(strings.Join(parts, " | "))
		sb.WriteString("\n")
	}
	if info.Name != "" || len(parts) > 0 {
		sb.WriteString("\n")
	}
}

// writeSummary emits the professional summary. A missing summary is
// synthesized from the job profile; an existing one is kept intact, gaining a
// title prefix only when the job title is not already mentioned.
func (e *Enhancer) writeSummary(sb *strings.Builder) {
	summary := e.enhancedSummary()
	if summary == "" {
		return
	}
	sb.WriteString("PROFESSIONAL SUMMARY\n\n")
	sb.WriteString(summary)
	sb.WriteString("\n\n")
}

func (e *Enhancer) enhancedSummary() string {
	summary := strings.TrimSpace(e.candidate.Summary)
	title := strings.TrimSpace(e.job.Title)

	if summary == "" {
		if title == "" {
			return ""
		}
		top := topKeywords(e.job, 3)
		if len(top) == 0 {
			return fmt.Sprintf("%s with a track record of delivering results in fast-moving teams.", title)
		}
		return fmt.Sprintf("%s with proven expertise in %s. Focused on delivering measurable results aligned with the role.",
			title, strings.Join(top, ", "))
	}

	if title != "" && !strings.Contains(strings.ToLower(summary), strings.ToLower(title)) {
		return title + " | " + summary
	}
	return summary
}

// writeExperience preserves entries and bullets verbatim except for one
// narrow rewrite: a bullet that lacks an action-verb opener and mentions
// "developed" or "built" gets that token prefixed with "Successfully".
func (e *Enhancer) writeExperience(sb *strings.Builder) {
	if len(e.candidate.Experience) == 0 {
		return
	}
	sb.WriteString("PROFESSIONAL EXPERIENCE\n\n")

	for _, entry := range e.candidate.Experience {
		header := joinNonEmpty([]string{entry.Title, entry.Company, entry.Duration}, " | ")
		sb.WriteString(header)
		sb.WriteString("\n")
		for _, bullet := range splitBullets(entry.Description) {
			sb.WriteString("• ")
			sb.WriteString(enhanceBullet(bullet))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
}

// enhanceBullet applies the conservative bullet rewrite
func enhanceBullet(bullet string) string {
	for _, verb := range actionVerbs {
		if strings.HasPrefix(bullet, verb) {
			return bullet
		}
	}
	for _, token := range []string{"developed", "built"} {
		if idx := strings.Index(strings.ToLower(bullet), token); idx >= 0 {
			return bullet[:idx] + "Successfully " + strings.ToLower(bullet[idx:idx+1]) + bullet[idx+1:]
		}
	}
	return bullet
}

// writeSkills emits the skills section, split into Technical and Professional
// lines. Job skills are appended only when textually supported by the
// candidate's experience and the list is below the cap.
func (e *Enhancer) writeSkills(sb *strings.Builder) {
	skills := e.enhancedSkills()
	if len(skills) == 0 {
		return
	}

	var technical, professional []string
	for _, skill := range skills {
		if isTechnicalSkill(skill) {
			technical = append(technical, skill)
		} else {
			professional = append(professional, skill)
		}
	}

	sb.WriteString("SKILLS\n\n")
	if len(technical) > 0 {
		sb.WriteString("Technical: ")
		sb.WriteString(strings.Join(technical, ", "))
		sb.WriteString("\n")
	}
	if len(professional) > 0 {
		sb.WriteString("Professional: ")
		sb.WriteString(strings.Join(professional, ", "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// enhancedSkills returns the candidate's skills plus any job skill that
// (a) is absent by substring match in either direction, (b) is referenced by
// first word in the experience text, and (c) fits under the cap.
func (e *Enhancer) enhancedSkills() []string {
	skills := append([]string(nil), e.candidate.Skills...)
	experienceText := strings.ToLower(e.experienceText())

	candidates := append(append([]string(nil), e.job.RequiredSkills...), e.job.PreferredSkills...)
	for _, jobSkill := range candidates {
		if len(skills) >= maxSkills {
			break
		}
		jobSkill = strings.TrimSpace(jobSkill)
		if jobSkill == "" || hasSkill(skills, jobSkill) {
			continue
		}
		firstWord := strings.ToLower(strings.Fields(jobSkill)[0])
		if strings.Contains(experienceText, firstWord) {
			skills = append(skills, jobSkill)
		}
	}
	return skills
}

// hasSkill reports substring containment in either direction, case-insensitive
func hasSkill(skills []string, candidate string) bool {
	cLower := strings.ToLower(candidate)
	for _, s := range skills {
		sLower := strings.ToLower(s)
		if strings.Contains(sLower, cLower) || strings.Contains(cLower, sLower) {
			return true
		}
	}
	return false
}

// writeEducation copies education entries verbatim, unmodified
func (e *Enhancer) writeEducation(sb *strings.Builder) {
	if len(e.candidate.Education) == 0 {
		return
	}
	sb.WriteString("EDUCATION\n\n")
	for _, entry := range e.candidate.Education {
		line := entry.Degree
		if entry.Institution != "" {
			line = joinNonEmpty([]string{line, entry.Institution}, " - ")
		}
		if entry.Year != "" {
			line = joinNonEmpty([]string{line, entry.Year}, " | ")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// experienceText concatenates all experience descriptions for matching
func (e *Enhancer) experienceText() string {
	var sb strings.Builder
	for _, entry := range e.candidate.Experience {
		sb.WriteString(entry.Description)
		sb.WriteString(" ")
	}
	return sb.String()
}

func isTechnicalSkill(skill string) bool {
	lower := strings.ToLower(skill)
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func splitBullets(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}
	lines := strings.Split(description, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func joinNonEmpty(parts []string, sep string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// topKeywords returns the first n keywords from the job profile, falling back
// to required skills when the keyword list is short.
func topKeywords(job types.JobRequirements, n int) []string {
	merged := append(append([]string(nil), job.Keywords...), job.RequiredSkills...)
	if len(merged) > n {
		merged = merged[:n]
	}
	return merged
}
