package enhancing

import "strings"

// Score weights. Contact completeness contributes up to 20, content presence
// up to 40, job relevance up to 40; the total is clamped to [0,100].
const (
	contactFieldPoints = 5

	summaryPoints    = 10
	experiencePoints = 15
	educationPoints  = 10
	skillsPoints     = 5

	skillOverlapPoints = 5
	skillOverlapCap    = 20
	keywordMatchPoints = 2
	keywordMatchCap    = 20
)

// Score computes the 0-100 match/quality score for the candidate against the job
func (e *Enhancer) Score() int {
	score := e.contactScore() + e.contentScore() + e.relevanceScore()
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// contactScore awards 5 points each for name, email, phone and location
func (e *Enhancer) contactScore() int {
	info := e.candidate.PersonalInfo
	score := 0
	for _, f := range []string{info.Name, info.Email, info.Phone, info.Address} {
		if f != "" {
			score += contactFieldPoints
		}
	}
	return score
}

// contentScore awards points for section presence
func (e *Enhancer) contentScore() int {
	score := 0
	if strings.TrimSpace(e.candidate.Summary) != "" {
		score += summaryPoints
	}
	if len(e.candidate.Experience) > 0 {
		score += experiencePoints
	}
	if len(e.candidate.Education) > 0 {
		score += educationPoints
	}
	if len(e.candidate.Skills) > 0 {
		score += skillsPoints
	}
	return score
}

// relevanceScore awards points for skill overlap with the job's required and
// preferred skills, and for job keywords occurring in the experience text.
func (e *Enhancer) relevanceScore() int {
	overlap := 0
	jobSkills := append(append([]string(nil), e.job.RequiredSkills...), e.job.PreferredSkills...)
	for _, jobSkill := range jobSkills {
		if hasSkill(e.candidate.Skills, jobSkill) {
			overlap++
		}
	}
	skillScore := overlap * skillOverlapPoints
	if skillScore > skillOverlapCap {
		skillScore = skillOverlapCap
	}

	experienceText := strings.ToLower(e.experienceText())
	keywordMatches := 0
	for _, kw := range e.job.Keywords {
		if strings.Contains(experienceText, strings.ToLower(kw)) {
			keywordMatches++
		}
	}
	keywordScore := keywordMatches * keywordMatchPoints
	if keywordScore > keywordMatchCap {
		keywordScore = keywordMatchCap
	}

	return skillScore + keywordScore
}
