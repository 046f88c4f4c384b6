package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJobRequirements_SkillLeadIn(t *testing.T) {
	desc := "We want 5+ years experience with Python, SQL, and AWS. Competitive salary."
	req := ParseJobRequirements("Data Engineer", "Acme", desc)

	assert.Contains(t, req.RequiredSkills, "Python")
	assert.Contains(t, req.RequiredSkills, "SQL")
	assert.Contains(t, req.RequiredSkills, "AWS")
	assert.Equal(t, "Data Engineer", req.Title)
	assert.Equal(t, desc, req.Description)
}

func TestParseJobRequirements_ColonLists(t *testing.T) {
	desc := "Technologies: Go, Kubernetes, PostgreSQL. Must have: communication skills."
	req := ParseJobRequirements("Backend Engineer", "Acme", desc)

	assert.Contains(t, req.RequiredSkills, "Go")
	assert.Contains(t, req.RequiredSkills, "Kubernetes")
	assert.Contains(t, req.RequiredSkills, "PostgreSQL")
}

func TestParseJobRequirements_CapsAtFive(t *testing.T) {
	desc := "Skills: one, two, three, four, five, six, seven."
	req := ParseJobRequirements("Role", "Co", desc)
	assert.Len(t, req.RequiredSkills, 5)
}

func TestParseJobRequirements_KeywordsInVocabularyOrder(t *testing.T) {
	desc := "A strategic role on an agile team that values leadership and agile delivery."
	req := ParseJobRequirements("Role", "Co", desc)
	// Vocabulary order, de-duplicated: agile before leadership before strategic.
	assert.Equal(t, []string{"agile", "leadership", "strategic"}, req.Keywords)
}

func TestParseJobRequirements_PreferredAndResponsibilitiesStayEmpty(t *testing.T) {
	req := ParseJobRequirements("Role", "Co", "Experience with Go.")
	assert.Empty(t, req.PreferredSkills)
	assert.Empty(t, req.Responsibilities)
	assert.NotNil(t, req.PreferredSkills)
	assert.NotNil(t, req.Responsibilities)
}

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"golang", "Go"},
		{"js", "JavaScript"},
		{"k8s", "Kubernetes"},
		{"python", "Python"},
		{"React", "React"},
		{"", ""},
		{"  sql  ", "SQL"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSkillName(tt.in), tt.in)
	}
}
