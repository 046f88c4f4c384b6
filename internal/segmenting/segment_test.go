package segmenting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john@example.com

PROFESSIONAL SUMMARY
Seasoned engineer focused on data platforms.

EXPERIENCE
Marketing Manager at TechStart Inc
• Grew pipeline 40%
2021-2024

EDUCATION
Bachelor of Science
State University

SKILLS
Go, SQL, AWS`

func TestSegment_LabelsAllSections(t *testing.T) {
	sections := Segment(sampleResume)

	require.Contains(t, sections, SectionSummary)
	require.Contains(t, sections, SectionExperience)
	require.Contains(t, sections, SectionEducation)
	require.Contains(t, sections, SectionSkills)

	assert.Equal(t, "Seasoned engineer focused on data platforms.", sections.Get(SectionSummary))
	assert.Contains(t, sections.Get(SectionExperience), "Marketing Manager at TechStart Inc")
	assert.Contains(t, sections.Get(SectionSkills), "Go, SQL, AWS")
}

func TestSegment_HeadingLineExcludedFromBody(t *testing.T) {
	sections := Segment("SKILLS\nGo\nPython")
	assert.Equal(t, "Go\nPython", sections.Get(SectionSkills))
}

func TestSegment_LinesBeforeFirstHeadingDiscarded(t *testing.T) {
	sections := Segment("John Smith\n555-123-4567\n\nEDUCATION\nBachelor of Arts")
	assert.Len(t, sections, 1)
	assert.Equal(t, "Bachelor of Arts", sections.Get(SectionEducation))
}

func TestSegment_AmbiguousHeadingUsesPriorityOrder(t *testing.T) {
	// "Summary of Work Experience" matches both summary and experience;
	// summary is checked first.
	sections := Segment("Summary of Work Experience\nBuilt things.")
	assert.Equal(t, "Built things.", sections.Get(SectionSummary))
	assert.Empty(t, sections.Get(SectionExperience))
}

func TestSegment_EmptySectionAbsent(t *testing.T) {
	sections := Segment("CERTIFICATIONS\n\nSKILLS\nGo")
	assert.NotContains(t, sections, SectionCertifications)
	assert.Equal(t, "Go", sections.Get(SectionSkills))
}

func TestSegment_EmptyInput(t *testing.T) {
	assert.Empty(t, Segment(""))
}
