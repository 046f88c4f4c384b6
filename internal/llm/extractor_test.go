package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt_Structure(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Sample",
		Description: "Extract the sample fields.",
		Fields: []SchemaField{
			{Name: "title", Type: "\"string\"", Description: "the title", Required: true},
			{Name: "tags", Type: "[\"string\"]"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some input text")

	assert.Contains(t, prompt, "Extract the sample fields.")
	assert.Contains(t, prompt, `"title": "string" (required) // the title`)
	assert.Contains(t, prompt, `"tags": ["string"]`)
	assert.Contains(t, prompt, "Return ONLY the JSON object")
	assert.Contains(t, prompt, "some input text")
}

func TestCandidateProfileSchema_RequiredFields(t *testing.T) {
	schema := CandidateProfileSchema()

	required := map[string]bool{}
	for _, f := range schema.Fields {
		required[f.Name] = f.Required
	}

	assert.True(t, required["name"])
	assert.True(t, required["skills"])
	assert.False(t, required["email"])
	assert.Contains(t, schema.Description, "VERBATIM")
}
