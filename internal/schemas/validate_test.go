package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTailoredResponse() string {
	text := strings.Repeat("Led cross-functional projects and delivered results. ", 4)
	return `{"tailored_text": "` + text + `", "match_score": 82, "keywords_added": ["Python", "AWS"]}`
}

func TestValidateTailoredResume_Valid(t *testing.T) {
	err := ValidateTailoredResume(validTailoredResponse())
	assert.NoError(t, err)
}

func TestValidateTailoredResume_MissingScore(t *testing.T) {
	text := strings.Repeat("Delivered measurable improvements across the platform. ", 4)
	payload := `{"tailored_text": "` + text + `"}`

	err := ValidateTailoredResume(payload)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateTailoredResume_ScoreOutOfRange(t *testing.T) {
	text := strings.Repeat("Delivered measurable improvements across the platform. ", 4)
	payload := `{"tailored_text": "` + text + `", "match_score": 140}`

	err := ValidateTailoredResume(payload)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Errors[0].Field, "match_score")
}

func TestValidateTailoredResume_TextTooShort(t *testing.T) {
	payload := `{"tailored_text": "too short", "match_score": 50}`

	err := ValidateTailoredResume(payload)
	require.Error(t, err)
}

func TestValidateTailoredResume_UnknownField(t *testing.T) {
	text := strings.Repeat("Delivered measurable improvements across the platform. ", 4)
	payload := `{"tailored_text": "` + text + `", "match_score": 50, "invented_jobs": ["CEO"]}`

	err := ValidateTailoredResume(payload)
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`
	doc := `{"name": "Acme"}`

	err := ValidateJSONString(schema, doc)
	assert.NoError(t, err)
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "failed to load schema")
}

func TestValidationError_FormatsFieldPaths(t *testing.T) {
	schema := `{"type": "object", "required": ["name", "score"]}`
	doc := `{}`

	err := ValidateJSONString(schema, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed:")
	assert.Contains(t, err.Error(), "(root)")
}
