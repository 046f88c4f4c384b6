package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-pipeline/internal/llm"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// fakeClient returns canned responses without calling any provider
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func TestIsSparse(t *testing.T) {
	full := &types.CandidateData{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Skills:       []string{"Go"},
	}
	assert.False(t, IsSparse(full))

	noContact := &types.CandidateData{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe"},
		Skills:       []string{"Go"},
	}
	assert.True(t, IsSparse(noContact))

	phoneOnly := &types.CandidateData{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Phone: "555-123-4567"},
		Skills:       []string{"Go"},
	}
	assert.False(t, IsSparse(phoneOnly))

	noSkills := &types.CandidateData{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
	}
	assert.True(t, IsSparse(noSkills))

	assert.True(t, IsSparse(nil))
}

func TestExtractWithModel_Success(t *testing.T) {
	client := &fakeClient{
		response: `{"name": "Jane Doe", "email": "jane@example.com", "phone": "555-123-4567", "summary": "Platform engineer.", "skills": ["Go", " PostgreSQL ", ""]}`,
	}

	candidate, err := ExtractWithModel(context.Background(), client, "resume body text")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", candidate.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", candidate.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", candidate.PersonalInfo.Phone)
	assert.Equal(t, "Platform engineer.", candidate.Summary)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, candidate.Skills)
}

func TestExtractWithModel_PromptCarriesResumeAndSchema(t *testing.T) {
	client := &fakeClient{response: `{"name": "Jane", "skills": []}`}

	_, err := ExtractWithModel(context.Background(), client, "the resume body")
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "the resume body")
	assert.Contains(t, client.prompts[0], "expert resume parser")
	assert.Contains(t, client.prompts[0], `"skills"`)
}

func TestExtractWithModel_MarkdownWrappedResponse(t *testing.T) {
	client := &fakeClient{
		response: "```json\n{\"name\": \"Jane Doe\", \"skills\": [\"Go\"]}\n```",
	}

	candidate, err := ExtractWithModel(context.Background(), client, "resume")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", candidate.PersonalInfo.Name)
}

func TestExtractWithModel_Errors(t *testing.T) {
	_, err := ExtractWithModel(context.Background(), nil, "resume")
	assert.Error(t, err)

	_, err = ExtractWithModel(context.Background(), &fakeClient{response: "{}"}, "   ")
	assert.Error(t, err)

	apiErr := errors.New("quota exhausted")
	_, err = ExtractWithModel(context.Background(), &fakeClient{err: apiErr}, "resume")
	assert.ErrorIs(t, err, apiErr)

	_, err = ExtractWithModel(context.Background(), &fakeClient{response: "not json"}, "resume")
	assert.Error(t, err)
}

func TestMergeProfiles_HeuristicWins(t *testing.T) {
	base := types.CandidateData{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe"},
		Skills:       []string{"SEO"},
	}
	fallback := &types.CandidateData{
		PersonalInfo: types.PersonalInfo{Name: "J. Doe", Email: "jane@example.com"},
		Summary:      "Marketing lead.",
		Skills:       []string{"Go"},
	}

	merged := MergeProfiles(base, fallback)

	assert.Equal(t, "Jane Doe", merged.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", merged.PersonalInfo.Email)
	assert.Equal(t, "Marketing lead.", merged.Summary)
	assert.Equal(t, []string{"SEO"}, merged.Skills)
}

func TestMergeProfiles_NilFallback(t *testing.T) {
	base := types.CandidateData{PersonalInfo: types.PersonalInfo{Name: "Jane"}}
	assert.Equal(t, base, MergeProfiles(base, nil))
}
