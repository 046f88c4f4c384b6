// Package rewriting tailors a candidate's resume to a specific job posting
// using an LLM, with schema validation and contact-preservation checks on the
// model output.
package rewriting

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/jobboard-pipeline/internal/llm"
	"github.com/jonathan/jobboard-pipeline/internal/prompts"
	"github.com/jonathan/jobboard-pipeline/internal/schemas"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// tailoredResponse mirrors the JSON structure the model is instructed to return
type tailoredResponse struct {
	TailoredText  string   `json:"tailored_text"`
	MatchScore    float64  `json:"match_score"`
	KeywordsAdded []string `json:"keywords_added"`
}

// TailorResume rewrites resumeText to emphasize fit for jobDescription.
// The model response is validated against the tailored-resume schema and then
// checked for verbatim contact preservation; a response that drops the
// candidate's email or phone is rejected with ContactDroppedError.
func TailorResume(ctx context.Context, client llm.Client, resumeText, jobDescription string, candidate *types.CandidateData) (*types.TailoredResume, error) {
	if client == nil {
		return nil, &APICallError{Message: "LLM client is required"}
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, &ParseError{Message: "resume text is empty"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ParseError{Message: "job description is empty"}
	}

	start := time.Now()

	prompt := buildTailoringPrompt(resumeText, jobDescription)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate tailored resume",
			Cause:   err,
		}
	}

	cleaned := llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateTailoredResume(cleaned); err != nil {
		return nil, &ParseError{
			Message: "tailoring response failed schema validation",
			Cause:   err,
		}
	}

	var resp tailoredResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, &ParseError{
			Message: "failed to parse tailoring response",
			Cause:   err,
		}
	}

	if candidate != nil {
		if missing := missingContactFields(resp.TailoredText, candidate.PersonalInfo); len(missing) > 0 {
			return nil, &ContactDroppedError{MissingFields: missing}
		}
	}

	return &types.TailoredResume{
		TailoredText:     resp.TailoredText,
		MatchScore:       clampScore(resp.MatchScore),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// buildTailoringPrompt fills the externalized rewrite template
func buildTailoringPrompt(resumeText, jobDescription string) string {
	template := prompts.MustGet("rewriting.json", "tailor-resume")
	return prompts.Format(template, map[string]string{
		"ResumeText":     resumeText,
		"JobDescription": jobDescription,
	})
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
