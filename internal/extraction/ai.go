package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/llm"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// modelProfile mirrors the JSON the candidate-profile schema instructs the
// model to return
type modelProfile struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Summary string   `json:"summary"`
	Skills  []string `json:"skills"`
}

// IsSparse reports whether heuristic extraction produced too little to be
// useful: no name, no way to contact the candidate, or no skills. Sparse
// profiles are the trigger for the model-assisted fallback.
func IsSparse(c *types.CandidateData) bool {
	if c == nil {
		return true
	}
	p := c.PersonalInfo
	return p.Name == "" || (p.Email == "" && p.Phone == "") || len(c.Skills) == 0
}

// ExtractWithModel asks the LLM for a candidate profile from raw resume
// text. It is the fallback for resumes whose layout defeats the heuristic
// matchers; contact fields come back verbatim per the schema's instructions.
func ExtractWithModel(ctx context.Context, client llm.Client, resumeText string) (*types.CandidateData, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	prompt := llm.BuildExtractionPrompt(llm.CandidateProfileSchema(), resumeText)

	response, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("model extraction failed: %w", err)
	}

	var profile modelProfile
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &profile); err != nil {
		return nil, fmt.Errorf("model returned a malformed profile: %w", err)
	}

	candidate := &types.CandidateData{
		PersonalInfo: types.PersonalInfo{
			Name:  strings.TrimSpace(profile.Name),
			Email: strings.TrimSpace(profile.Email),
			Phone: strings.TrimSpace(profile.Phone),
		},
		Summary: strings.TrimSpace(profile.Summary),
	}
	for _, skill := range profile.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			candidate.Skills = append(candidate.Skills, skill)
		}
	}
	return candidate, nil
}

// MergeProfiles fills the empty fields of base from fallback. A heuristic
// match always wins over the model's answer.
func MergeProfiles(base types.CandidateData, fallback *types.CandidateData) types.CandidateData {
	if fallback == nil {
		return base
	}
	if base.PersonalInfo.Name == "" {
		base.PersonalInfo.Name = fallback.PersonalInfo.Name
	}
	if base.PersonalInfo.Email == "" {
		base.PersonalInfo.Email = fallback.PersonalInfo.Email
	}
	if base.PersonalInfo.Phone == "" {
		base.PersonalInfo.Phone = fallback.PersonalInfo.Phone
	}
	if base.Summary == "" {
		base.Summary = fallback.Summary
	}
	if len(base.Skills) == 0 {
		base.Skills = fallback.Skills
	}
	return base
}
