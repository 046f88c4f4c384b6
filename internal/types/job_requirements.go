package types

// JobRequirements represents the skill profile derived from one job description
type JobRequirements struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`

	// RequiredSkills holds at most five skills, in order of first pattern match.
	RequiredSkills []string `json:"required_skills"`

	// PreferredSkills and Responsibilities are part of the schema but are not
	// populated by the lexical extraction pass. Deeper extraction is deferred
	// to the AI rewrite collaborator.
	PreferredSkills  []string `json:"preferred_skills"`
	Responsibilities []string `json:"responsibilities"`

	// Keywords are domain terms found by containment against a fixed
	// vocabulary, de-duplicated, in vocabulary order.
	Keywords []string `json:"keywords"`
}
