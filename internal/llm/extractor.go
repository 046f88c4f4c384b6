// Package llm - extractor.go builds structured-extraction prompts from a
// field schema, so each extraction task declares its output shape once.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "CandidateProfile")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "number"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// CandidateProfileSchema returns the extraction schema for resume text. It
// backs the model-assisted fallback used when heuristic extraction yields a
// sparse profile.
func CandidateProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CandidateProfile",
		Description: `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract structured candidate information from raw resume text.
IMPORTANT: Contact details (name, email, phone) must be copied character-for-character.
EXCLUDE: References, cover letter fragments, page headers and footers.`,
		Fields: []SchemaField{
			{
				Name:        "name",
				Type:        "\"string\"",
				Description: "Candidate full name exactly as written",
				Required:    true,
			},
			{
				Name:        "email",
				Type:        "\"string\"",
				Description: "Email address verbatim, empty string if absent",
				Required:    false,
			},
			{
				Name:        "phone",
				Type:        "\"string\"",
				Description: "Phone number verbatim, empty string if absent",
				Required:    false,
			},
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "Professional summary or objective section verbatim",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Individual skills, one entry per skill",
				Required:    true,
			},
		},
	}
}
