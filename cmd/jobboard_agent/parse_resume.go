package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-pipeline/internal/decode"
	"github.com/jonathan/jobboard-pipeline/internal/extraction"
	"github.com/jonathan/jobboard-pipeline/internal/llm"
	"github.com/jonathan/jobboard-pipeline/internal/observability"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract structured candidate data from a resume file",
	Long:  "Decode a resume file (TXT, PDF, DOCX or HTML) and extract contact details, experience, education, skills and certifications as JSON.",
	RunE:  runParseResume,
}

var (
	parseResumeInput   string
	parseResumeOutput  string
	parseResumeAI      bool
	parseResumeAPIKey  string
	parseResumeVerbose bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to resume file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().BoolVar(&parseResumeAI, "ai", false, "Fill in missing fields with the LLM when heuristic extraction comes up sparse")
	parseResumeCmd.Flags().StringVar(&parseResumeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseResumeCmd.Flags().BoolVarP(&parseResumeVerbose, "verbose", "v", false, "Print a formatted summary of the extraction")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(parseResumeInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := decode.Decode(data, filepath.Base(parseResumeInput))
	if err != nil {
		return fmt.Errorf("failed to decode resume: %w", err)
	}
	if decode.IsLowConfidence(text) {
		fmt.Fprintf(os.Stderr, "Warning: no readable text found in %s; extraction will be empty\n", parseResumeInput)
	}

	candidate := extraction.Extract(text)

	if parseResumeAI && extraction.IsSparse(&candidate) {
		enriched, err := extractWithModel(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: model-assisted extraction failed: %v\n", err)
		} else {
			candidate = extraction.MergeProfiles(candidate, enriched)
		}
	}

	if parseResumeVerbose {
		observability.NewPrinter(os.Stderr).PrintCandidateSummary(&candidate)
	}

	jsonBytes, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseResumeOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(parseResumeOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Extracted candidate data\nOutput: %s\n", parseResumeOutput)
	return nil
}

func extractWithModel(resumeText string) (*types.CandidateData, error) {
	apiKey := parseResumeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required for --ai (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return extraction.ExtractWithModel(ctx, client, resumeText)
}
