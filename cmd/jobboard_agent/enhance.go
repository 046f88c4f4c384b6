package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-pipeline/internal/decode"
	"github.com/jonathan/jobboard-pipeline/internal/enhancing"
	"github.com/jonathan/jobboard-pipeline/internal/extraction"
	"github.com/jonathan/jobboard-pipeline/internal/llm"
	"github.com/jonathan/jobboard-pipeline/internal/observability"
	"github.com/jonathan/jobboard-pipeline/internal/parsing"
	"github.com/jonathan/jobboard-pipeline/internal/rewriting"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Enhance a resume against a job description",
	Long:  "Extract candidate data from a resume, parse the target job description, and emit an enhanced resume with a 0-100 match score. With --tailor, an LLM rewrites the resume instead of the rule-based formatter.",
	RunE:  runEnhance,
}

var (
	enhanceResumeFile string
	enhanceJobFile    string
	enhanceJobTitle   string
	enhanceCompany    string
	enhanceOutput     string
	enhanceTailor     bool
	enhanceAPIKey     string
	enhanceVerbose    bool
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceResumeFile, "resume", "r", "", "Path to resume file (required)")
	enhanceCmd.Flags().StringVarP(&enhanceJobFile, "job", "j", "", "Path to job description text file (required)")
	enhanceCmd.Flags().StringVar(&enhanceJobTitle, "title", "", "Job title for requirement parsing")
	enhanceCmd.Flags().StringVar(&enhanceCompany, "company", "", "Company name for requirement parsing")
	enhanceCmd.Flags().StringVarP(&enhanceOutput, "out", "o", "", "Path to output text file (default: stdout)")
	enhanceCmd.Flags().BoolVar(&enhanceTailor, "tailor", false, "Use the LLM to rewrite the resume")
	enhanceCmd.Flags().StringVar(&enhanceAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	enhanceCmd.Flags().BoolVarP(&enhanceVerbose, "verbose", "v", false, "Print extraction and requirement summaries")
	_ = enhanceCmd.MarkFlagRequired("resume")
	_ = enhanceCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, _ []string) error {
	resumeData, err := os.ReadFile(enhanceResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText, err := decode.Decode(resumeData, filepath.Base(enhanceResumeFile))
	if err != nil {
		return fmt.Errorf("failed to decode resume: %w", err)
	}

	jobText, err := os.ReadFile(enhanceJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	candidate := extraction.Extract(resumeText)
	requirements := parsing.ParseJobRequirements(enhanceJobTitle, enhanceCompany, string(jobText))

	if enhanceVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCandidateSummary(&candidate)
		printer.PrintJobRequirements(&requirements)
	}

	var output string
	var score int

	if enhanceTailor {
		output, score, err = tailorWithLLM(resumeText, string(jobText), &candidate)
		if err != nil {
			return err
		}
	} else {
		enhancer := enhancing.New(candidate, requirements)
		output = enhancer.Enhance()
		score = enhancer.Score()
	}

	if enhanceOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, output)
	} else {
		if err := os.WriteFile(enhanceOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", enhanceOutput)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Match score: %d/100\n", score)
	return nil
}

func tailorWithLLM(resumeText, jobText string, candidate *types.CandidateData) (string, int, error) {
	apiKey := enhanceAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return "", 0, fmt.Errorf("API key is required for --tailor (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	tailored, err := rewriting.TailorResume(ctx, client, resumeText, jobText, candidate)
	if err != nil {
		return "", 0, fmt.Errorf("failed to tailor resume: %w", err)
	}
	return tailored.TailoredText, tailored.MatchScore, nil
}
