package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-pipeline/internal/ingestion"
)

var sampleCSVCmd = &cobra.Command{
	Use:   "sample-csv",
	Short: "Write a sample upload CSV with canonical headers",
	RunE:  runSampleCSV,
}

var sampleCSVOutput string

func init() {
	sampleCSVCmd.Flags().StringVarP(&sampleCSVOutput, "out", "o", "", "Path to output CSV file (default: stdout)")

	rootCmd.AddCommand(sampleCSVCmd)
}

func runSampleCSV(_ *cobra.Command, _ []string) error {
	data := ingestion.GenerateSampleCSV()

	if sampleCSVOutput == "" {
		_, _ = os.Stdout.Write(data)
		return nil
	}
	if err := os.WriteFile(sampleCSVOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write sample CSV: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Sample: %s\n", sampleCSVOutput)
	return nil
}
