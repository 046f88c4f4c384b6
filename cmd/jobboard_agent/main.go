// Package main provides the entry point for the job board ingestion CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobboard_agent",
	Short: "Job board ingestion and resume processing CLI",
	Long:  "jobboard_agent extracts structured data from resumes, enhances them against job requirements, and ingests bulk job uploads with validation, auto-correction, and duplicate detection.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
