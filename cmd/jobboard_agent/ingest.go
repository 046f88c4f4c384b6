package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobboard-pipeline/internal/config"
	"github.com/jonathan/jobboard-pipeline/internal/db"
	"github.com/jonathan/jobboard-pipeline/internal/dedup"
	"github.com/jonathan/jobboard-pipeline/internal/ingestion"
	"github.com/jonathan/jobboard-pipeline/internal/observability"
	"github.com/jonathan/jobboard-pipeline/internal/types"
	"github.com/jonathan/jobboard-pipeline/internal/uploading"
	"github.com/jonathan/jobboard-pipeline/internal/validation"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a bulk job upload file (CSV or XLSX)",
	Long:  "Parse an upload file, map its headers onto the canonical job schema, validate and auto-correct every row, flag duplicates, and optionally persist the accepted rows in batches. Ctrl-C stops the upload between batches.",
	RunE:  runIngest,
}

var (
	ingestInput       string
	ingestOutput      string
	ingestConfigPath  string
	ingestUpload      bool
	ingestDryRun      bool
	ingestDatabaseURL string
	ingestTokenSim    bool
	ingestVerbose     bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestInput, "in", "i", "", "Path to CSV or XLSX upload file (required)")
	ingestCmd.Flags().StringVarP(&ingestOutput, "out", "o", "", "Path to JSON report file (default: stdout)")
	ingestCmd.Flags().StringVarP(&ingestConfigPath, "config", "c", "", "Path to JSON config file")
	ingestCmd.Flags().BoolVar(&ingestUpload, "upload", false, "Persist accepted rows to the database")
	ingestCmd.Flags().BoolVar(&ingestDryRun, "dry-run", false, "Run the upload against an in-memory store")
	ingestCmd.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	ingestCmd.Flags().BoolVar(&ingestTokenSim, "token-similarity", false, "Use token-overlap duplicate matching instead of character similarity")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print formatted summaries of each stage")
	_ = ingestCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(ingestCmd)
}

// ingestReport is the JSON artifact describing one ingest run
type ingestReport struct {
	File       string                   `json:"file"`
	Mapping    types.HeaderMapping      `json:"mapping"`
	Rows       []types.ParsedJobData    `json:"rows"`
	Results    []types.ValidationResult `json:"results"`
	Duplicates map[string][]int         `json:"duplicates,omitempty"`
	Accepted   int                      `json:"accepted"`
	Rejected   int                      `json:"rejected"`
	Upload     *types.UploadReport      `json:"upload,omitempty"`
}

func runIngest(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if ingestConfigPath != "" {
		loaded, err := config.LoadConfig(ingestConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}
	if ingestTokenSim {
		cfg.TokenSimilarity = true
	}

	data, err := os.ReadFile(ingestInput)
	if err != nil {
		return fmt.Errorf("failed to read upload file: %w", err)
	}

	report, accepted, err := buildIngestReport(data, ingestInput, cfg.TokenSimilarity)
	if err != nil {
		return err
	}

	if ingestVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintValidationSummary(report.Results)
		printer.PrintRowErrors(report.Results)
		printer.PrintDuplicates(report.Duplicates)
	}

	if ingestUpload || ingestDryRun {
		uploadReport, err := runUpload(cfg, accepted)
		if err != nil {
			return err
		}
		report.Upload = uploadReport
		if ingestVerbose {
			observability.NewPrinter(os.Stderr).PrintUploadReport(uploadReport)
		}
	}

	return writeIngestReport(report)
}

// buildIngestReport runs the mapping, validation and duplicate stages over
// one upload file. Rows are validated and auto-corrected first so duplicate
// keys are built from the corrected fields; a row that only matches another
// after correction ("Anywhere" becoming "Remote") still groups. The first
// row of each group is kept, later rows carry the duplicate flag.
func buildIngestReport(data []byte, filename string, tokenSimilarity bool) (*ingestReport, []types.ParsedJobData, error) {
	rowSet, err := parseUploadFile(data, filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse upload file: %w", err)
	}

	mapping := ingestion.GenerateMapping(rowSet.Headers)
	rows := ingestion.ConvertRows(rowSet.Rows, mapping)

	report := &ingestReport{
		File:    filepath.Base(filename),
		Mapping: mapping,
	}

	corrected := make([]types.ParsedJobData, 0, len(rows))
	for _, row := range rows {
		fixed, result := validation.Validate(row, "")
		corrected = append(corrected, fixed)
		report.Rows = append(report.Rows, fixed)
		report.Results = append(report.Results, result)
	}

	detector := &dedup.Detector{TokenSimilarity: tokenSimilarity}
	report.Duplicates = detector.Detect(corrected)
	for key, indices := range report.Duplicates {
		for _, idx := range indices[1:] {
			report.Results[idx].IsDuplicate = true
			report.Results[idx].DuplicateKey = key
		}
	}

	var accepted []types.ParsedJobData
	for i, row := range corrected {
		if report.Results[i].IsValid && !report.Results[i].IsDuplicate {
			accepted = append(accepted, row)
		}
	}
	report.Accepted = len(accepted)
	report.Rejected = len(rows) - len(accepted)

	return report, accepted, nil
}

// parseUploadFile dispatches on the file extension
func parseUploadFile(data []byte, filename string) (*ingestion.RowSet, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return ingestion.ParseCSV(data)
	case ".xlsx":
		return ingestion.ParseXLSX(data)
	default:
		return nil, fmt.Errorf("unsupported upload format %q; use CSV or XLSX", filepath.Ext(filename))
	}
}

func runUpload(cfg *config.Config, jobs []types.ParsedJobData) (*types.UploadReport, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var store db.JobStore
	if ingestDryRun {
		store = db.NewMemoryStore()
	} else {
		dbURL := ingestDatabaseURL
		if dbURL == "" {
			dbURL = cfg.DatabaseURL
		}
		if dbURL == "" {
			dbURL = os.Getenv("DATABASE_URL")
		}
		if dbURL == "" {
			return nil, fmt.Errorf("DATABASE_URL required for --upload (or pass --dry-run)")
		}

		pg, err := db.Connect(ctx, dbURL)
		if err != nil {
			return nil, err
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		store = pg
	}

	uploader := uploading.New(store)
	if cfg.BatchSize > 0 {
		uploader.BatchSize = cfg.BatchSize
	}
	if cfg.BatchDelayMs > 0 {
		uploader.BatchDelay = time.Duration(cfg.BatchDelayMs) * time.Millisecond
	}
	uploader.Progress = func(processed, total int) {
		_, _ = fmt.Fprintf(os.Stderr, "\ruploading %d/%d rows", processed, total)
		if processed == total {
			_, _ = fmt.Fprintln(os.Stderr)
		}
	}

	uploadReport, err := uploader.Upload(ctx, jobs)
	if err != nil {
		// Interrupted uploads still report what landed before the stop.
		_, _ = fmt.Fprintf(os.Stderr, "\nupload stopped: %v (%d of %d rows created)\n",
			err, uploadReport.Created, uploadReport.Total)
	}
	return uploadReport, nil
}

func writeIngestReport(report *ingestReport) error {
	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if ingestOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(ingestOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Report: %s\n", ingestOutput)
	return nil
}
