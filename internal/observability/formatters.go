// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidateSummary outputs a human-readable summary of extracted candidate data.
func (p *Printer) PrintCandidateSummary(candidate *types.CandidateData) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(candidate.PersonalInfo.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(candidate.PersonalInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(candidate.PersonalInfo.Phone)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(candidate.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(candidate.Education)))

	if len(candidate.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(candidate.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", candidate.Skills[i]))
		}
		if len(candidate.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(candidate.Skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED CANDIDATE DATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobRequirements outputs the skills and keywords parsed from a job description.
func (p *Printer) PrintJobRequirements(req *types.JobRequirements) {
	if req == nil {
		return
	}

	var sb strings.Builder

	if len(req.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		for _, skill := range req.RequiredSkills {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
		sb.WriteString("\n")
	}

	if len(req.Keywords) > 0 {
		keywords := strings.Join(req.Keywords, ", ")
		if len(keywords) > 45 {
			keywords = keywords[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", keywords))
	}

	if sb.Len() == 0 {
		sb.WriteString("No requirements detected\n")
	}

	p.printBox("PARSED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationSummary outputs aggregated validation results for an upload.
func (p *Printer) PrintValidationSummary(results []types.ValidationResult) {
	if len(results) == 0 {
		return
	}

	valid, invalid, warned, duplicates := 0, 0, 0, 0
	for _, r := range results {
		if r.IsValid {
			valid++
		} else {
			invalid++
		}
		if len(r.Warnings) > 0 {
			warned++
		}
		if r.IsDuplicate {
			duplicates++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rows checked:    %d\n", len(results)))
	sb.WriteString(fmt.Sprintf("Valid:           %d\n", valid))
	sb.WriteString(fmt.Sprintf("Invalid:         %d\n", invalid))
	sb.WriteString(fmt.Sprintf("With warnings:   %d\n", warned))
	sb.WriteString(fmt.Sprintf("Duplicates:      %d", duplicates))

	p.printBox("VALIDATION SUMMARY", sb.String())
}

// PrintRowErrors outputs blocking errors for invalid rows, capped per box.
func (p *Printer) PrintRowErrors(results []types.ValidationResult) {
	var sb strings.Builder
	shown := 0
	for i, r := range results {
		if r.IsValid {
			continue
		}
		for _, msg := range r.Errors {
			if shown >= maxItemsToShow {
				break
			}
			if len(msg) > 42 {
				msg = msg[:39] + "..."
			}
			sb.WriteString(fmt.Sprintf("row %d: %s\n", i+1, msg))
			shown++
		}
	}
	if shown == 0 {
		return
	}

	p.printBox("ROW ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDuplicates outputs groups of rows sharing a canonical job identity.
func (p *Printer) PrintDuplicates(groups map[string][]int) {
	if len(groups) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO DUPLICATES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d duplicate groups:\n\n", len(groups)))

	shown := 0
	for key, rows := range groups {
		if shown >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more groups\n", len(groups)-shown))
			break
		}
		display := key
		if len(display) > 45 {
			display = display[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", display))
		sb.WriteString(fmt.Sprintf("  rows %s\n", joinInts(rows)))
		shown++
	}

	p.printBox("DUPLICATE JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUploadReport outputs the outcome of a batch upload.
func (p *Printer) PrintUploadReport(report *types.UploadReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Upload ID: %s\n", report.UploadID))
	sb.WriteString(fmt.Sprintf("Total:     %d\n", report.Total))
	sb.WriteString(fmt.Sprintf("Created:   %d\n", report.Created))
	sb.WriteString(fmt.Sprintf("Failed:    %d", report.Failed))

	if len(report.Errors) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := report.Errors[i]
			sb.WriteString(fmt.Sprintf("\n⚠ row %d (%s): %s", e.Index+1, e.Title, e.Message))
		}
		if len(report.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more errors", len(report.Errors)-maxItemsToShow))
		}
	}

	p.printBox("UPLOAD REPORT", sb.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v+1)
	}
	return strings.Join(parts, ", ")
}
