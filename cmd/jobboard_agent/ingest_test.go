package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUploadFile_CSV(t *testing.T) {
	data := []byte("Job Title,Company,Location\nEngineer,Acme,Berlin\n")

	rowSet, err := parseUploadFile(data, "jobs.csv")

	require.NoError(t, err)
	assert.Equal(t, []string{"Job Title", "Company", "Location"}, rowSet.Headers)
	require.Len(t, rowSet.Rows, 1)
	assert.Equal(t, "Acme", rowSet.Rows[0]["Company"])
}

func TestParseUploadFile_UnsupportedExtension(t *testing.T) {
	_, err := parseUploadFile([]byte("data"), "jobs.numbers")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported upload format")
}

func TestBuildIngestReport_DuplicatesKeyedOnCorrectedRows(t *testing.T) {
	// Locations differ on input but both auto-correct to "Remote", so the
	// rows collapse to one canonical key.
	csv := "Job Title,Company,Location,Description\n" +
		"Backend Engineer,Acme Inc,Remote,Design and operate the ingestion layer for our growing jobs platform team.\n" +
		"Backend Engineer,Acme Inc,Anywhere,Design and operate the ingestion layer for our growing jobs platform team.\n"

	report, accepted, err := buildIngestReport([]byte(csv), "jobs.csv", false)
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.False(t, report.Results[0].IsDuplicate)
	assert.True(t, report.Results[1].IsDuplicate)
	assert.Equal(t, "backend engineer|acme inc|remote", report.Results[1].DuplicateKey)
	assert.Contains(t, report.Duplicates, "backend engineer|acme inc|remote")

	require.Len(t, accepted, 1)
	assert.Equal(t, "Remote", accepted[0].Location)
	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.Rejected)
}

func TestIngestCommand_ReportWritten(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	input := filepath.Join(tmpDir, "jobs.csv")
	csv := "Job Title,Company,Location,Description\n" +
		"Backend Engineer,Acme,Berlin,Design and operate the ingestion layer for our growing jobs platform team.\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))

	output := filepath.Join(tmpDir, "report.json")
	cmd := exec.Command(binaryPath, "ingest", "--in", input, "--out", output)
	combined, err := cmd.CombinedOutput()
	require.NoError(t, err, "ingest failed: %s", combined)

	raw, err := os.ReadFile(output)
	require.NoError(t, err)

	var report struct {
		Accepted int `json:"accepted"`
		Rejected int `json:"rejected"`
	}
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 0, report.Rejected)
}

func TestIngestCommand_MissingInputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "ingest")
	combined, err := cmd.CombinedOutput()

	require.Error(t, err)
	assert.Contains(t, string(combined), "required")
}

func TestSampleCSVCommand_RoundTripsThroughIngest(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	sample := filepath.Join(tmpDir, "sample.csv")
	cmd := exec.Command(binaryPath, "sample-csv", "--out", sample)
	combined, err := cmd.CombinedOutput()
	require.NoError(t, err, "sample-csv failed: %s", combined)

	cmd = exec.Command(binaryPath, "ingest", "--in", sample)
	combined, err = cmd.CombinedOutput()
	require.NoError(t, err, "ingest failed: %s", combined)
	assert.Contains(t, string(combined), "\"accepted\": 2")
}
