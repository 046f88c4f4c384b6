package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

func validJob() types.ParsedJobData {
	return types.ParsedJobData{
		Title:       "Backend Engineer",
		Company:     "Acme Analytics",
		Location:    "Berlin",
		Description: strings.Repeat("A solid role description with plenty of detail. ", 3),
	}
}

func TestValidate_CleanRowPasses(t *testing.T) {
	job, result := Validate(validJob(), "")

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "Backend Engineer", job.Title)
}

func TestValidate_MissingCompanyBlocks(t *testing.T) {
	job := validJob()
	job.Title = "dev"
	job.Company = ""
	job.Location = "remote"

	_, result := Validate(job, "")

	assert.False(t, result.IsValid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Company name is required")
}

func TestValidate_RemoteLocationCorrected(t *testing.T) {
	job := validJob()
	job.Location = "Anywhere"

	corrected, result := Validate(job, "")

	assert.True(t, result.IsValid)
	assert.Equal(t, "Remote", corrected.Location)
	assert.True(t, corrected.Remote)
	requireWarningContaining(t, result.Warnings, "remote")
}

func TestValidate_MissingLocationDefaulted(t *testing.T) {
	job := validJob()
	job.Location = ""

	corrected, result := Validate(job, "")

	assert.Equal(t, "Location Not Specified", corrected.Location)
	requireWarningContaining(t, result.Warnings, "Location was missing")
}

func TestValidate_LowercaseTitleCapitalized(t *testing.T) {
	job := validJob()
	job.Title = "senior backend engineer"

	corrected, result := Validate(job, "")

	assert.Equal(t, "Senior Backend Engineer", corrected.Title)
	requireWarningContaining(t, result.Warnings, "capitalized")
}

func TestValidate_LongTitleTruncated(t *testing.T) {
	job := validJob()
	job.Title = strings.Repeat("X", 150)

	corrected, result := Validate(job, "")

	assert.Len(t, corrected.Title, 100)
	assert.True(t, strings.HasSuffix(corrected.Title, "..."))
	requireWarningContaining(t, result.Warnings, "too long")
}

func TestValidate_LongNonASCIITitleTruncatedOnRuneBoundary(t *testing.T) {
	job := validJob()
	job.Title = strings.Repeat("Ü", 150)

	corrected, result := Validate(job, "")

	assert.True(t, utf8.ValidString(corrected.Title))
	assert.Equal(t, 100, utf8.RuneCountInString(corrected.Title))
	requireWarningContaining(t, result.Warnings, "too long")
}

func TestValidate_SalarySwapRepair(t *testing.T) {
	job := validJob()
	job.SalaryMin = 90000
	job.SalaryMax = 40000

	corrected, result := Validate(job, "")

	assert.Equal(t, 40000, corrected.SalaryMin)
	assert.Equal(t, 90000, corrected.SalaryMax)
	requireWarningContaining(t, result.Warnings, "swapped")
}

func TestValidate_SalaryAmbiguousNotSwapped(t *testing.T) {
	job := validJob()
	job.SalaryMin = 70000
	job.SalaryMax = 60000

	corrected, result := Validate(job, "")

	assert.Equal(t, 70000, corrected.SalaryMin)
	assert.Equal(t, 60000, corrected.SalaryMax)
	requireWarningContaining(t, result.Warnings, "greater than maximum")
}

func TestValidate_PlaceholderDescriptionReplaced(t *testing.T) {
	for _, placeholder := range []string{"TBD", "n/a", "lorem ipsum dolor sit amet"} {
		job := validJob()
		job.Description = placeholder

		corrected, result := Validate(job, "")

		assert.NotEqual(t, placeholder, corrected.Description, placeholder)
		assert.Contains(t, corrected.Description, "Backend Engineer at Acme Analytics")
		requireWarningContaining(t, result.Warnings, "placeholder")
	}
}

func TestValidate_ShortDescriptionWarnsOnly(t *testing.T) {
	job := validJob()
	job.Description = "Great job, apply now."

	corrected, result := Validate(job, "")

	assert.True(t, result.IsValid)
	assert.Equal(t, "Great job, apply now.", corrected.Description)
	requireWarningContaining(t, result.Warnings, "short")
}

func TestValidate_UnknownEmploymentTypeDefaulted(t *testing.T) {
	job := validJob()
	job.EmploymentType = "freelance gig"

	corrected, result := Validate(job, "")

	assert.Equal(t, types.EmploymentFullTime, corrected.EmploymentType)
	requireWarningContaining(t, result.Warnings, "freelance gig")
}

func TestValidate_EmploymentTypeSynonymNormalized(t *testing.T) {
	job := validJob()
	job.EmploymentType = "Full Time"

	corrected, result := Validate(job, "")

	assert.Equal(t, types.EmploymentFullTime, corrected.EmploymentType)
	assert.Empty(t, result.Warnings)
}

func TestValidate_ApplicationURLProtocolRepaired(t *testing.T) {
	job := validJob()
	job.ApplicationValue = "www.acme.com/apply"

	corrected, result := Validate(job, "")

	assert.Equal(t, "https://www.acme.com/apply", corrected.ApplicationValue)
	assert.Equal(t, types.ApplicationExternal, corrected.ApplicationType)
	requireWarningContaining(t, result.Warnings, "protocol")
}

func TestValidate_BadEmailWarnsUnchanged(t *testing.T) {
	job := validJob()
	job.ApplicationValue = "jobs@acme"

	corrected, result := Validate(job, "")

	assert.Equal(t, "jobs@acme", corrected.ApplicationValue)
	requireWarningContaining(t, result.Warnings, "email")
}

func TestValidate_ArraysCapped(t *testing.T) {
	job := validJob()
	for i := 0; i < 25; i++ {
		job.TechStack = append(job.TechStack, "tool")
		job.Requirements = append(job.Requirements, "req")
	}

	corrected, result := Validate(job, "")

	assert.Len(t, corrected.TechStack, 20)
	assert.Len(t, corrected.Requirements, 15)
	assert.Len(t, result.Warnings, 2)
}

func TestValidate_IdempotentAfterCorrection(t *testing.T) {
	job := validJob()
	job.Title = "senior backend engineer"
	job.Location = "remote (EU)"
	job.SalaryMin = 90000
	job.SalaryMax = 40000
	job.ApplicationValue = "www.acme.com/apply"

	corrected, first := Validate(job, "")
	require.NotEmpty(t, first.Warnings)

	again, second := Validate(corrected, "")
	assert.Empty(t, second.Warnings)
	assert.Equal(t, corrected, again)
}

func TestValidate_DuplicateKeyFlagged(t *testing.T) {
	_, result := Validate(validJob(), "backendengineer|acme|berlin")
	assert.True(t, result.IsDuplicate)
	assert.Equal(t, "backendengineer|acme|berlin", result.DuplicateKey)
}

func TestValidate_InputNotMutated(t *testing.T) {
	job := validJob()
	job.Title = "lowercase title"
	_, _ = Validate(job, "")
	assert.Equal(t, "lowercase title", job.Title)
}

func requireWarningContaining(t *testing.T, warnings []string, fragment string) {
	t.Helper()
	for _, w := range warnings {
		if strings.Contains(strings.ToLower(w), strings.ToLower(fragment)) {
			return
		}
	}
	t.Fatalf("no warning containing %q in %v", fragment, warnings)
}
