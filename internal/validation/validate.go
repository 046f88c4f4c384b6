// Package validation checks and auto-corrects bulk-uploaded job rows.
// Validation and normalization are fused: one pass yields a corrected row and
// a human-readable change log. Unambiguous problems are fixed silently with a
// warning; ambiguous ones are warned without a fix; only missing required
// fields block the row.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobboard-pipeline/internal/textutil"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// Field caps applied during auto-correction.
const (
	maxTitleLen       = 100
	minTitleLen       = 3
	minCompanyLen     = 2
	minDescriptionLen = 50
	maxDescriptionLen = 2000
	maxTechStack      = 20
	maxRequirements   = 15

	minPlausibleSalary = 1000
	maxPlausibleSalary = 1000000
)

// defaultLocation replaces a missing location; it is a visible sentinel, not
// a guess at where the job actually is.
const defaultLocation = "Location Not Specified"

// placeholderPhrases mark a description as filler to be replaced wholesale
var placeholderPhrases = []string{
	"lorem ipsum", "tbd", "to be determined", "n/a", "na", "none",
	"description here", "add description", "xxx", "placeholder",
}

var fieldValidator = validator.New()

// Validate checks one uploaded row, returning the corrected row and the
// validation result. The input row is not mutated; corrections are applied to
// the returned copy so rows can be validated in parallel.
func Validate(job types.ParsedJobData, duplicateKey string) (types.ParsedJobData, types.ValidationResult) {
	result := types.ValidationResult{}
	if duplicateKey != "" {
		result.IsDuplicate = true
		result.DuplicateKey = duplicateKey
	}

	validateTitle(&job, &result)
	validateCompany(&job, &result)
	validateLocation(&job, &result)
	validateDescription(&job, &result)
	validateEmploymentType(&job, &result)
	validateExperienceLevel(&job, &result)
	validateSalary(&job, &result)
	validateApplicationValue(&job, &result)
	validateArrays(&job, &result)

	result.IsValid = len(result.Errors) == 0
	return job, result
}

func validateTitle(job *types.ParsedJobData, result *types.ValidationResult) {
	job.Title = strings.TrimSpace(job.Title)

	if len(job.Title) < minTitleLen {
		result.Errors = append(result.Errors, "Job title is required and must be at least 3 characters")
		return
	}
	if textutil.IsAllLower(job.Title) {
		job.Title = textutil.TitleCase(job.Title)
		result.Warnings = append(result.Warnings, "Job title was lowercase and has been capitalized")
	}
	if shortened := textutil.Truncate(job.Title, maxTitleLen); shortened != job.Title {
		job.Title = shortened
		result.Warnings = append(result.Warnings, "Job title was too long and has been shortened")
	}
}

func validateCompany(job *types.ParsedJobData, result *types.ValidationResult) {
	job.Company = strings.TrimSpace(job.Company)

	if len(job.Company) < minCompanyLen {
		result.Errors = append(result.Errors, "Company name is required and must be at least 2 characters")
		return
	}
	if textutil.IsAllLower(job.Company) {
		job.Company = textutil.TitleCase(job.Company)
		result.Warnings = append(result.Warnings, "Company name was lowercase and has been capitalized")
	}
	if shortened := textutil.Truncate(job.Company, maxTitleLen); shortened != job.Company {
		job.Company = shortened
		result.Warnings = append(result.Warnings, "Company name was too long and has been shortened")
	}
}

func validateLocation(job *types.ParsedJobData, result *types.ValidationResult) {
	job.Location = strings.TrimSpace(job.Location)

	if job.Location == "" {
		job.Location = defaultLocation
		result.Warnings = append(result.Warnings, `Location was missing and has been set to "Location Not Specified"`)
		return
	}

	lower := strings.ToLower(job.Location)
	if strings.Contains(lower, "remote") || strings.Contains(lower, "anywhere") {
		if job.Location != "Remote" || !job.Remote {
			job.Location = "Remote"
			job.Remote = true
			result.Warnings = append(result.Warnings, `Location indicated remote work: set to "Remote" and marked the job as remote`)
		}
		return
	}

	if textutil.IsAllLower(job.Location) {
		job.Location = textutil.TitleCase(job.Location)
		result.Warnings = append(result.Warnings, "Location was lowercase and has been capitalized")
	}
}

func validateDescription(job *types.ParsedJobData, result *types.ValidationResult) {
	job.Description = strings.TrimSpace(job.Description)

	if job.Description == "" || isPlaceholder(job.Description) {
		reason := "missing"
		if job.Description != "" {
			reason = "placeholder text"
		}
		job.Description = generatedDescription(job)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Description was %s and has been replaced with a generated one; please review before publishing", reason))
		return
	}

	if len(job.Description) < minDescriptionLen {
		result.Warnings = append(result.Warnings, "Description is very short; consider adding more detail")
	}
	if len(job.Description) > maxDescriptionLen {
		job.Description = textutil.TruncateAtSentence(job.Description, maxDescriptionLen)
		result.Warnings = append(result.Warnings, "Description was too long and has been shortened")
	}
}

// isPlaceholder reports whether the description is filler. Exact-equal short
// markers ("tbd", "n/a") and longer texts containing a known filler phrase
// both count.
func isPlaceholder(description string) bool {
	lower := strings.ToLower(strings.TrimSpace(description))
	for _, phrase := range placeholderPhrases {
		if lower == phrase || (len(phrase) > 6 && strings.Contains(lower, phrase)) {
			return true
		}
	}
	return false
}

// generatedDescription produces a reviewable one-paragraph description from
// the fields that survived validation.
func generatedDescription(job *types.ParsedJobData) string {
	title := job.Title
	if title == "" {
		title = "This position"
	}
	company := job.Company
	if company == "" {
		company = "our company"
	}
	location := job.Location
	if location == "" {
		location = "the listed location"
	}
	return fmt.Sprintf("%s at %s, based in %s. We are looking for a qualified candidate to join the team. Contact the employer for the full role description and requirements.",
		title, company, location)
}

func validateEmploymentType(job *types.ParsedJobData, result *types.ValidationResult) {
	if job.EmploymentType == "" {
		job.EmploymentType = types.EmploymentFullTime
		return
	}
	normalized := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(job.EmploymentType), "_", "-"), " ", "-")
	for _, valid := range types.EmploymentTypes {
		if normalized == valid {
			job.EmploymentType = valid
			return
		}
	}
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("Employment type %q is not recognized and has been set to %q", job.EmploymentType, types.EmploymentFullTime))
	job.EmploymentType = types.EmploymentFullTime
}

func validateExperienceLevel(job *types.ParsedJobData, result *types.ValidationResult) {
	if job.ExperienceLevel == "" {
		job.ExperienceLevel = types.LevelMid
		return
	}
	normalized := strings.ToLower(strings.TrimSpace(job.ExperienceLevel))
	for _, valid := range types.ExperienceLevels {
		if normalized == valid {
			job.ExperienceLevel = valid
			return
		}
	}
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("Experience level %q is not recognized and has been set to %q", job.ExperienceLevel, types.LevelMid))
	job.ExperienceLevel = types.LevelMid
}

// validateSalary repairs a clearly swapped range (min more than double max)
// and warns on ambiguous or implausible values without changing them.
func validateSalary(job *types.ParsedJobData, result *types.ValidationResult) {
	if job.SalaryMin > 0 && job.SalaryMax > 0 && job.SalaryMin > job.SalaryMax {
		if job.SalaryMin > 2*job.SalaryMax {
			job.SalaryMin, job.SalaryMax = job.SalaryMax, job.SalaryMin
			result.Warnings = append(result.Warnings, "Salary minimum and maximum appeared swapped and have been exchanged")
		} else {
			result.Warnings = append(result.Warnings, "Salary minimum is greater than maximum: please check the range")
		}
	}
	if job.SalaryMin > 0 && job.SalaryMin < minPlausibleSalary {
		result.Warnings = append(result.Warnings, "Salary minimum looks implausibly low; check whether it is an annual amount")
	}
	if job.SalaryMax > maxPlausibleSalary {
		result.Warnings = append(result.Warnings, "Salary maximum looks implausibly high; check for extra digits")
	}
}

// validateApplicationValue accepts valid emails and http(s) URLs as-is,
// repairs protocol-less web addresses, and warns on everything else.
func validateApplicationValue(job *types.ParsedJobData, result *types.ValidationResult) {
	value := strings.TrimSpace(job.ApplicationValue)
	job.ApplicationValue = value
	if value == "" {
		return
	}

	if fieldValidator.Var(value, "email") == nil {
		return
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		if fieldValidator.Var(value, "url") == nil {
			return
		}
		result.Warnings = append(result.Warnings, "Application URL does not look valid; please check it")
		return
	}

	if strings.Contains(value, "@") {
		result.Warnings = append(result.Warnings, "Application email looks invalid; it may be missing a domain")
		return
	}
	if strings.Contains(value, "www.") || strings.Contains(value, ".com") || strings.Contains(value, ".org") {
		job.ApplicationValue = "https://" + value
		job.ApplicationType = types.ApplicationExternal
		result.Warnings = append(result.Warnings, `Application URL was missing a protocol: "https://" has been added`)
		return
	}
	result.Warnings = append(result.Warnings, "Application contact should be an email address or a URL")
}

func validateArrays(job *types.ParsedJobData, result *types.ValidationResult) {
	if len(job.TechStack) > maxTechStack {
		job.TechStack = job.TechStack[:maxTechStack]
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Tech stack list was trimmed to the first %d entries", maxTechStack))
	}
	if len(job.Requirements) > maxRequirements {
		job.Requirements = job.Requirements[:maxRequirements]
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Requirements list was trimmed to the first %d entries", maxRequirements))
	}
}
