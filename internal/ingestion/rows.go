package ingestion

import (
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/textutil"
	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// ConvertRows maps raw uploaded rows onto the canonical job schema using the
// header mapping. Cells are coerced (lists split, booleans and amounts
// parsed); application_type is inferred from the shape of application_value.
func ConvertRows(rows []map[string]string, mapping types.HeaderMapping) []types.ParsedJobData {
	jobs := make([]types.ParsedJobData, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, convertRow(row, mapping))
	}
	return jobs
}

func convertRow(row map[string]string, mapping types.HeaderMapping) types.ParsedJobData {
	job := types.ParsedJobData{
		SalaryCurrency: "USD",
		Status:         types.StatusActive,
	}

	for rawHeader, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		switch mapping[rawHeader] {
		case "title":
			job.Title = cell
		case "company":
			job.Company = cell
		case "location":
			job.Location = cell
		case "description":
			job.Description = cell
		case "requirements":
			job.Requirements = textutil.SplitList(cell)
		case "employment_type":
			job.EmploymentType = strings.ToLower(cell)
		case "experience_level":
			job.ExperienceLevel = strings.ToLower(cell)
		case "salary_min":
			if amount, ok := textutil.ParseAmount(cell); ok {
				job.SalaryMin = amount
			}
		case "salary_max":
			if amount, ok := textutil.ParseAmount(cell); ok {
				job.SalaryMax = amount
			}
		case "salary_currency":
			job.SalaryCurrency = strings.ToUpper(cell)
		case "tech_stack":
			job.TechStack = textutil.SplitList(cell)
		case "visa_sponsorship":
			job.VisaSponsorship = textutil.ParseBool(cell)
		case "remote":
			job.Remote = textutil.ParseBool(cell)
		case "company_size":
			job.CompanySize = cell
		case "application_deadline":
			job.ApplicationDeadline = cell
		case "logo":
			job.Logo = cell
		case "application_value":
			job.ApplicationValue = cell
		case "sponsored":
			job.Sponsored = textutil.ParseBool(cell)
		}
	}

	job.ApplicationType = inferApplicationType(job.ApplicationValue)
	return job
}

// inferApplicationType classifies the application contact: absent means the
// board's internal flow, an address means email, anything else external.
func inferApplicationType(value string) string {
	switch {
	case value == "":
		return types.ApplicationInternal
	case strings.Contains(value, "@") && !strings.HasPrefix(value, "http"):
		return types.ApplicationEmail
	default:
		return types.ApplicationExternal
	}
}
