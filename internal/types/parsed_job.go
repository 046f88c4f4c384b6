package types

// Canonical enumerations for normalized job fields.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"

	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelPrincipal = "principal"

	ApplicationInternal = "internal"
	ApplicationEmail    = "email"
	ApplicationExternal = "external"

	StatusActive = "active"
)

// EmploymentTypes is the closed set of valid employment_type values
var EmploymentTypes = []string{
	EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship,
}

// ExperienceLevels is the closed set of valid experience_level values
var ExperienceLevels = []string{
	LevelEntry, LevelMid, LevelSenior, LevelPrincipal,
}

// ParsedJobData is one row of a bulk upload mapped onto the canonical job schema.
// Title, Company, Location and Description are required after validation; the
// rest is optional with documented defaults.
type ParsedJobData struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`

	Requirements    []string `json:"requirements,omitempty"`
	EmploymentType  string   `json:"employment_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`

	SalaryMin      int    `json:"salary_min,omitempty"`
	SalaryMax      int    `json:"salary_max,omitempty"`
	SalaryCurrency string `json:"salary_currency,omitempty"`

	TechStack       []string `json:"tech_stack,omitempty"`
	VisaSponsorship bool     `json:"visa_sponsorship"`
	Remote          bool     `json:"remote"`

	CompanySize         string `json:"company_size,omitempty"`
	ApplicationDeadline string `json:"application_deadline,omitempty"`
	Logo                string `json:"logo,omitempty"`
	Status              string `json:"status,omitempty"`

	// ApplicationType is inferred: "email"/"external" when ApplicationValue is
	// present (based on its shape), "internal" otherwise.
	ApplicationType  string `json:"application_type,omitempty"`
	ApplicationValue string `json:"application_value,omitempty"`

	Sponsored bool `json:"sponsored"`
}

// ValidationResult reports the outcome of validating one uploaded row.
// Warnings describe auto-corrections already applied to the returned row;
// errors are blocking and exclude the row from upload.
type ValidationResult struct {
	IsValid      bool     `json:"is_valid"`
	Errors       []string `json:"errors,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
	IsDuplicate  bool     `json:"is_duplicate"`
	DuplicateKey string   `json:"duplicate_key,omitempty"`
}

// HeaderMapping maps a raw uploaded column header to a canonical job field
// name, or to a normalized slug of itself when no confident match exists.
type HeaderMapping map[string]string
