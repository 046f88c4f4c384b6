package ingestion

import (
	"bytes"
	"encoding/csv"
)

// sampleHeaders is the canonical column set of the downloadable example file.
// Every header here must map back to its canonical field with a high score;
// self-consistency is covered by tests.
var sampleHeaders = []string{
	"title", "company", "location", "description", "requirements",
	"employment_type", "experience_level", "salary_min", "salary_max",
	"salary_currency", "tech_stack", "visa_sponsorship", "remote",
	"company_size", "application_deadline", "logo", "application_value",
	"sponsored",
}

var sampleRows = [][]string{
	{
		"Senior Backend Engineer", "Acme Analytics", "Berlin, Germany",
		"Design and operate the data ingestion platform powering our analytics products. You will own services end to end, from schema design to production monitoring.",
		"5+ years backend experience; strong SQL",
		"full-time", "senior", "85000", "110000", "EUR",
		"Go, PostgreSQL, Kubernetes", "yes", "no",
		"51-200", "2025-12-31", "https://example.com/acme-logo.png",
		"jobs@acme-analytics.example", "no",
	},
	{
		"Marketing Manager", "TechStart Inc", "Remote",
		"Lead demand generation across channels and own the campaign calendar for our self-serve product line.",
		"3+ years in B2B SaaS marketing",
		"full-time", "mid", "60000", "80000", "USD",
		"Google Analytics, HubSpot", "no", "yes",
		"11-50", "", "",
		"https://techstart.example/careers/42", "yes",
	},
}

// GenerateSampleCSV produces the canonical two-row example upload offered for
// download. Pure function of the canonical field list.
func GenerateSampleCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(sampleHeaders)
	for _, row := range sampleRows {
		_ = w.Write(row)
	}
	w.Flush()
	return buf.Bytes()
}
