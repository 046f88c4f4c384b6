// Package ingestion turns heterogeneous CSV/XLSX job uploads into validated
// ParsedJobData rows: fuzzy header mapping, cell coercion, row conversion and
// the canonical sample file.
package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// minMappingScore is the acceptance threshold for a fuzzy header match
const minMappingScore = 50

// headerVariants maps each canonical job field to the uploaded header texts
// known to mean it. Static configuration, never mutated at runtime.
var headerVariants = map[string][]string{
	"title":                {"title", "job title", "position", "role", "job name", "vacancy"},
	"company":              {"company", "company name", "employer", "organization", "org"},
	"location":             {"location", "city", "place", "job location", "office"},
	"description":          {"description", "job description", "details", "about", "summary"},
	"requirements":         {"requirements", "qualifications", "must have", "required skills"},
	"employment_type":      {"employment type", "job type", "type", "contract type"},
	"experience_level":     {"experience level", "seniority", "level", "experience"},
	"salary_min":           {"salary min", "min salary", "salary from", "minimum salary"},
	"salary_max":           {"salary max", "max salary", "salary to", "maximum salary"},
	"salary_currency":      {"salary currency", "currency"},
	"tech_stack":           {"tech stack", "technologies", "stack", "tools", "skills"},
	"visa_sponsorship":     {"visa sponsorship", "visa", "sponsorship"},
	"remote":               {"remote", "remote work", "work from home", "wfh"},
	"company_size":         {"company size", "team size", "employees"},
	"application_deadline": {"application deadline", "deadline", "apply by", "closing date"},
	"logo":                 {"logo", "logo url", "company logo"},
	"application_value":    {"application value", "apply url", "application url", "apply email", "contact", "how to apply"},
	"sponsored":            {"sponsored", "featured", "promoted"},
}

// headerFieldOrder fixes the iteration order over canonical fields so scoring
// ties resolve deterministically.
var headerFieldOrder = []string{
	"title", "company", "location", "description", "requirements",
	"employment_type", "experience_level", "salary_min", "salary_max",
	"salary_currency", "tech_stack", "visa_sponsorship", "remote",
	"company_size", "application_deadline", "logo", "application_value",
	"sponsored",
}

var slugPattern = regexp.MustCompile(`[\s-]+`)

// GenerateMapping fuzzy-matches uploaded column headers to canonical job
// fields. Each canonical field is claimed by at most one header, first
// sufficiently-scoring header wins in header order; headers with no confident
// match map to a normalized slug of themselves.
func GenerateMapping(headers []string) types.HeaderMapping {
	mapping := make(types.HeaderMapping, len(headers))
	claimed := make(map[string]bool, len(headerFieldOrder))

	for _, header := range headers {
		field, score := bestField(header, claimed)
		if score > minMappingScore {
			mapping[header] = field
			claimed[field] = true
			continue
		}
		mapping[header] = Slugify(header)
	}
	return mapping
}

// bestField scores a raw header against every variant of every unclaimed
// canonical field and returns the highest-scoring field.
func bestField(header string, claimed map[string]bool) (string, int) {
	normalized := normalizeHeader(header)

	bestScore := 0
	best := ""
	for _, field := range headerFieldOrder {
		if claimed[field] {
			continue
		}
		for _, variant := range headerVariants[field] {
			if score := matchScore(normalized, variant); score > bestScore {
				bestScore = score
				best = field
			}
		}
	}
	return best, bestScore
}

// matchScore scores a normalized header against one known variant:
// 100 exact, 90 exact after underscore/hyphen replacement, 80 substring
// containment either direction, else proportional word overlap scaled to 70.
func matchScore(header, variant string) int {
	if header == variant {
		return 100
	}

	flattened := strings.ReplaceAll(strings.ReplaceAll(header, "_", " "), "-", " ")
	if flattened == variant {
		return 90
	}

	if strings.Contains(header, variant) || strings.Contains(variant, header) {
		return 80
	}

	headerWords := splitWords(flattened)
	variantWords := splitWords(variant)
	shared := 0
	for _, hw := range headerWords {
		for _, vw := range variantWords {
			if hw == vw {
				shared++
				break
			}
		}
	}
	longest := len(headerWords)
	if len(variantWords) > longest {
		longest = len(variantWords)
	}
	if longest == 0 {
		return 0
	}
	return shared * 70 / longest
}

// normalizeHeader lowercases and collapses whitespace for scoring
func normalizeHeader(header string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(header))), " ")
}

// Slugify converts an arbitrary header into a lowercase underscore slug so
// unmapped columns can still be surfaced for manual mapping.
func Slugify(header string) string {
	slug := strings.ToLower(strings.TrimSpace(header))
	return slugPattern.ReplaceAllString(slug, "_")
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
}
