package rewriting

import (
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// missingContactFields reports which of the candidate's contact details are
// absent from the rewritten text. Email must appear verbatim
// (case-insensitive). Phone numbers are compared digit-by-digit so the model
// may reformat separators without triggering a rejection.
func missingContactFields(text string, personal types.PersonalInfo) []string {
	var missing []string
	lowerText := strings.ToLower(text)

	if personal.Email != "" && !strings.Contains(lowerText, strings.ToLower(personal.Email)) {
		missing = append(missing, "email")
	}

	if personal.Phone != "" {
		digits := digitsOnly(personal.Phone)
		if digits != "" && !strings.Contains(digitsOnly(text), digits) {
			missing = append(missing, "phone")
		}
	}

	if personal.Name != "" && !strings.Contains(lowerText, strings.ToLower(personal.Name)) {
		missing = append(missing, "name")
	}

	return missing
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
