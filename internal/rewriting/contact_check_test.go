package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

func TestMissingContactFields_AllPresent(t *testing.T) {
	personal := types.PersonalInfo{
		Name:  "Jane Doe",
		Email: "jane.doe@example.com",
		Phone: "(555) 123-4567",
	}
	text := "JANE DOE\nJane.Doe@example.com | 555.123.4567\nExperienced engineer."

	missing := missingContactFields(text, personal)

	assert.Empty(t, missing)
}

func TestMissingContactFields_PhoneReformattedAccepted(t *testing.T) {
	personal := types.PersonalInfo{Phone: "(555) 123-4567"}
	text := "Reach me at +1 5551234567 any time."

	missing := missingContactFields(text, personal)

	assert.Empty(t, missing)
}

func TestMissingContactFields_DroppedEmail(t *testing.T) {
	personal := types.PersonalInfo{
		Name:  "Jane Doe",
		Email: "jane.doe@example.com",
	}
	text := "Jane Doe\nSeasoned engineer with a decade of experience."

	missing := missingContactFields(text, personal)

	assert.Equal(t, []string{"email"}, missing)
}

func TestMissingContactFields_EmptyProfileNeverMissing(t *testing.T) {
	missing := missingContactFields("anything", types.PersonalInfo{})

	assert.Empty(t, missing)
}
