package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchEmail(t *testing.T) {
	email, ok := MatchEmail("Reach me at jane.doe+jobs@example.co.uk or by phone.")
	assert.True(t, ok)
	assert.Equal(t, "jane.doe+jobs@example.co.uk", email)

	_, ok = MatchEmail("no address here")
	assert.False(t, ok)
}

func TestMatchPhone_Separators(t *testing.T) {
	tests := []string{
		"555-123-4567",
		"555.123.4567",
		"(555) 123-4567",
		"+1 555 123 4567",
	}
	for _, in := range tests {
		got, ok := MatchPhone("call " + in + " today")
		assert.True(t, ok, in)
		assert.Equal(t, in, got, in)
	}
}

func TestMatchLinkedIn_NormalizesToURL(t *testing.T) {
	url, ok := MatchLinkedIn("Profile: LinkedIn.com/in/jane-doe_42")
	assert.True(t, ok)
	assert.Equal(t, "https://linkedin.com/in/jane-doe_42", url)
}

func TestMatchName_FirstPlausibleLine(t *testing.T) {
	name, ok := MatchName("jane@example.com\n555-123-4567\nJane Elizabeth Doe\nSenior Engineer")
	assert.True(t, ok)
	assert.Equal(t, "Jane Elizabeth Doe", name)
}

func TestMatchName_OnlyFirstFiveLines(t *testing.T) {
	text := "a@b.co\na@b.co\na@b.co\na@b.co\na@b.co\nJane Doe"
	_, ok := MatchName(text)
	assert.False(t, ok)
}

func TestMatchName_RejectsTooShortAndTooLong(t *testing.T) {
	_, ok := MatchName("J D")
	assert.False(t, ok)

	long := "This Line Is Far Too Long To Plausibly Be A Candidate Name At All"
	_, ok = MatchName(long)
	assert.False(t, ok)
}
