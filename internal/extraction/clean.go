package extraction

import (
	"regexp"
	"strings"
)

var (
	spaceRun    = regexp.MustCompile(`\s+`)
	blankRun    = regexp.MustCompile(`\n\n\n+`)
	bulletStart = regexp.MustCompile(`^[\s]*[•·*]\s*`)
)

// CleanText normalizes decoded resume text while preserving line structure:
// line endings become LF, bullet markers are unified to "•", in-line space
// runs collapse to single spaces and excessive blank lines are reduced.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes one line. Bullet markers are preserved so the
// experience and certification parsers can rely on them.
func cleanLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}
	if bulletStart.MatchString(line) {
		body := bulletStart.ReplaceAllString(line, "")
		return "• " + spaceRun.ReplaceAllString(strings.TrimSpace(body), " ")
	}
	return spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
}
