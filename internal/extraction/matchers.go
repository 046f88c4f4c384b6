// Package extraction applies pattern matchers over segmented resume text and
// structures each section into typed entries. Every matcher is independent and
// best-effort: a miss leaves the field empty, nothing is fabricated.
package extraction

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?1[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)
	yearPattern     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// MatchEmail returns the first email-shaped substring
func MatchEmail(text string) (string, bool) {
	m := emailPattern.FindString(text)
	return m, m != ""
}

// MatchPhone returns the first North-American-style phone number, tolerating
// '.', '-', space separators and an optional leading +1.
func MatchPhone(text string) (string, bool) {
	m := phonePattern.FindString(text)
	return m, m != ""
}

// MatchLinkedIn returns the first linkedin.com/in/ profile reference,
// normalized to a full https:// URL.
func MatchLinkedIn(text string) (string, bool) {
	m := linkedinPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return "https://" + strings.ToLower(m[:len("linkedin.com")]) + m[len("linkedin.com"):], true
}

// MatchName scans the first five non-empty lines for a plausible candidate
// name: no '@', not a phone number, length in [4,50), 2-4 whitespace tokens.
// This is a heuristic and can misfire on noisy headers.
func MatchName(text string) (string, bool) {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > 5 {
			break
		}
		if strings.Contains(line, "@") || phonePattern.MatchString(line) {
			continue
		}
		if len(line) < 4 || len(line) >= 50 {
			continue
		}
		if n := len(strings.Fields(line)); n >= 2 && n <= 4 {
			return line, true
		}
	}
	return "", false
}

// matchYear returns the first 4-digit year in the line
func matchYear(line string) (string, bool) {
	m := yearPattern.FindString(line)
	return m, m != ""
}

// isDurationLine reports whether a line carries an employment duration:
// a 4-digit year or a "present"/"current" marker.
func isDurationLine(line string) bool {
	lower := strings.ToLower(line)
	return yearPattern.MatchString(line) ||
		strings.Contains(lower, "present") || strings.Contains(lower, "current")
}

// isBulletLine reports whether a line is a bulleted or dashed item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-")
}

// stripBullet removes the leading bullet or dash marker from a line
func stripBullet(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	trimmed = strings.TrimPrefix(trimmed, "•")
	trimmed = strings.TrimPrefix(trimmed, "-")
	return strings.TrimSpace(trimmed)
}
