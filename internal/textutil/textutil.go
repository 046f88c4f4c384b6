// Package textutil provides shared string normalization helpers used by the
// resume extraction and bulk-upload ingestion pipelines.
package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	wsRun      = regexp.MustCompile(`\s+`)
	nonNumeric = regexp.MustCompile(`[^0-9.]`)
)

// NormalizeWhitespace collapses whitespace runs to single spaces and trims
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// TitleCase capitalizes the first letter of each whitespace-separated word.
// Words that already contain an uppercase letter are left alone so acronyms
// and mixed-case names (iOS, McKinsey) survive.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == strings.ToLower(w) {
			r := []rune(w)
			r[0] = unicode.ToUpper(r[0])
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}

// IsAllLower reports whether the string contains letters and none of them are uppercase
func IsAllLower(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// SplitList splits a delimited cell or line into trimmed, non-empty fragments.
// Recognized delimiters: comma, semicolon, bullet characters, pipe, tab and newline.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f := func(r rune) bool {
		switch r {
		case ',', ';', '•', '·', '|', '\t', '\n':
			return true
		}
		return false
	}
	parts := strings.FieldsFunc(s, f)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Dedupe removes duplicate strings case-insensitively, keeping the first
// occurrence and preserving order.
func Dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// ParseBool coerces loose spreadsheet truthiness ("yes", "y", "1", "true")
// into a bool. Anything unrecognized is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

// ParseAmount coerces a currency-ish cell ("$90,000", "90000.00", "90k") into
// an integer amount. Returns 0 and false when nothing numeric remains.
func ParseAmount(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	multiplier := 1
	if strings.HasSuffix(s, "k") {
		multiplier = 1000
		s = strings.TrimSuffix(s, "k")
	}
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return int(f) * multiplier, true
}

// Truncate shortens s to at most max runes, cutting at the last word boundary
// within the limit when one exists and appending "..." to signal the cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := string(runes[:max-3])
	if idx := strings.LastIndexAny(cut, " \t"); idx > max/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " \t") + "..."
}

// TruncateAtSentence shortens s to at most max runes, preferring the last
// sentence boundary within the limit, then the last word boundary, then a
// hard cut with "...".
func TruncateAtSentence(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	window := string(runes[:max])
	if idx := strings.LastIndexAny(window, ".!?"); idx >= 0 {
		return strings.TrimSpace(window[:idx+1])
	}
	return Truncate(s, max)
}
