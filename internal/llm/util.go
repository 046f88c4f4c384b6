// Package llm - util.go provides shared helpers for model response cleanup.
package llm

import "strings"

// CleanJSONBlock recovers the JSON payload from a model response. Models wrap
// output in markdown code fences, lead with conversational preamble, or
// append trailing chatter even when told not to; the first complete JSON
// object or array in the text wins. Input without any JSON is returned
// unchanged so the caller's schema validation produces the error.
func CleanJSONBlock(text string) string {
	text = stripCodeFence(strings.TrimSpace(text))

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}

	var payload string
	if text[start] == '{' {
		payload = extractJSONObject(text[start:])
	} else {
		payload = extractJSONArray(text[start:])
	}
	if payload == "" {
		return text
	}
	return payload
}

// stripCodeFence removes a surrounding ``` block, including an optional
// language identifier on the opening line.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine != "" && len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// extractJSONObject returns the balanced object at the start of text, or ""
// if text does not begin with one.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced array at the start of text, or "" if
// text does not begin with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

// extractBalanced scans for the matching close delimiter, ignoring
// delimiters inside JSON strings and escaped quotes.
func extractBalanced(text string, open, close byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
