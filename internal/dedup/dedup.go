// Package dedup detects duplicate job rows within one upload by canonical
// key grouping plus a similarity pass for near-matches.
package dedup

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

// similarityThreshold groups two distinct keys as near-duplicates
const similarityThreshold = 0.9

var nonWord = regexp.MustCompile(`[^\w\s]`)
var spaceRun = regexp.MustCompile(`\s+`)

// Detector groups duplicate rows. The default similarity measure is
// character-set Jaccard over the whole canonical key, matching the legacy
// importer; it can over-group short keys by chance character overlap, so a
// token-level mode is available as the stricter alternative.
type Detector struct {
	// TokenSimilarity switches the near-match comparison from character sets
	// to token sets.
	TokenSimilarity bool
}

// CanonicalKey builds the duplicate-detection key for one row: each of
// title, company and location lowercased, stripped of punctuation, whitespace
// collapsed, joined with "|".
func CanonicalKey(job types.ParsedJobData) string {
	parts := []string{job.Title, job.Company, job.Location}
	for i, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		p = nonWord.ReplaceAllString(p, "")
		parts[i] = spaceRun.ReplaceAllString(p, " ")
	}
	return strings.Join(parts, "|")
}

// Detect groups row indices by canonical key. Exact key collisions group
// directly; a row with a new key is additionally compared against every
// previously-seen distinct key and joins the first one above the similarity
// threshold. Keys with a single member are omitted from the result.
//
// The scan over prior keys is O(n*m); fine under the 1000-row upload cap.
func (d *Detector) Detect(jobs []types.ParsedJobData) map[string][]int {
	groups := make(map[string][]int)
	var seen []string

	for i, job := range jobs {
		key := CanonicalKey(job)

		if _, exists := groups[key]; exists {
			groups[key] = append(groups[key], i)
			continue
		}

		if prior := d.findSimilar(key, seen); prior != "" {
			groups[prior] = append(groups[prior], i)
			continue
		}

		groups[key] = []int{i}
		seen = append(seen, key)
	}

	for key, members := range groups {
		if len(members) < 2 {
			delete(groups, key)
		}
	}
	return groups
}

func (d *Detector) findSimilar(key string, seen []string) string {
	for _, prior := range seen {
		var sim float64
		if d.TokenSimilarity {
			sim = jaccardTokens(key, prior)
		} else {
			sim = jaccardChars(key, prior)
		}
		if sim > similarityThreshold {
			return prior
		}
	}
	return ""
}

// jaccardChars computes Jaccard similarity over the character sets of two keys
func jaccardChars(a, b string) float64 {
	setA := make(map[rune]bool)
	for _, r := range a {
		setA[r] = true
	}
	setB := make(map[rune]bool)
	for _, r := range b {
		setB[r] = true
	}
	return jaccard(len(setA), len(setB), func() int {
		n := 0
		for r := range setA {
			if setB[r] {
				n++
			}
		}
		return n
	}())
}

// jaccardTokens computes Jaccard similarity over whitespace/pipe-delimited tokens
func jaccardTokens(a, b string) float64 {
	split := func(s string) map[string]bool {
		set := make(map[string]bool)
		for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
			return r == ' ' || r == '|'
		}) {
			set[tok] = true
		}
		return set
	}
	setA, setB := split(a), split(b)
	inter := 0
	for tok := range setA {
		if setB[tok] {
			inter++
		}
	}
	return jaccard(len(setA), len(setB), inter)
}

func jaccard(sizeA, sizeB, intersection int) float64 {
	union := sizeA + sizeB - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
