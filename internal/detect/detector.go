// Package detect implements the rule-based personal data detectors for
// Turkish text. Each detector scans independently and reports spans as
// byte offsets; overlap between detectors is resolved by the pipeline.
package detect

import (
	"sort"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
)

// Detector finds personal data spans in text. Implementations must be
// safe for concurrent use and must tolerate empty input.
type Detector interface {
	Name() string
	Detect(text string) []entity.Detected
}

// dedupe removes overlapping hits from a single detector's output,
// keeping the earliest, then most confident, then longest span.
func dedupe(entities []entity.Detected) []entity.Detected {
	if len(entities) == 0 {
		return entities
	}

	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return a.Length() > b.Length()
	})

	result := make([]entity.Detected, 0, len(entities))
	for _, e := range entities {
		overlaps := false
		for _, kept := range result {
			if e.Overlaps(kept) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			result = append(result, e)
		}
	}
	return result
}

// digitsOf strips every non-digit byte from s.
func digitsOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// contextWindow returns the lowercased slice of text around [start, end),
// extended by before and after bytes, clamped to the text bounds.
func contextWindow(text string, start, end, before, after int) string {
	lo := start - before
	if lo < 0 {
		lo = 0
	}
	hi := end + after
	if hi > len(text) {
		hi = len(text)
	}
	return strings.ToLower(text[lo:hi])
}
