package anonymizer

import (
	"sort"

	"github.com/trustmask/trustmask/internal/entity"
)

// Resolve reduces the combined detector output to a non-overlapping set
// of spans. Candidates are ranked by position, then span length, then
// confidence, then category priority; a greedy sweep keeps every
// candidate that does not overlap an already kept one. Spans with
// Start >= End or negative offsets are dropped.
func Resolve(entities []entity.Detected) []entity.Detected {
	candidates := make([]entity.Detected, 0, len(entities))
	for _, e := range entities {
		if e.Start < 0 || e.Start >= e.End {
			continue
		}
		candidates = append(candidates, e)
	}
	if len(candidates) == 0 {
		return candidates
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Length() != b.Length() {
			return a.Length() > b.Length()
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return entity.Priority(a.Type) < entity.Priority(b.Type)
	})

	result := make([]entity.Detected, 0, len(candidates))
	for _, e := range candidates {
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
