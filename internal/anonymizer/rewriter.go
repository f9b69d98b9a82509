package anonymizer

import (
	"sort"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
)

// Rewrite replaces each resolved span with its category placeholder.
// Splicing runs from the highest start down so earlier offsets stay
// valid while the text shrinks and grows. The input set must be
// non-overlapping; an empty set returns the text unchanged.
func Rewrite(text string, entities []entity.Detected) string {
	if len(entities) == 0 {
		return text
	}

	ordered := make([]entity.Detected, len(entities))
	copy(ordered, entities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	var b strings.Builder
	for _, e := range ordered {
		if e.Start < 0 || e.End > len(text) || e.Start >= e.End {
			continue
		}
		b.Reset()
		b.Grow(len(text) - e.Length() + len(entity.Placeholder(e.Type)))
		b.WriteString(text[:e.Start])
		b.WriteString(entity.Placeholder(e.Type))
		b.WriteString(text[e.End:])
		text = b.String()
	}
	return text
}
