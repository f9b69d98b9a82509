// Package anonymizer runs the detector family over a text, resolves
// overlapping hits and rewrites the text with category placeholders.
package anonymizer

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/detect"
	"github.com/trustmask/trustmask/internal/entity"
)

// DefaultMinConfidence filters hits when the caller does not set a
// threshold.
const DefaultMinConfidence = 0.5

// Anonymizer is the detection and masking pipeline. Detectors run
// concurrently per call; the instance itself is safe for concurrent use.
type Anonymizer struct {
	detectors     []detect.Detector
	minConfidence float64
	logger        *zap.Logger
}

// New creates a pipeline over the given detectors. minConfidence is the
// default threshold for calls that do not set one.
func New(detectors []detect.Detector, minConfidence float64, logger *zap.Logger) *Anonymizer {
	if minConfidence <= 0 || minConfidence > 1 {
		minConfidence = DefaultMinConfidence
	}
	logger.Info("anonymizer initialized",
		zap.Int("detectors", len(detectors)),
		zap.Float64("min_confidence", minConfidence))
	return &Anonymizer{
		detectors:     detectors,
		minConfidence: minConfidence,
		logger:        logger,
	}
}

// Detectors returns the names of the configured detectors.
func (a *Anonymizer) Detectors() []string {
	names := make([]string, 0, len(a.detectors))
	for _, d := range a.detectors {
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names
}

// Anonymize scans text and returns the masked result. minConfidence
// overrides the pipeline default when in [0, 1]; an explicit 0 keeps
// every hit, while out-of-range values (a negative sentinel included)
// fall back to the default. Whitespace-only input short-circuits.
func (a *Anonymizer) Anonymize(text string, minConfidence float64) entity.Result {
	if strings.TrimSpace(text) == "" {
		return entity.Result{
			DetectedDataTypes: []entity.Type{},
			SanitizedText:     text,
		}
	}
	threshold := a.clamp(minConfidence)

	resolved := Resolve(a.collect(text, threshold))
	sanitized := Rewrite(text, resolved)

	seen := make(map[entity.Type]bool, len(resolved))
	types := make([]entity.Type, 0, len(resolved))
	for _, e := range resolved {
		if !seen[e.Type] {
			seen[e.Type] = true
			types = append(types, e.Type)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return entity.Result{
		IsPersonalDataDetected: len(resolved) > 0,
		DetectedDataTypes:      types,
		SanitizedText:          sanitized,
		Entities:               resolved,
	}
}

// Statistics reports detection counts and masking impact for a text.
type Statistics struct {
	TotalEntities   int                 `json:"total_entities"`
	ByType          map[entity.Type]int `json:"by_type"`
	OriginalLength  int                 `json:"original_length"`
	SanitizedLength int                 `json:"sanitized_length"`
	// ReductionRatio is the fraction of original bytes removed by
	// masking. Negative when placeholders outgrow the masked values.
	ReductionRatio float64 `json:"reduction_ratio"`
}

// Stats runs the pipeline and summarizes what it found.
func (a *Anonymizer) Stats(text string, minConfidence float64) Statistics {
	result := a.Anonymize(text, minConfidence)

	byType := make(map[entity.Type]int, len(result.DetectedDataTypes))
	for _, e := range result.Entities {
		byType[e.Type]++
	}

	stats := Statistics{
		TotalEntities:   len(result.Entities),
		ByType:          byType,
		OriginalLength:  len(text),
		SanitizedLength: len(result.SanitizedText),
	}
	if stats.OriginalLength > 0 {
		stats.ReductionRatio = float64(stats.OriginalLength-stats.SanitizedLength) / float64(stats.OriginalLength)
	}
	return stats
}

// collect fans the text out to every detector and merges hits at or
// above the threshold. A panicking detector contributes nothing.
func (a *Anonymizer) collect(text string, threshold float64) []entity.Detected {
	var (
		mu  sync.Mutex
		all []entity.Detected
		wg  sync.WaitGroup
	)
	for _, d := range a.detectors {
		wg.Add(1)
		go func(d detect.Detector) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.logger.Error("detector panicked",
						zap.String("detector", d.Name()),
						zap.Any("panic", r))
				}
			}()
			found := d.Detect(text)
			kept := found[:0]
			for _, e := range found {
				if e.Confidence >= threshold {
					kept = append(kept, e)
				}
			}
			mu.Lock()
			all = append(all, kept...)
			mu.Unlock()
		}(d)
	}
	wg.Wait()
	return all
}

func (a *Anonymizer) clamp(minConfidence float64) float64 {
	if minConfidence < 0 || minConfidence > 1 {
		return a.minConfidence
	}
	return minConfidence
}
