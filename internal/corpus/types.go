package corpus

import (
	"strings"
	"time"

	"github.com/trustmask/trustmask/internal/entity"
)

// Record represents a single labeled example from the evaluation
// corpus. ExpectedTypes lists the categories the text is known to
// contain, pipe-separated (e.g. "TC_ID|MOBILE_PHONE").
type Record struct {
	Text          string `csv:"text" parquet:"text" json:"text"`
	ExpectedTypes string `csv:"expected_types" parquet:"expected_types" json:"expected_types"`
}

// Expected parses the label column into category values.
func (r *Record) Expected() []entity.Type {
	if strings.TrimSpace(r.ExpectedTypes) == "" {
		return nil
	}
	parts := strings.Split(r.ExpectedTypes, "|")
	types := make([]entity.Type, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			types = append(types, entity.Type(p))
		}
	}
	return types
}

// TypeOutcome counts detection outcomes for one category.
type TypeOutcome struct {
	Expected    int64 `json:"expected"`
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	FalseAlarms int64 `json:"false_alarms"`
}

// Recall is the fraction of expected occurrences that were detected.
func (o *TypeOutcome) Recall() float64 {
	if o.Expected == 0 {
		return 0
	}
	return float64(o.Hits) / float64(o.Expected)
}

// Precision is the fraction of detections that were expected.
func (o *TypeOutcome) Precision() float64 {
	total := o.Hits + o.FalseAlarms
	if total == 0 {
		return 0
	}
	return float64(o.Hits) / float64(total)
}

// EvaluationResult represents the result of evaluating a corpus file
type EvaluationResult struct {
	TotalRecords  int64                        `json:"total_records"`
	ExactMatches  int64                        `json:"exact_matches"`
	FailedRecords int64                        `json:"failed_records"`
	Duration      time.Duration                `json:"duration"`
	PerType       map[entity.Type]*TypeOutcome `json:"per_type"`
	Errors        []string                     `json:"errors,omitempty"`
}

// Accuracy is the fraction of records whose detected category set
// matched the expected set exactly.
func (r *EvaluationResult) Accuracy() float64 {
	if r.TotalRecords == 0 {
		return 0
	}
	return float64(r.ExactMatches) / float64(r.TotalRecords)
}

// Config contains evaluation pipeline configuration
type Config struct {
	BatchSize      int     `yaml:"batch_size" mapstructure:"batch_size"`           // 1000
	WorkerCount    int     `yaml:"worker_count" mapstructure:"worker_count"`       // 4
	ValidateData   bool    `yaml:"validate_data" mapstructure:"validate_data"`     // true
	ProgressReport int     `yaml:"progress_report" mapstructure:"progress_report"` // 1000
	MinConfidence  float64 `yaml:"min_confidence" mapstructure:"min_confidence"`   // 0.5
}

// FileFormat represents supported file formats
type FileFormat string

const (
	FormatCSV     FileFormat = "csv"
	FormatParquet FileFormat = "parquet"
	FormatJSON    FileFormat = "json"
)

// DetectFileFormat detects file format from extension
func DetectFileFormat(filename string) FileFormat {
	switch {
	case strings.HasSuffix(filename, ".parquet"):
		return FormatParquet
	case strings.HasSuffix(filename, ".json") || strings.HasSuffix(filename, ".jsonl"):
		return FormatJSON
	default:
		return FormatCSV
	}
}
