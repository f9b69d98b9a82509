// Package corpus evaluates the anonymization pipeline against labeled
// datasets in CSV, JSON-lines or Parquet form.
package corpus

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/parquet-go"
	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/anonymizer"
	"github.com/trustmask/trustmask/internal/entity"
)

// Evaluator runs the pipeline over a labeled corpus and tallies
// per-category hit, miss and false alarm counts.
type Evaluator struct {
	pipeline *anonymizer.Anonymizer
	config   *Config
	logger   *zap.Logger
}

// NewEvaluator creates a new corpus evaluator
func NewEvaluator(pipeline *anonymizer.Anonymizer, config *Config, logger *zap.Logger) *Evaluator {
	if config.BatchSize <= 0 {
		config.BatchSize = 1000
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}
	if config.ProgressReport <= 0 {
		config.ProgressReport = 1000
	}
	if config.MinConfidence == 0 {
		// Unset in the config file; let the pipeline apply its default.
		config.MinConfidence = -1
	}
	return &Evaluator{
		pipeline: pipeline,
		config:   config,
		logger:   logger,
	}
}

// EvaluateFile evaluates a corpus file (CSV, Parquet, or JSON lines)
func (e *Evaluator) EvaluateFile(ctx context.Context, filePath string) (*EvaluationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	e.logger.Info("Starting corpus evaluation",
		zap.String("file", filePath),
		zap.Int("batch_size", e.config.BatchSize),
		zap.Int("workers", e.config.WorkerCount))

	start := time.Now()
	result := &EvaluationResult{PerType: make(map[entity.Type]*TypeOutcome)}

	format := DetectFileFormat(filePath)
	e.logger.Info("Detected file format", zap.String("format", string(format)))

	var err error
	switch format {
	case FormatCSV:
		err = e.evaluateCSV(ctx, filePath, result)
	case FormatParquet:
		err = e.evaluateParquet(ctx, filePath, result)
	case FormatJSON:
		err = e.evaluateJSON(ctx, filePath, result)
	default:
		return result, fmt.Errorf("unsupported file format: %s", format)
	}
	if err != nil {
		return result, fmt.Errorf("%s evaluation failed: %w", format, err)
	}

	result.Duration = time.Since(start)

	e.logger.Info("Corpus evaluation completed",
		zap.Int64("total_records", result.TotalRecords),
		zap.Int64("exact_matches", result.ExactMatches),
		zap.Int64("failed_records", result.FailedRecords),
		zap.Float64("accuracy", result.Accuracy()),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// evaluateCSV evaluates CSV files with a text,expected_types header
func (e *Evaluator) evaluateCSV(ctx context.Context, filePath string, result *EvaluationResult) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	e.logger.Info("CSV header detected", zap.Strings("columns", header))

	return e.evaluateBatches(ctx, func() ([]*Record, error) {
		var batch []*Record
		for len(batch) < e.config.BatchSize {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				e.logger.Warn("Failed to read CSV record", zap.Error(err))
				result.FailedRecords++
				continue
			}
			if len(row) != 2 {
				e.logger.Warn("Invalid CSV record length", zap.Int("length", len(row)))
				result.FailedRecords++
				continue
			}

			record := &Record{
				Text:          strings.TrimSpace(row[0]),
				ExpectedTypes: strings.TrimSpace(row[1]),
			}
			if e.validateRecord(record) {
				batch = append(batch, record)
			} else {
				result.FailedRecords++
			}
		}
		return batch, nil
	}, result)
}

// evaluateParquet evaluates Parquet files
func (e *Evaluator) evaluateParquet(ctx context.Context, filePath string, result *EvaluationResult) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open Parquet file: %w", err)
	}
	defer file.Close()

	reader := parquet.NewReader(file)
	defer reader.Close()

	return e.evaluateBatches(ctx, func() ([]*Record, error) {
		var batch []*Record
		for len(batch) < e.config.BatchSize {
			var record Record
			err := reader.Read(&record)
			if err == io.EOF {
				break
			}
			if err != nil {
				e.logger.Warn("Failed to read Parquet record", zap.Error(err))
				result.FailedRecords++
				continue
			}
			if e.validateRecord(&record) {
				batch = append(batch, &record)
			} else {
				result.FailedRecords++
			}
		}
		return batch, nil
	}, result)
}

// evaluateJSON evaluates JSON files (one JSON object per line)
func (e *Evaluator) evaluateJSON(ctx context.Context, filePath string, result *EvaluationResult) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open JSON file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	return e.evaluateBatches(ctx, func() ([]*Record, error) {
		var batch []*Record
		for len(batch) < e.config.BatchSize {
			var record Record
			err := decoder.Decode(&record)
			if err == io.EOF {
				break
			}
			if err != nil {
				e.logger.Warn("Failed to read JSON record", zap.Error(err))
				result.FailedRecords++
				continue
			}
			if e.validateRecord(&record) {
				batch = append(batch, &record)
			} else {
				result.FailedRecords++
			}
		}
		return batch, nil
	}, result)
}

// evaluateBatches drains the reader and evaluates each batch
func (e *Evaluator) evaluateBatches(ctx context.Context, readBatch func() ([]*Record, error), result *EvaluationResult) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch, err := readBatch()
		if err != nil {
			return fmt.Errorf("failed to read batch: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		e.evaluateBatch(batch, result)
		result.TotalRecords += int64(len(batch))

		if result.TotalRecords%int64(e.config.ProgressReport) == 0 {
			e.logger.Info("Evaluation progress",
				zap.Int64("records_processed", result.TotalRecords),
				zap.Int64("exact_matches", result.ExactMatches))
		}
	}
	return nil
}

// evaluateBatch fans a batch out to the worker pool and merges outcomes
func (e *Evaluator) evaluateBatch(batch []*Record, result *EvaluationResult) {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		records = make(chan *Record)
	)

	for i := 0; i < e.config.WorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range records {
				exact, outcomes := e.evaluateRecord(record)

				mu.Lock()
				if exact {
					result.ExactMatches++
				}
				for t, o := range outcomes {
					merged := result.PerType[t]
					if merged == nil {
						merged = &TypeOutcome{}
						result.PerType[t] = merged
					}
					merged.Expected += o.Expected
					merged.Hits += o.Hits
					merged.Misses += o.Misses
					merged.FalseAlarms += o.FalseAlarms
				}
				mu.Unlock()
			}
		}()
	}

	for _, record := range batch {
		records <- record
	}
	close(records)
	wg.Wait()
}

// evaluateRecord compares detected categories against the labels
func (e *Evaluator) evaluateRecord(record *Record) (bool, map[entity.Type]*TypeOutcome) {
	detected := e.pipeline.Anonymize(record.Text, e.config.MinConfidence)

	detectedSet := make(map[entity.Type]bool, len(detected.DetectedDataTypes))
	for _, t := range detected.DetectedDataTypes {
		detectedSet[t] = true
	}
	expectedSet := make(map[entity.Type]bool)
	for _, t := range record.Expected() {
		expectedSet[t] = true
	}

	outcomes := make(map[entity.Type]*TypeOutcome)
	outcome := func(t entity.Type) *TypeOutcome {
		if o, ok := outcomes[t]; ok {
			return o
		}
		o := &TypeOutcome{}
		outcomes[t] = o
		return o
	}

	exact := true
	for t := range expectedSet {
		o := outcome(t)
		o.Expected++
		if detectedSet[t] {
			o.Hits++
		} else {
			o.Misses++
			exact = false
		}
	}
	for t := range detectedSet {
		if !expectedSet[t] {
			outcome(t).FalseAlarms++
			exact = false
		}
	}

	return exact, outcomes
}

// validateRecord validates a corpus record
func (e *Evaluator) validateRecord(record *Record) bool {
	if !e.config.ValidateData {
		return true
	}
	if strings.TrimSpace(record.Text) == "" {
		e.logger.Debug("Invalid record: empty text")
		return false
	}
	if len(record.Text) > 10000 {
		e.logger.Debug("Invalid record: text too long", zap.Int("length", len(record.Text)))
		return false
	}
	return true
}
