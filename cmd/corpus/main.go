package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/anonymizer"
	"github.com/trustmask/trustmask/internal/config"
	"github.com/trustmask/trustmask/internal/corpus"
	"github.com/trustmask/trustmask/internal/detect"
	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/logger"
)

func main() {
	var (
		configPath = flag.String("config", "", "Configuration file path")
		inputFile  = flag.String("input", "", "Labeled corpus file (CSV, Parquet, or JSON lines)")
		batchSize  = flag.Int("batch-size", 1000, "Batch size for processing")
		workers    = flag.Int("workers", 4, "Number of worker goroutines")
	)
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input corpus.csv --batch-size 500\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input corpus.parquet --workers 8\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting corpus evaluation",
		zap.String("file", *inputFile),
		zap.Strings("detectors", cfg.Detection.Detectors))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, cancelling evaluation...")
		cancel()
	}()

	if _, err := os.Stat(*inputFile); os.IsNotExist(err) {
		log.Fatal("Input file does not exist", zap.String("file", *inputFile))
	}

	detectors, err := detect.FromNames(cfg.Detection.Detectors, cfg.Detection.Strict)
	if err != nil {
		log.Fatal("Failed to build detectors", zap.Error(err))
	}
	pipeline := anonymizer.New(detectors, cfg.Detection.MinConfidence, log.WithComponent("anonymizer").Logger)

	evaluator := corpus.NewEvaluator(pipeline, &corpus.Config{
		BatchSize:      *batchSize,
		WorkerCount:    *workers,
		ValidateData:   true,
		ProgressReport: 1000,
		MinConfidence:  cfg.Detection.MinConfidence,
	}, log.Logger)

	result, err := evaluator.EvaluateFile(ctx, *inputFile)
	if err != nil {
		log.Fatal("Corpus evaluation failed", zap.Error(err))
	}

	printReport(result)
}

// printReport renders the evaluation summary and per-category table
func printReport(result *corpus.EvaluationResult) {
	fmt.Printf("\n=== TrustMask Corpus Evaluation ===\n")
	fmt.Printf("Total Records:   %d\n", result.TotalRecords)
	fmt.Printf("Exact Matches:   %d (%.1f%%)\n", result.ExactMatches, result.Accuracy()*100)
	fmt.Printf("Failed Records:  %d\n", result.FailedRecords)
	fmt.Printf("Duration:        %v\n", result.Duration)

	if len(result.PerType) > 0 {
		types := make([]string, 0, len(result.PerType))
		for t := range result.PerType {
			types = append(types, string(t))
		}
		sort.Strings(types)

		fmt.Printf("\n%-18s %10s %8s %8s %12s %10s %10s\n",
			"CATEGORY", "EXPECTED", "HITS", "MISSES", "FALSE ALARMS", "PRECISION", "RECALL")
		for _, t := range types {
			o := result.PerType[entity.Type(t)]
			fmt.Printf("%-18s %10d %8d %8d %12d %9.1f%% %9.1f%%\n",
				t, o.Expected, o.Hits, o.Misses, o.FalseAlarms,
				o.Precision()*100, o.Recall()*100)
		}
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\nErrors:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}
