package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/anonymizer"
	"github.com/trustmask/trustmask/internal/detect"
)

var version = "0.1.0"

func main() {
	var (
		text          = flag.String("text", "", "Text to anonymize")
		file          = flag.String("file", "", "Read input text from a file")
		stdin         = flag.Bool("stdin", false, "Read input text from standard input")
		interactive   = flag.Bool("interactive", false, "Interactive mode: anonymize one line at a time")
		format        = flag.String("format", "text", "Output format: text, json, or detailed")
		minConfidence = flag.Float64("min-confidence", anonymizer.DefaultMinConfidence, "Minimum detection confidence [0, 1]")
		strict        = flag.Bool("strict", false, "Drop identity number candidates that fail checksum validation")
		noNames       = flag.Bool("no-names", false, "Disable the dictionary name detector")
		output        = flag.String("output", "", "Write output to a file instead of stdout")
		showVersion   = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("trustmask %s\n", version)
		os.Exit(0)
	}

	pipeline, err := buildPipeline(*strict, *noNames, *minConfidence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if *interactive {
		runInteractive(pipeline, *format, *minConfidence, out)
		return
	}

	input, err := readInput(*text, *file, *stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := render(out, pipeline, input, *format, *minConfidence); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildPipeline assembles the rule detectors for CLI use
func buildPipeline(strict, noNames bool, minConfidence float64) (*anonymizer.Anonymizer, error) {
	names := detect.Names()
	if noNames {
		kept := names[:0]
		for _, n := range names {
			if n != "name" {
				kept = append(kept, n)
			}
		}
		names = kept
	}

	detectors, err := detect.FromNames(names, strict)
	if err != nil {
		return nil, err
	}
	return anonymizer.New(detectors, minConfidence, zap.NewNop()), nil
}

// readInput resolves the input text from the chosen source
func readInput(text, file string, stdin bool) (string, error) {
	switch {
	case text != "":
		return text, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	case stdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("no input: use -text, -file, -stdin or -interactive")
	}
}

// runInteractive anonymizes one line per prompt until EOF or "exit"
func runInteractive(pipeline *anonymizer.Anonymizer, format string, minConfidence float64, out *os.File) {
	fmt.Println("TrustMask interactive mode. Type a text to anonymize, or \"exit\" to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "exit" || line == "quit" {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := render(out, pipeline, line, format, minConfidence); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

// render writes one anonymization result in the requested format
func render(out *os.File, pipeline *anonymizer.Anonymizer, text, format string, minConfidence float64) error {
	result := pipeline.Anonymize(text, minConfidence)

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)

	case "detailed":
		separator := strings.Repeat("=", 60)
		fmt.Fprintln(out, separator)
		fmt.Fprintln(out, "ANONYMIZATION REPORT")
		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "Personal data detected: %t\n", result.IsPersonalDataDetected)
		categories := "-"
		if len(result.DetectedDataTypes) > 0 {
			types := make([]string, 0, len(result.DetectedDataTypes))
			for _, t := range result.DetectedDataTypes {
				types = append(types, string(t))
			}
			categories = strings.Join(types, ", ")
		}
		fmt.Fprintf(out, "Detected categories:    %s\n", categories)
		fmt.Fprintln(out, separator)
		fmt.Fprintln(out, "Original text:")
		fmt.Fprintln(out, text)
		fmt.Fprintln(out, separator)
		fmt.Fprintln(out, "Anonymized text:")
		fmt.Fprintln(out, result.SanitizedText)
		fmt.Fprintln(out, separator)
		if len(result.Entities) > 0 {
			fmt.Fprintln(out, "Detected entities:")
			for _, e := range result.Entities {
				fmt.Fprintf(out, "  - %s: '%s' (confidence: %.2f)\n",
					e.Type, e.Value, e.Confidence)
			}
			fmt.Fprintln(out, separator)
		}
		return nil

	case "text":
		fmt.Fprintln(out, result.SanitizedText)
		return nil

	default:
		return fmt.Errorf("unknown format: %s (use text, json, or detailed)", format)
	}
}
