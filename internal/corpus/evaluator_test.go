package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/anonymizer"
	"github.com/trustmask/trustmask/internal/detect"
	"github.com/trustmask/trustmask/internal/entity"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	pipeline := anonymizer.New(detect.All(false), 0.5, zap.NewNop())
	return NewEvaluator(pipeline, &Config{
		BatchSize:     10,
		WorkerCount:   2,
		ValidateData:  true,
		MinConfidence: 0.5,
	}, zap.NewNop())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestEvaluateCSV(t *testing.T) {
	path := writeFile(t, "corpus.csv",
		"text,expected_types\n"+
			"TC kimlik numaram 10000000146,TC_ID\n"+
			"\"Telefon: 0532 123 45 67\",MOBILE_PHONE\n"+
			"Faturanızı uygulamadan görüntüleyebilirsiniz.,\n")

	result, err := newTestEvaluator(t).EvaluateFile(context.Background(), path)
	if err != nil {
		t.Fatalf("EvaluateFile() error: %v", err)
	}

	if result.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", result.TotalRecords)
	}
	if result.ExactMatches != 3 {
		t.Errorf("ExactMatches = %d, want 3 (per type: %+v)", result.ExactMatches, result.PerType)
	}

	tc := result.PerType[entity.TypeTCID]
	if tc == nil || tc.Hits != 1 || tc.Misses != 0 {
		t.Errorf("TC_ID outcome = %+v, want 1 hit", tc)
	}
	phone := result.PerType[entity.TypeMobilePhone]
	if phone == nil || phone.Hits != 1 {
		t.Errorf("MOBILE_PHONE outcome = %+v, want 1 hit", phone)
	}
	if result.Accuracy() != 1.0 {
		t.Errorf("Accuracy() = %v, want 1.0", result.Accuracy())
	}
}

func TestEvaluateJSONLines(t *testing.T) {
	path := writeFile(t, "corpus.json",
		`{"text":"TC kimlik numaram 10000000146","expected_types":"TC_ID|MOBILE_PHONE"}`+"\n"+
			`{"text":"","expected_types":"TC_ID"}`+"\n")

	result, err := newTestEvaluator(t).EvaluateFile(context.Background(), path)
	if err != nil {
		t.Fatalf("EvaluateFile() error: %v", err)
	}

	// The empty-text record is dropped by validation.
	if result.TotalRecords != 1 {
		t.Errorf("TotalRecords = %d, want 1", result.TotalRecords)
	}
	if result.FailedRecords != 1 {
		t.Errorf("FailedRecords = %d, want 1", result.FailedRecords)
	}

	// The phone label cannot match, so the record is not exact.
	if result.ExactMatches != 0 {
		t.Errorf("ExactMatches = %d, want 0", result.ExactMatches)
	}
	phone := result.PerType[entity.TypeMobilePhone]
	if phone == nil || phone.Misses != 1 {
		t.Errorf("MOBILE_PHONE outcome = %+v, want 1 miss", phone)
	}
	if recall := phone.Recall(); recall != 0 {
		t.Errorf("Recall() = %v, want 0", recall)
	}
}

func TestRecordExpected(t *testing.T) {
	r := Record{ExpectedTypes: "TC_ID | MOBILE_PHONE|"}
	got := r.Expected()
	if len(got) != 2 || got[0] != entity.TypeTCID || got[1] != entity.TypeMobilePhone {
		t.Errorf("Expected() = %v", got)
	}

	empty := Record{ExpectedTypes: "  "}
	if len(empty.Expected()) != 0 {
		t.Errorf("Expected() on blank labels = %v", empty.Expected())
	}
}

func TestDetectFileFormat(t *testing.T) {
	cases := map[string]FileFormat{
		"data.csv":     FormatCSV,
		"data.parquet": FormatParquet,
		"data.json":    FormatJSON,
		"data.jsonl":   FormatJSON,
		"data.txt":     FormatCSV,
	}
	for name, want := range cases {
		if got := DetectFileFormat(name); got != want {
			t.Errorf("DetectFileFormat(%q) = %v, want %v", name, got, want)
		}
	}
}
