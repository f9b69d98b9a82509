package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func renderToString(t *testing.T, text, format string) string {
	t.Helper()

	pipeline, err := buildPipeline(false, false, 0.5)
	if err != nil {
		t.Fatalf("buildPipeline: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create output file: %v", err)
	}
	if err := render(f, pipeline, text, format, 0.5); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close output file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	return string(data)
}

func TestRenderDetailed(t *testing.T) {
	text := "Sistemde 10000000146 kayıtlı."
	got := renderToString(t, text, "detailed")

	if !strings.Contains(got, "Original text:") || !strings.Contains(got, text) {
		t.Errorf("report missing the original text:\n%s", got)
	}
	if !strings.Contains(got, "Anonymized text:") || !strings.Contains(got, "[TC_KIMLIK]") {
		t.Errorf("report missing the anonymized text:\n%s", got)
	}
	if !strings.Contains(got, "- TC_ID: '10000000146' (confidence: 0.85)") {
		t.Errorf("report missing the entity value line:\n%s", got)
	}
	if !strings.Contains(got, "Detected categories:    TC_ID") {
		t.Errorf("report missing the category list:\n%s", got)
	}
}

func TestRenderDetailedCleanText(t *testing.T) {
	got := renderToString(t, "Faturanızı uygulamadan görüntüleyebilirsiniz.", "detailed")

	if !strings.Contains(got, "Personal data detected: false") {
		t.Errorf("report should state nothing was detected:\n%s", got)
	}
	if !strings.Contains(got, "Detected categories:    -") {
		t.Errorf("report should show a dash for no categories:\n%s", got)
	}
	if strings.Contains(got, "Detected entities:") {
		t.Errorf("report should omit the entity section when empty:\n%s", got)
	}
}

func TestRenderText(t *testing.T) {
	got := renderToString(t, "Telefonum 0532 123 45 67", "text")

	if !strings.Contains(got, "[CEP_TELEFONU]") {
		t.Errorf("sanitized output missing placeholder: %q", got)
	}
	if strings.Contains(got, "0532") {
		t.Errorf("sanitized output leaks the phone number: %q", got)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	pipeline, err := buildPipeline(false, false, 0.5)
	if err != nil {
		t.Fatalf("buildPipeline: %v", err)
	}
	if err := render(os.Stdout, pipeline, "metin", "yaml", 0.5); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
