package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/anonymizer"
	"github.com/trustmask/trustmask/internal/config"
	"github.com/trustmask/trustmask/internal/detect"
	"github.com/trustmask/trustmask/internal/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.GetDefaults()
	cfg.RateLimit.Enabled = false
	cfg.WebSocket.Enabled = false

	log := &logger.Logger{Logger: zap.NewNop()}
	pipeline := anonymizer.New(detect.All(false), 0.5, zap.NewNop())

	srv, err := New(cfg, log, pipeline, nil, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestAnonymizeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("masks personal data", func(t *testing.T) {
		rec := doJSON(t, srv, "POST", "/anonymize",
			`{"text":"Telefon: 0532 123 45 67"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
		}

		var resp anonymizeResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if !resp.IsPersonalDataDetected {
			t.Error("expected personal data to be detected")
		}
		if !strings.Contains(resp.SanitizedText, "[CEP_TELEFONU]") {
			t.Errorf("sanitized text %q missing phone placeholder", resp.SanitizedText)
		}
		if strings.Contains(resp.SanitizedText, "0532") {
			t.Errorf("sanitized text %q still contains the number", resp.SanitizedText)
		}
	})

	t.Run("clean text passes through", func(t *testing.T) {
		rec := doJSON(t, srv, "POST", "/anonymize",
			`{"text":"Faturanızı uygulamadan görüntüleyebilirsiniz."}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp anonymizeResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.IsPersonalDataDetected {
			t.Errorf("unexpected detection, types: %v", resp.DetectedDataTypes)
		}
		if resp.SanitizedText != "Faturanızı uygulamadan görüntüleyebilirsiniz." {
			t.Errorf("clean text was modified: %q", resp.SanitizedText)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := doJSON(t, srv, "POST", "/anonymize", `{"text": 12`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := doJSON(t, srv, "GET", "/anonymize", "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}

func TestAnonymizeBatchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, "POST", "/anonymize/batch",
		`["TC kimlik numaram 10000000146", 42, "Temiz bir metin."]`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var items []batchItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	if !items[0].IsPersonalDataDetected {
		t.Error("first item: expected detection")
	}
	if !strings.Contains(items[0].SanitizedText, "[TC_KIMLIK]") {
		t.Errorf("first item sanitized text %q missing placeholder", items[0].SanitizedText)
	}

	if items[1].Error != "Invalid text (not a string)" {
		t.Errorf("second item error = %q", items[1].Error)
	}

	if items[2].Error != "" || items[2].IsPersonalDataDetected {
		t.Errorf("third item should be clean, got %+v", items[2])
	}
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, "POST", "/stats",
		`{"text":"TC kimlik numaram 10000000146"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var stats anonymizer.Statistics
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if stats.TotalEntities == 0 {
		t.Error("expected at least one entity in stats")
	}
	if stats.OriginalLength == 0 {
		t.Error("original length not reported")
	}
}

func TestHealthAndInfo(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/health status = %d, want 200", rec.Code)
	}
	var health map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("health status = %v", health["status"])
	}

	rec = doJSON(t, srv, "GET", "/info", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/info status = %d, want 200", rec.Code)
	}
	var info map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("unmarshal info: %v", err)
	}
	if info["name"] != "trustmask" {
		t.Errorf("info name = %v", info["name"])
	}
	if detectors, ok := info["detectors"].([]interface{}); !ok || len(detectors) == 0 {
		t.Errorf("info detectors = %v", info["detectors"])
	}
}

func TestAnonymizeThreshold(t *testing.T) {
	cfg := config.GetDefaults()
	cfg.RateLimit.Enabled = false
	cfg.WebSocket.Enabled = false

	log := &logger.Logger{Logger: zap.NewNop()}
	pipeline := anonymizer.New(detect.All(false), 0.99, zap.NewNop())

	srv, err := New(cfg, log, pipeline, nil, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// An unchecksummed 11-digit number scores 0.60, below the 0.99
	// pipeline default.
	body := `{"text":"Sistemde 98765432109 kayıtlı."}`

	t.Run("omitted threshold uses the default", func(t *testing.T) {
		rec := doJSON(t, srv, "POST", "/anonymize", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp anonymizeResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.IsPersonalDataDetected {
			t.Errorf("low-confidence hit kept at default threshold: %v", resp.DetectedDataTypes)
		}
	})

	t.Run("explicit zero keeps every hit", func(t *testing.T) {
		rec := doJSON(t, srv, "POST", "/anonymize",
			`{"text":"Sistemde 98765432109 kayıtlı.","min_confidence":0}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp anonymizeResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if !resp.IsPersonalDataDetected {
			t.Error("explicit min_confidence 0 should keep the 0.60 hit")
		}
	})
}

func TestCacheClearEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, "POST", "/cache/clear", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 with caching disabled", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["error"] != "Cache is not enabled" {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := config.GetDefaults()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 1
	cfg.RateLimit.Burst = 2
	cfg.WebSocket.Enabled = false

	log := &logger.Logger{Logger: zap.NewNop()}
	pipeline := anonymizer.New(detect.All(false), 0.5, zap.NewNop())

	srv, err := New(cfg, log, pipeline, nil, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	limited := false
	for i := 0; i < 5; i++ {
		rec := doJSON(t, srv, "POST", "/anonymize", `{"text":"merhaba"}`)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected a 429 after exhausting the burst")
	}
}
