package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/cache"
	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/websocket"
)

// anonymizeRequest is the request body for /anonymize and /stats
type anonymizeRequest struct {
	Text          string   `json:"text"`
	MinConfidence *float64 `json:"min_confidence,omitempty"`
}

// threshold maps an absent min_confidence to the pipeline default. An
// explicit 0 is a real threshold that keeps every hit.
func (r *anonymizeRequest) threshold() float64 {
	if r.MinConfidence == nil {
		return -1
	}
	return *r.MinConfidence
}

// anonymizeResponse mirrors entity.Result without the matched values.
// Raw entities stay inside the process.
type anonymizeResponse struct {
	IsPersonalDataDetected bool          `json:"is_personal_data_detected"`
	DetectedDataTypes      []entity.Type `json:"detected_data_types"`
	SanitizedText          string        `json:"sanitized_text"`
}

// batchItem is one element of the /anonymize/batch response
type batchItem struct {
	anonymizeResponse
	Error string `json:"error,omitempty"`
}

// handleAnonymize masks a single text
func (s *Server) handleAnonymize(w http.ResponseWriter, r *http.Request) {
	s.countRequest()
	requestID := getRequestID(r.Context())

	var req anonymizeRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	start := time.Now()
	threshold := req.threshold()

	if cached := s.lookupCache(r.Context(), req.Text, threshold); cached != nil {
		s.broadcastDetection(requestID, typesToCounts(cached.DetectedDataTypes), cached.IsPersonalDataDetected, true, start)
		writeJSON(w, http.StatusOK, anonymizeResponse{
			IsPersonalDataDetected: cached.IsPersonalDataDetected,
			DetectedDataTypes:      cached.DetectedDataTypes,
			SanitizedText:          cached.SanitizedText,
		})
		return
	}

	result := s.pipeline.Anonymize(req.Text, threshold)
	s.countDetections(len(result.Entities))

	s.storeCache(r.Context(), req.Text, threshold, result)
	s.recordAudit(requestID, entityCounts(result.Entities), len(req.Text), len(result.SanitizedText))
	s.broadcastDetection(requestID, entityCounts(result.Entities), result.IsPersonalDataDetected, false, start)

	s.logger.LogDetection(requestID, len(result.Entities), typeNames(result.DetectedDataTypes), time.Since(start))

	writeJSON(w, http.StatusOK, anonymizeResponse{
		IsPersonalDataDetected: result.IsPersonalDataDetected,
		DetectedDataTypes:      result.DetectedDataTypes,
		SanitizedText:          result.SanitizedText,
	})
}

// handleAnonymizeBatch masks an array of texts. Non-string elements
// produce an error item at the same index instead of failing the batch.
func (s *Server) handleAnonymizeBatch(w http.ResponseWriter, r *http.Request) {
	s.countRequest()
	requestID := getRequestID(r.Context())

	var items []interface{}
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body (expected an array)")
		return
	}

	start := time.Now()
	responses := make([]batchItem, len(items))
	totalEntities := 0
	counts := make(map[string]int)

	for i, item := range items {
		text, ok := item.(string)
		if !ok {
			responses[i] = batchItem{
				anonymizeResponse: anonymizeResponse{DetectedDataTypes: []entity.Type{}},
				Error:             "Invalid text (not a string)",
			}
			continue
		}

		result := s.pipeline.Anonymize(text, -1)
		totalEntities += len(result.Entities)
		for _, e := range result.Entities {
			counts[string(e.Type)]++
		}
		responses[i] = batchItem{anonymizeResponse: anonymizeResponse{
			IsPersonalDataDetected: result.IsPersonalDataDetected,
			DetectedDataTypes:      result.DetectedDataTypes,
			SanitizedText:          result.SanitizedText,
		}}
	}

	s.countDetections(totalEntities)
	s.broadcastDetection(requestID, counts, totalEntities > 0, false, start)
	s.logger.LogDetection(requestID, totalEntities, nil, time.Since(start))

	writeJSON(w, http.StatusOK, responses)
}

// handleStats reports detection statistics for a text without caching
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.countRequest()

	var req anonymizeRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	writeJSON(w, http.StatusOK, s.pipeline.Stats(req.Text, req.threshold()))
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.startTime).String(),
	})
}

// handleInfo handles info requests
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":             "trustmask",
		"version":          Version,
		"detectors":        s.pipeline.Detectors(),
		"ner_enabled":      s.config.NER.Enabled,
		"cache_enabled":    s.cache != nil,
		"audit_enabled":    s.audit != nil,
		"total_requests":   atomic.LoadInt64(&s.totalRequests),
		"total_detections": atomic.LoadInt64(&s.totalDetections),
	}

	if s.cache != nil {
		if stats, err := s.cache.GetStats(r.Context()); err == nil {
			info["cache"] = stats
		} else {
			s.logger.Warn("Failed to read cache stats", zap.Error(err))
		}
	}
	if s.audit != nil {
		if summary, err := s.audit.GetSummary(r.Context()); err == nil {
			info["audit"] = summary
		} else {
			s.logger.Warn("Failed to read audit summary", zap.Error(err))
		}
	}
	if s.config.WebSocket.Enabled {
		info["websocket"] = s.wsHub.GetStats()
	}

	writeJSON(w, http.StatusOK, info)
}

// handleCacheClear flushes every cached result
func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeError(w, http.StatusServiceUnavailable, "Cache is not enabled")
		return
	}
	if err := s.cache.Clear(r.Context()); err != nil {
		s.logger.Error("Failed to clear cache", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to clear cache")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// lookupCache checks the result cache; nil means miss or caching off
func (s *Server) lookupCache(ctx context.Context, text string, minConfidence float64) *cache.CachedResult {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, text, minConfidence)
	if err != nil || cached == nil {
		return nil
	}
	return cached
}

// storeCache caches a computed result; failures are logged, not fatal
func (s *Server) storeCache(ctx context.Context, text string, minConfidence float64, result entity.Result) {
	if s.cache == nil {
		return
	}
	err := s.cache.Set(ctx, text, minConfidence, cache.CachedResult{
		IsPersonalDataDetected: result.IsPersonalDataDetected,
		DetectedDataTypes:      result.DetectedDataTypes,
		SanitizedText:          result.SanitizedText,
	})
	if err != nil {
		s.logger.Warn("Failed to cache result", zap.Error(err))
	}
}

// recordAudit bumps the aggregate counters off the request path
func (s *Server) recordAudit(requestID string, counts map[string]int, originalLen, sanitizedLen int) {
	if s.audit == nil {
		return
	}

	byCategory := make(map[entity.Type]int, len(counts))
	for category, count := range counts {
		byCategory[entity.Type(category)] = count
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.audit.Record(ctx, byCategory, originalLen, sanitizedLen); err != nil {
			s.logger.Warn("Failed to record audit counters",
				zap.String("request_id", requestID),
				zap.Error(err))
		}
	}()
}

// broadcastDetection publishes a per-request summary to dashboard clients
func (s *Server) broadcastDetection(requestID string, counts map[string]int, masked, cacheHit bool, start time.Time) {
	if !s.config.WebSocket.Enabled {
		return
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	s.wsHub.BroadcastDetection(websocket.DetectionEvent{
		RequestID:      requestID,
		CategoryCounts: counts,
		TotalEntities:  total,
		Masked:         masked,
		CacheHit:       cacheHit,
		ProcessingMS:   float64(time.Since(start).Nanoseconds()) / 1e6,
	})
}

func entityCounts(entities []entity.Detected) map[string]int {
	counts := make(map[string]int, len(entities))
	for _, e := range entities {
		counts[string(e.Type)]++
	}
	return counts
}

func typesToCounts(types []entity.Type) map[string]int {
	counts := make(map[string]int, len(types))
	for _, t := range types {
		counts[string(t)] = 1
	}
	return counts
}

func typeNames(types []entity.Type) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
