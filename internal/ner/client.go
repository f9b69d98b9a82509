package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultEndpoint is the public inference endpoint for the Turkish
// token classification model.
const DefaultEndpoint = "https://api-inference.huggingface.co/models/savasy/bert-base-turkish-ner-cased"

// ClientConfig configures the remote recognizer.
type ClientConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Retries  int           `mapstructure:"retries"`
}

// Client calls a hosted token classification endpoint. A cold model
// answers 503 with an estimated warmup time; the client waits it out,
// capped, before retrying.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a remote recognizer.
func NewClient(config ClientConfig, logger *zap.Logger) *Client {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Retries <= 0 {
		config.Retries = 3
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger,
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type loadingResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

const maxWarmupWait = 20 * time.Second

// Recognize sends text to the endpoint and decodes the predicted spans.
func (c *Client) Recognize(ctx context.Context, text string) ([]Span, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	for attempt := 1; attempt <= c.config.Retries; attempt++ {
		spans, retry, err := c.query(ctx, body)
		if err == nil {
			return spans, nil
		}
		if !retry || attempt == c.config.Retries {
			return nil, err
		}
		c.logger.Warn("NER request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.config.Retries),
			zap.Error(err))
	}
	return nil, fmt.Errorf("ner request exhausted %d attempts", c.config.Retries)
}

func (c *Client) query(ctx context.Context, body []byte) (spans []Span, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to build ner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("ner request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read ner response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		spans, err := decodeSpans(data)
		if err != nil {
			return nil, false, err
		}
		return spans, false, nil

	case http.StatusServiceUnavailable:
		// The model is loading; the response carries an estimate.
		var loading loadingResponse
		_ = json.Unmarshal(data, &loading)
		wait := time.Duration(loading.EstimatedTime * float64(time.Second))
		if wait <= 0 {
			wait = 10 * time.Second
		}
		if wait > maxWarmupWait {
			wait = maxWarmupWait
		}
		c.logger.Info("NER model loading, waiting",
			zap.Duration("wait", wait))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("ner model loading")

	default:
		return nil, true, fmt.Errorf("ner endpoint returned status %d", resp.StatusCode)
	}
}

// decodeSpans handles both the flat span list and the nested list some
// endpoint versions return.
func decodeSpans(data []byte) ([]Span, error) {
	var spans []Span
	if err := json.Unmarshal(data, &spans); err == nil {
		return spans, nil
	}
	var nested [][]Span
	if err := json.Unmarshal(data, &nested); err == nil {
		if len(nested) > 0 {
			return nested[0], nil
		}
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected ner response shape")
}

// Close is a no-op for the remote client.
func (c *Client) Close() error { return nil }
