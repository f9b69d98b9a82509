// Package ner provides named entity recognition for Turkish text, either
// through a remote inference endpoint or an in-process ONNX model.
package ner

import "context"

// Span is one model prediction over the input text. Start and End are
// byte offsets.
type Span struct {
	Label string  `json:"entity_group"`
	Score float64 `json:"score"`
	Word  string  `json:"word"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// Recognizer runs token classification over text.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Span, error)
	Close() error
}
