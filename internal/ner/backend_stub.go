//go:build !onnx
// +build !onnx

package ner

import (
	"fmt"

	"go.uber.org/zap"
)

// Stub implementation used when the 'onnx' build tag is not set.
func NewLocalBackend(config LocalConfig, logger *zap.Logger) (Recognizer, error) {
	return nil, fmt.Errorf("local ner backend requires the onnx build tag")
}
