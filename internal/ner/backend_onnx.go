//go:build onnx
// +build onnx

package ner

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/daulet/tokenizers"
	ort "github.com/yalue/onnxruntime_go"
	"go.uber.org/zap"
)

// LocalBackend runs a token classification model in-process with ONNX
// Runtime. Requires build tag 'onnx'.
type LocalBackend struct {
	session    *ort.DynamicAdvancedSession
	tokenizer  *tokenizers.Tokenizer
	inputNames []string
	outputName string
	maxSeqLen  int
	logger     *zap.Logger
	ready      bool
	mu         sync.RWMutex
}

// NewLocalBackend loads the model and tokenizer and opens a session.
func NewLocalBackend(config LocalConfig, logger *zap.Logger) (Recognizer, error) {
	// Allow user to provide shared library path via environment variable.
	if shlib := os.Getenv("ONNXRUNTIME_SHARED_LIB"); shlib != "" {
		ort.SetSharedLibraryPath(shlib)
	} else if shlib := os.Getenv("ORT_SHLIB"); shlib != "" {
		ort.SetSharedLibraryPath(shlib)
	}

	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("onnx runtime environment init failed: %w", err)
		}
	}

	tk, err := tokenizers.FromFile(config.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}

	inputsInfo, outputsInfo, err := ort.GetInputOutputInfo(config.ModelPath)
	if err != nil {
		tk.Close()
		return nil, fmt.Errorf("failed to inspect model IO: %w", err)
	}
	if len(outputsInfo) == 0 {
		tk.Close()
		return nil, fmt.Errorf("model %s reports no outputs", config.ModelPath)
	}

	available := map[string]bool{}
	for _, ii := range inputsInfo {
		available[strings.ToLower(ii.Name)] = true
	}
	var inputNames []string
	for _, name := range []string{"input_ids", "attention_mask", "token_type_ids"} {
		if available[name] {
			inputNames = append(inputNames, name)
		}
	}
	if len(inputNames) == 0 {
		tk.Close()
		return nil, fmt.Errorf("model %s declares no recognized inputs", config.ModelPath)
	}
	outputName := outputsInfo[0].Name

	sess, err := ort.NewDynamicAdvancedSession(config.ModelPath, inputNames, []string{outputName}, nil)
	if err != nil {
		tk.Close()
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	maxSeqLen := config.MaxSeqLen
	if maxSeqLen <= 0 {
		maxSeqLen = 512
	}

	logger.Info("local NER backend ready",
		zap.String("model", config.ModelPath),
		zap.Strings("inputs", inputNames),
		zap.String("output", outputName))

	return &LocalBackend{
		session:    sess,
		tokenizer:  tk,
		inputNames: inputNames,
		outputName: outputName,
		maxSeqLen:  maxSeqLen,
		logger:     logger,
		ready:      true,
	}, nil
}

// Recognize tokenizes the text, runs the model and decodes BIO-tagged
// logits into merged spans with byte offsets.
func (b *LocalBackend) Recognize(ctx context.Context, text string) ([]Span, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.ready || b.session == nil {
		return nil, fmt.Errorf("local ner backend not ready")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	encoding := b.tokenizer.EncodeWithOptions(text, true,
		tokenizers.WithReturnOffsets(),
		tokenizers.WithReturnAttentionMask(),
		tokenizers.WithReturnTypeIDs())

	seqLen := len(encoding.IDs)
	if seqLen == 0 {
		return nil, nil
	}
	if seqLen > b.maxSeqLen {
		seqLen = b.maxSeqLen
	}

	inputIDs := make([]int64, seqLen)
	attention := make([]int64, seqLen)
	tokenTypes := make([]int64, seqLen)
	for i := 0; i < seqLen; i++ {
		inputIDs[i] = int64(encoding.IDs[i])
		attention[i] = 1
		if i < len(encoding.TypeIDs) {
			tokenTypes[i] = int64(encoding.TypeIDs[i])
		}
	}

	shape := ort.NewShape(1, int64(seqLen))
	idsTensor, err := ort.NewTensor[int64](shape, inputIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create input_ids tensor: %w", err)
	}
	defer idsTensor.Destroy()
	maskTensor, err := ort.NewTensor[int64](shape, attention)
	if err != nil {
		return nil, fmt.Errorf("failed to create attention_mask tensor: %w", err)
	}
	defer maskTensor.Destroy()
	typeTensor, err := ort.NewTensor[int64](shape, tokenTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to create token_type_ids tensor: %w", err)
	}
	defer typeTensor.Destroy()

	inputs := make([]ort.Value, 0, len(b.inputNames))
	for _, name := range b.inputNames {
		switch name {
		case "input_ids":
			inputs = append(inputs, idsTensor)
		case "attention_mask":
			inputs = append(inputs, maskTensor)
		case "token_type_ids":
			inputs = append(inputs, typeTensor)
		}
	}

	outputs := make([]ort.Value, 1)
	if err := b.session.Run(inputs, outputs); err != nil {
		return nil, fmt.Errorf("onnx run failed: %w", err)
	}
	if len(outputs) == 0 || outputs[0] == nil {
		return nil, fmt.Errorf("onnx returned no outputs")
	}
	defer func() { _ = outputs[0].Destroy() }()

	outTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected output type (want float32 tensor)")
	}

	return decodeBIO(text, outTensor.GetData(), encoding.Offsets[:seqLen]), nil
}

// decodeBIO walks per-token logits and merges B-/I- runs of the same
// label into one span. Special tokens carry a zero-width offset and are
// skipped.
func decodeBIO(text string, logits []float32, offsets []tokenizers.Offset) []Span {
	numLabels := len(bioLabels)
	var spans []Span
	var current *Span

	flush := func() {
		if current != nil {
			spans = append(spans, *current)
			current = nil
		}
	}

	for i := range offsets {
		startIdx := i * numLabels
		endIdx := startIdx + numLabels
		if endIdx > len(logits) {
			break
		}
		tokenLogits := logits[startIdx:endIdx]

		best := 0
		for j := 1; j < numLabels; j++ {
			if tokenLogits[j] > tokenLogits[best] {
				best = j
			}
		}

		// Softmax just for the winning class.
		var sum float64
		for _, l := range tokenLogits {
			sum += math.Exp(float64(l))
		}
		score := math.Exp(float64(tokenLogits[best])) / sum

		label := bioLabels[best]
		off := offsets[i]
		tokStart, tokEnd := int(off[0]), int(off[1])
		if tokStart == tokEnd || tokEnd > len(text) {
			flush()
			continue
		}

		switch {
		case label == "O" || score < 0.5:
			flush()
		case strings.HasPrefix(label, "I-") && current != nil && current.Label == label[2:]:
			current.End = tokEnd
			current.Word = text[current.Start:current.End]
			current.Score = (current.Score + score) / 2
		default:
			flush()
			current = &Span{
				Label: strings.TrimPrefix(strings.TrimPrefix(label, "B-"), "I-"),
				Score: score,
				Word:  text[tokStart:tokEnd],
				Start: tokStart,
				End:   tokEnd,
			}
		}
	}
	flush()

	return spans
}

// Close releases session, tokenizer and environment resources.
func (b *LocalBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != nil {
		b.session.Destroy()
		b.session = nil
	}
	if b.tokenizer != nil {
		b.tokenizer.Close()
		b.tokenizer = nil
	}
	ort.DestroyEnvironment()
	b.ready = false
	return nil
}
