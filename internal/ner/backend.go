package ner

import "time"

// LocalConfig configures the in-process ONNX recognizer. The model is a
// token classification checkpoint exported to ONNX with its matching
// tokenizer.json.
type LocalConfig struct {
	ModelPath     string        `mapstructure:"model_path"`
	TokenizerPath string        `mapstructure:"tokenizer_path"`
	MaxSeqLen     int           `mapstructure:"max_seq_len"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// bioLabels is the label set of the Turkish BERT NER checkpoint. Index
// order matches the model's classifier head.
var bioLabels = []string{"O", "B-PER", "I-PER", "B-ORG", "I-ORG", "B-LOC", "I-LOC"}
