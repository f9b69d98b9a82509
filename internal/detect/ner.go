package detect

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/ner"
)

// NER wraps a model-backed recognizer as a detector. It is best effort:
// a failed or slow model call yields no entities rather than an error,
// the rule detectors still run.
type NER struct {
	recognizer ner.Recognizer
	timeout    time.Duration
	logger     *zap.Logger
}

// labelTypes maps model labels to entity types. Organizations are
// reported as names since a company name in a support dialogue usually
// identifies the person talking about their employer.
var labelTypes = map[string]entity.Type{
	"PER": entity.TypeName,
	"LOC": entity.TypeAddress,
	"ORG": entity.TypeName,
}

func NewNER(recognizer ner.Recognizer, timeout time.Duration, logger *zap.Logger) *NER {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &NER{recognizer: recognizer, timeout: timeout, logger: logger}
}

func (d *NER) Name() string { return "ner" }

func (d *NER) Detect(text string) []entity.Detected {
	if d.recognizer == nil || len(text) < 2 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	spans, err := d.recognizer.Recognize(ctx, text)
	if err != nil {
		d.logger.Warn("NER recognition failed, skipping", zap.Error(err))
		return nil
	}

	var entities []entity.Detected
	for _, s := range spans {
		t, ok := labelTypes[s.Label]
		if !ok {
			continue
		}
		if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
			continue
		}
		entities = append(entities, entity.Detected{
			Type:       t,
			Value:      text[s.Start:s.End],
			Start:      s.Start,
			End:        s.End,
			Confidence: s.Score,
			Context:    "model_" + s.Label,
		})
	}
	return dedupe(entities)
}
