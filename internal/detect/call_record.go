package detect

import (
	"regexp"

	"github.com/trustmask/trustmask/internal/entity"
)

// CallRecord detects call record and support ticket reference numbers.
// Only the identifier itself is reported, not the anchoring phrase.
type CallRecord struct{}

var callRecordIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:çağrı\s*kayıt|çağrı\s*kaydı|çağrı\s*no|çağrı\s*numarası|görüşmeye\s*ait)[\s:\.#]*([A-Z0-9\-]{5,20})`),
	regexp.MustCompile(`(?i)(?:görüşmeye\s*ait\s*çağrı\s*kayıt\s*numara[a-z]*)[\s:\.#]*([A-Z0-9\-]{5,20})`),
	regexp.MustCompile(`(?i)(?:arama\s*kayıt|arama\s*kaydı|arama\s*no)[\s:\.#]*([A-Z0-9\-]{5,20})`),
	regexp.MustCompile(`(?i)(?:görüşme\s*kayıt|görüşme\s*no)[\s:\.#]*([A-Z0-9\-]{5,20})`),
	regexp.MustCompile(`(?i)(?:ticket|tiket|talep\s*no|talep\s*numarası)[\s:\.#]*([A-Z0-9\-]{5,20})`),
	regexp.MustCompile(`(?i)(?:çağrı\s*kayıt|görüşmeye\s*ait)[^0-9\n]{0,30}([A-Z]{2}[\-]?\d{4}[\-]?[A-Z0-9]{4,15})`),
	regexp.MustCompile(`(?i)\b((?:CR|AC|TR|CN)[\-]?\d{4}[\-]?[A-Z0-9]{4,15})\b`),
	regexp.MustCompile(`\b([A-Z]{2}[\-]\d{4}[\-][A-Z0-9]{5,15})\b`),
}

func NewCallRecord() *CallRecord { return &CallRecord{} }

func (d *CallRecord) Name() string { return "call_record" }

func (d *CallRecord) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, p := range callRecordIDPatterns {
		for _, m := range p.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[2], m[3]
			entities = append(entities, entity.Detected{
				Type:       entity.TypeCallRecordID,
				Value:      text[start:end],
				Start:      start,
				End:        end,
				Confidence: 0.95,
			})
		}
	}

	return entities
}
