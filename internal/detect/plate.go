package detect

import (
	"regexp"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/gazetteer"
)

// Plate detects Turkish vehicle registration plates: a province code
// 01-81, one to three letters and two to four digits.
type Plate struct{}

var (
	platePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(0[1-9]|[1-7][0-9]|8[01])\s*([A-Za-z]{1,3})\s*(\d{2,4})\b`),
		regexp.MustCompile(`(?i)\b(0[1-9]|[1-7][0-9]|8[01])([A-Za-z]{1,3})(\d{2,4})\b`),
		regexp.MustCompile(`(?i)\b(0[1-9]|[1-7][0-9]|8[01])[\s\-]([A-Za-z]{1,3})[\s\-](\d{2,4})\b`),
	}
	plateContextPattern = regexp.MustCompile(`(?i)(?:plaka|araç\s*plaka|plakası|plakam)[\s:\.]*((0[1-9]|[1-7][0-9]|8[01])[\s\-]?[A-Za-z]{1,3}[\s\-]?\d{2,4})`)
)

func NewPlate() *Plate { return &Plate{} }

func (d *Plate) Name() string { return "plate" }

func (d *Plate) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, p := range platePatterns {
		for _, m := range p.FindAllStringSubmatchIndex(text, -1) {
			cityCode := text[m[2]:m[3]]
			if !gazetteer.CityCodes[cityCode] {
				continue
			}
			entities = append(entities, entity.Detected{
				Type:       entity.TypePlate,
				Value:      text[m[0]:m[1]],
				Start:      m[0],
				End:        m[1],
				Confidence: 0.95,
			})
		}
	}

	for _, loc := range plateContextPattern.FindAllStringIndex(text, -1) {
		entities = append(entities, entity.Detected{
			Type:       entity.TypePlate,
			Value:      text[loc[0]:loc[1]],
			Start:      loc[0],
			End:        loc[1],
			Confidence: 0.98,
		})
	}

	return dedupe(entities)
}
