package detect

import (
	"regexp"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
)

// Gender detects statements of gender, including the single letter E/K
// shorthand when anchored by a keyword.
type Gender struct{}

var genderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:cinsiyet|cinsiyeti|cinsiyetim)[\s:\.]+([eE]rkek|[kK]adın|[bB]ay|[bB]ayan|[eE]|[kK])\b`),
	regexp.MustCompile(`(?i)(?:cinsiyet|cinsiyeti|cinsiyetim)[\s:\.]+([EeKk])\b`),
	regexp.MustCompile(`(?i)\b(?:ben|biz)[\s,]+([eE]rkek|[kK]adın|[bB]ay|[bB]ayan)\b`),
	regexp.MustCompile(`(?i)(?:^|[\s,\.])([eE]rkek|[kK]adın|[bB]ay|[bB]ayan)\b`),
	regexp.MustCompile(`(?i)(?:cinsiyet|cinsiyeti)[\s:\.]*([EeKk])\b`),
}

func NewGender() *Gender { return &Gender{} }

func (d *Gender) Name() string { return "gender" }

func (d *Gender) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, p := range genderPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			trimmed := strings.TrimSpace(value)
			if len(trimmed) <= 2 {
				upper := strings.ToUpper(trimmed)
				if upper != "E" && upper != "K" {
					continue
				}
			}
			entities = append(entities, entity.Detected{
				Type: entity.TypeGender, Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.95,
			})
		}
	}

	return entities
}
