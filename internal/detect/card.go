package detect

import (
	"regexp"

	"github.com/trustmask/trustmask/internal/entity"
)

// Card detects payment card numbers, masked card fragments, expiry
// dates and security codes.
type Card struct{}

var (
	cardPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{16})\b`),
		regexp.MustCompile(`\b(\d{4})\s+(\d{4})\s+(\d{4})\s+(\d{4})\b`),
		regexp.MustCompile(`\b(\d{4})[\-](\d{4})[\-](\d{4})[\-](\d{4})\b`),
		regexp.MustCompile(`\b(\d{4})\.(\d{4})\.(\d{4})\.(\d{4})\b`),
	}
	cardContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:kart|kredi\s*kart|banka\s*kart)[\s:\.ıi]*(?:no|numarası|numaram)?[\s:\.]*(\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4})`),
		regexp.MustCompile(`(?i)(?:kart|kredi\s*kart|banka\s*kart)[\s:\.ıi]*(?:no|numarası|numaram)?[\s:\.]*(\d{16})`),
	}
	cardMaskedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}[\s\-]?\*{4}[\s\-]?\*{4}[\s\-]?\d{4}\b`),
		regexp.MustCompile(`\b\d{6}\*+\d{4}\b`),
	}
	cardExpiryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:son\s*kullanma|SKT|s\.k\.t)[\s:\.]*(\d{2}[\s/\-]\d{2,4})`),
		regexp.MustCompile(`(?i)(?:CVV|cvv|CVC|cvc|güvenlik\s*kodu)[\s:\.]*(\d{3,4})`),
	}
)

func NewCard() *Card { return &Card{} }

func (d *Card) Name() string { return "card" }

func (d *Card) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, p := range cardPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			digits := digitsOf(value)
			if len(digits) == 16 && ValidCardNumber(digits) {
				entities = append(entities, entity.Detected{
					Type: entity.TypeCardInfo, Value: value, Start: loc[0], End: loc[1],
					Confidence: 0.95,
				})
			}
		}
	}

	for _, p := range cardContextPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Detected{
				Type:       entity.TypeCardInfo,
				Value:      text[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
				Confidence: 0.97,
			})
		}
	}

	for _, p := range cardMaskedPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Detected{
				Type:       entity.TypeCardInfo,
				Value:      text[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
				Confidence: 0.90,
			})
		}
	}

	for _, p := range cardExpiryPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Detected{
				Type:       entity.TypeCardInfo,
				Value:      text[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
				Confidence: 0.85,
			})
		}
	}

	return dedupe(entities)
}

// ValidCardNumber checks a 16-digit card number with the Luhn algorithm
// after requiring a known issuer first digit.
func ValidCardNumber(digits string) bool {
	if len(digits) != 16 {
		return false
	}
	switch digits[0] {
	case '3', '4', '5', '6', '7', '9':
	default:
		return false
	}

	total := 0
	for i := 0; i < 16; i++ {
		d := int(digits[i] - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
	}
	return total%10 == 0
}
