package detect

import (
	"regexp"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/gazetteer"
)

// Phone detects Turkish phone numbers and classifies them as mobile,
// landline or generic phone based on prefix tables and nearby keywords.
type Phone struct{}

var (
	phoneIntlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+90\s*(\d{3})\s*(\d{3})\s*(\d{2})\s*(\d{2})`),
		regexp.MustCompile(`\+90\s*(\d{10})`),
		regexp.MustCompile(`\+90[\s\-]?(\d{3})[\s\-]?(\d{3})[\s\-]?(\d{2})[\s\-]?(\d{2})`),
	}
	phoneZeroPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b0\s*(\d{3})\s*(\d{3})\s*(\d{2})\s*(\d{2})\b`),
		regexp.MustCompile(`\b0(\d{10})\b`),
		regexp.MustCompile(`\b0[\s\-]?(\d{3})[\s\-]?(\d{3})[\s\-]?(\d{2})[\s\-]?(\d{2})\b`),
		regexp.MustCompile(`\(0(\d{3})\)\s*(\d{3})\s*(\d{2})\s*(\d{2})`),
	}
	phoneGSMPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(5\d{2})\s+(\d{3})\s+(\d{2})\s+(\d{2})\b`),
		regexp.MustCompile(`\b(5\d{9})\b`),
		regexp.MustCompile(`\b(5\d{2})[\s\-](\d{3})[\s\-](\d{2})[\s\-](\d{2})\b`),
	}
	phoneContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:telefon|tel|cep|gsm|numara|numarası|numaram|hattı|hattım)[\s:\.]*(?:no|numarası|numaram)?[\s:\.]*(\+?90?\s*)?(\d{3})[\s\-]?(\d{3})[\s\-]?(\d{2})[\s\-]?(\d{2})`),
		regexp.MustCompile(`(?i)(?:telefon|tel|cep|gsm|numara|numarası|numaram|hattı|hattım)[\s:\.]*(?:no|numarası|numaram)?[\s:\.]*(\+?90?\s*)?0?(\d{10})`),
	}
	phoneWhatsAppPattern = regexp.MustCompile(`(?i)(?:whatsapp|wp|watsap)[\s:\.]*(\+?90?\s*)?0?(\d{3})[\s\-]?(\d{3})[\s\-]?(\d{2})[\s\-]?(\d{2})`)
)

func NewPhone() *Phone { return &Phone{} }

func (d *Phone) Name() string { return "phone" }

func (d *Phone) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, p := range phoneIntlPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			digits := digitsOf(value)
			t := entity.TypePhone
			if len(digits) >= 10 {
				t = classifyPrefix(prefixOf(digits))
			}
			entities = append(entities, entity.Detected{
				Type: t, Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.98,
			})
		}
	}

	for _, p := range phoneZeroPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			digits := digitsOf(value)
			if !validTurkishPhone(digits) {
				continue
			}
			prefix := digits[:3]
			if strings.HasPrefix(digits, "0") {
				prefix = digits[1:4]
			}
			entities = append(entities, entity.Detected{
				Type: classifyPrefix(prefix), Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.95,
			})
		}
	}

	for _, p := range phoneGSMPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			digits := digitsOf(value)
			if len(digits) == 10 && gazetteer.GSMPrefixes[digits[:3]] {
				entities = append(entities, entity.Detected{
					Type: entity.TypeMobilePhone, Value: value, Start: loc[0], End: loc[1],
					Confidence: 0.90,
				})
			}
		}
	}

	for _, p := range phoneContextPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			lower := strings.ToLower(value)
			digits := digitsOf(value)

			var t entity.Type
			switch {
			case containsAny(lower, "cep", "gsm", "mobil"):
				t = entity.TypeMobilePhone
			case containsAny(lower, "sabit", "ev", "iş"):
				t = entity.TypeLandline
			case len(digits) >= 3:
				t = classifyPrefix(prefixOf(digits))
			default:
				t = entity.TypePhone
			}

			entities = append(entities, entity.Detected{
				Type: t, Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.97,
			})
		}
	}

	for _, loc := range phoneWhatsAppPattern.FindAllStringIndex(text, -1) {
		entities = append(entities, entity.Detected{
			Type:       entity.TypeMobilePhone,
			Value:      text[loc[0]:loc[1]],
			Start:      loc[0],
			End:        loc[1],
			Confidence: 0.97,
		})
	}

	return dedupe(entities)
}

// prefixOf returns the three digit operator or area code of a digit
// string, skipping a leading country code when present.
func prefixOf(digits string) string {
	if len(digits) > 10 {
		return digits[len(digits)-10 : len(digits)-7]
	}
	if len(digits) >= 3 {
		return digits[:3]
	}
	return digits
}

func classifyPrefix(prefix string) entity.Type {
	if len(prefix) == 0 {
		return entity.TypePhone
	}
	if gazetteer.GSMPrefixes[prefix] || prefix[0] == '5' {
		return entity.TypeMobilePhone
	}
	if gazetteer.LandlinePrefixes[prefix] || prefix[0] == '2' || prefix[0] == '3' || prefix[0] == '4' {
		return entity.TypeLandline
	}
	return entity.TypePhone
}

// validTurkishPhone checks the national number after stripping a leading
// trunk zero or 90 country code.
func validTurkishPhone(digits string) bool {
	if strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "90") && len(digits) > 10 {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return false
	}
	prefix := digits[:3]
	if gazetteer.GSMPrefixes[prefix] || gazetteer.LandlinePrefixes[prefix] {
		return true
	}
	switch prefix[0] {
	case '5', '2', '3', '4':
		return true
	}
	return false
}
