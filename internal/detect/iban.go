package detect

import (
	"regexp"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/gazetteer"
)

// IBAN detects Turkish IBANs and keyword-anchored bank account numbers.
// A Turkish IBAN is TR, two check digits and 22 BBAN digits, 26
// characters in total.
type IBAN struct{}

var (
	ibanPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bTR\d{24}\b`),
		regexp.MustCompile(`(?i)\bTR\d{2}\s+\d{4}\s+\d{4}\s+\d{4}\s+\d{4}\s+\d{4}\s+\d{2}\b`),
		regexp.MustCompile(`(?i)\bTR\s*\d{2}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{2}\b`),
		regexp.MustCompile(`(?i)\bTR\d{2}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{2}\b`),
	}
	ibanContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:IBAN|iban)[\s:\.]*([A-Za-z]{2}\d{2}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{2})`),
		regexp.MustCompile(`(?i)(?:IBAN|iban)[\s:\.]*([A-Za-z]{2}\d{24})`),
	}
	accountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:hesap\s*(?:no|numarası|numaram))[\s:\.]*(\d{10,20})`),
		regexp.MustCompile(`(?i)(?:banka\s*hesab)[\s:\.ıi]*(\d{10,20})`),
	}
)

func NewIBAN() *IBAN { return &IBAN{} }

func (d *IBAN) Name() string { return "iban" }

func (d *IBAN) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, p := range ibanPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			norm := normalizeIBAN(value)
			if ValidIBAN(norm) {
				entities = append(entities, entity.Detected{
					Type: entity.TypeBankInfo, Value: value, Start: loc[0], End: loc[1],
					Confidence: 0.98,
				})
				continue
			}
			// Checksum failed, but a nearby banking keyword or a known
			// national bank code still makes this worth masking.
			context := contextWindow(text, loc[0], loc[1], 50, 20)
			switch {
			case containsAny(context, "iban", "banka", "hesap"):
				entities = append(entities, entity.Detected{
					Type: entity.TypeBankInfo, Value: value, Start: loc[0], End: loc[1],
					Confidence: 0.90,
				})
			case len(norm) == 26 && gazetteer.BankCodes[norm[4:8]]:
				entities = append(entities, entity.Detected{
					Type: entity.TypeBankInfo, Value: value, Start: loc[0], End: loc[1],
					Confidence: 0.85, Context: "bank_code",
				})
			}
		}
	}

	for _, p := range ibanContextPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Detected{
				Type:       entity.TypeBankInfo,
				Value:      text[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
				Confidence: 0.99,
			})
		}
	}

	for _, p := range accountPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Detected{
				Type:       entity.TypeBankInfo,
				Value:      text[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
				Confidence: 0.90,
			})
		}
	}

	return dedupe(entities)
}

func normalizeIBAN(iban string) string {
	iban = strings.ToUpper(iban)
	iban = strings.ReplaceAll(iban, " ", "")
	iban = strings.ReplaceAll(iban, "-", "")
	return strings.Join(strings.Fields(iban), "")
}

// ValidIBAN runs the ISO 13616 mod-97 check on a normalized Turkish
// IBAN. The first four characters move to the end, letters map to
// 10..35, and the resulting numeral must be congruent to 1 mod 97.
func ValidIBAN(iban string) bool {
	if !strings.HasPrefix(iban, "TR") || len(iban) != 26 {
		return false
	}

	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			remainder = (remainder*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			remainder = (remainder*100 + v) % 97
		default:
			return false
		}
	}
	return remainder == 1
}
