package detect

import (
	"regexp"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
)

// Email detects email addresses, including Turkish characters in the
// local part and lightly obfuscated at/dot spellings.
type Email struct{}

var (
	emailPattern        = regexp.MustCompile(`(?i)\b[A-ZÇĞİÖŞÜa-zçğıöşü0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	emailContextPattern = regexp.MustCompile(`(?i)(?:e-?posta|mail|email|eposta)[\s:\.]*(?:adres|adresi|adresim)?[\s:\.]*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)
	emailObfuscated     = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+\s*[\[\(]?\s*(?:at|@)\s*[\]\)]?\s*[A-Za-z0-9.-]+\s*[\[\(]?\s*(?:dot|\.)\s*[\]\)]?\s*[A-Za-z]{2,}\b`)
)

func NewEmail() *Email { return &Email{} }

func (d *Email) Name() string { return "email" }

func (d *Email) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
		value := text[loc[0]:loc[1]]
		if validEmail(value) {
			entities = append(entities, entity.Detected{
				Type: entity.TypeEmail, Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.98,
			})
		}
	}

	for _, m := range emailContextPattern.FindAllStringSubmatchIndex(text, -1) {
		if validEmail(text[m[2]:m[3]]) {
			entities = append(entities, entity.Detected{
				Type: entity.TypeEmail, Value: text[m[0]:m[1]], Start: m[0], End: m[1],
				Confidence: 0.99,
			})
		}
	}

	for _, loc := range emailObfuscated.FindAllStringIndex(text, -1) {
		entities = append(entities, entity.Detected{
			Type:       entity.TypeEmail,
			Value:      text[loc[0]:loc[1]],
			Start:      loc[0],
			End:        loc[1],
			Confidence: 0.85,
		})
	}

	return dedupe(entities)
}

// validEmail applies minimal shape checks: non-empty local part of at
// most 64 bytes, dotted domain, TLD of at least two letters.
func validEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if local == "" || len(local) > 64 {
		return false
	}
	if domain == "" || !strings.Contains(domain, ".") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return len(domain)-dot-1 >= 2
}
