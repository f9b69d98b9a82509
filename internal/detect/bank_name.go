package detect

import (
	"regexp"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/gazetteer"
)

// BankName detects Turkish bank and payment institution names.
type BankName struct {
	bankPatterns []*regexp.Regexp
}

var bankContextPattern = regexp.MustCompile(`(?i)(?:banka|bankası|bankam|bankanız)[\s:\.]+([A-ZÇĞİÖŞÜa-zçğıöşü][ \tA-ZÇĞİÖŞÜa-zçğıöşü]*)`)

// turkishCasePairs maps lowercase Turkish letters to their uppercase
// forms for building case-insensitive character classes. (?i) folding
// does not cover the dotted/dotless i distinction.
var turkishCasePairs = map[rune]rune{
	'i': 'İ', 'ı': 'I', 'ğ': 'Ğ', 'ü': 'Ü', 'ş': 'Ş', 'ö': 'Ö', 'ç': 'Ç',
}

// foldBankPattern turns a lowercase bank name into a regex matching any
// casing of it, with flexible whitespace. \b is ASCII-only in RE2, so
// the anchors are emitted only when the edge letter stays ASCII in both
// cases.
func foldBankPattern(name string) *regexp.Regexp {
	runes := []rune(name)
	var b strings.Builder
	if len(runes) > 0 && asciiEdge(runes[0]) {
		b.WriteString(`\b`)
	}
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteString(`\s+`)
		case r == '.':
			b.WriteString(`\.`)
		case r >= 'a' && r <= 'z':
			b.WriteRune('[')
			b.WriteRune(r)
			b.WriteRune(r - ('a' - 'A'))
			b.WriteRune(']')
		default:
			if upper, ok := turkishCasePairs[r]; ok {
				b.WriteRune('[')
				b.WriteRune(r)
				b.WriteRune(upper)
				b.WriteRune(']')
			} else {
				b.WriteRune(r)
			}
		}
	}
	if len(runes) > 0 && asciiEdge(runes[len(runes)-1]) {
		b.WriteString(`\b`)
	}
	return regexp.MustCompile(b.String())
}

// asciiEdge reports whether both cases of r are ASCII word characters.
// The dotted i is excluded: its uppercase form İ is not ASCII.
func asciiEdge(r rune) bool {
	return (r >= 'a' && r <= 'z' && r != 'i') || (r >= '0' && r <= '9')
}

func NewBankName() *BankName {
	d := &BankName{bankPatterns: make([]*regexp.Regexp, 0, len(gazetteer.Banks))}
	for _, bank := range gazetteer.Banks {
		d.bankPatterns = append(d.bankPatterns, foldBankPattern(bank))
	}
	return d
}

func (d *BankName) Name() string { return "bank_name" }

func (d *BankName) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, p := range d.bankPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Detected{
				Type:       entity.TypeBankName,
				Value:      text[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
				Confidence: 0.90,
			})
		}
	}

	for _, loc := range bankContextPattern.FindAllStringIndex(text, -1) {
		entities = append(entities, entity.Detected{
			Type:       entity.TypeBankName,
			Value:      text[loc[0]:loc[1]],
			Start:      loc[0],
			End:        loc[1],
			Confidence: 0.85,
		})
	}

	return dedupe(entities)
}
