package detect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/gazetteer"
)

// Address detects Turkish postal addresses, from keyword-anchored free
// text down to bare building numbers, plus city/district mentions.
type Address struct{}

var (
	homeAddressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:ev\s*adres|ev\s*adresi|evimin\s*adresi|ikametgah|ikamet\s*adres)[\s:ıi\.]+([^\.,\n]{15,200})`),
		regexp.MustCompile(`(?i)Ev\s*adresiniz[\s:]*\n?([A-Za-zÇçĞğİıÖöŞşÜü\s,\.:No\d]{5,200})`),
	}
	workAddressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:iş\s*adres|iş\s*adresi|işyeri\s*adres|ofis\s*adres|şirket\s*adres)[\s:ıi\.]+([^\.,\n@]{15,200})`),
		regexp.MustCompile(`(?i)İş\s*adresiniz[\s:]*\n?([A-Za-zÇçĞğİıÖöŞşÜü\s,\.:No\d]{5,200})`),
	}
	officePattern = regexp.MustCompile(`(?i)\b(?:Ofis|Büro|Daire|Kat)[\s:\.]*(\d+)\b`)

	addressContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:adres|adresim|adresimiz|teslimat\s*adres|fatura\s*adres)[\s:ıi\.]+([^\.,\n@]{15,200})`),
		// Full form: "Barbaros Mahallesi, Deniz Sokak No:12 Daire:5"
		regexp.MustCompile(`([A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?\s+(?:mahallesi|mah\.?)[\s,]+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?\s+(?:sokak|sokağı|sok\.?|cadde|caddesi|cad\.?)[\s,]+(?:No|no)[\s:\.]*\d+[\s,]+(?:Daire|daire|d\.)[\s:\.]*\d+)`),
		// Office form: "Teknopark Caddesi No:45, Ofis:302"
		regexp.MustCompile(`([A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?\s+(?:caddesi|cad\.?)[\s,]+(?:No|no)[\s:\.]*\d+[\s,]+(?:Ofis|ofis)[\s:\.]*\d+)`),
	}
	mahallePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([A-Za-zÇçĞğİıÖöŞşÜü\s]+)\s+(?:mahallesi|mah\.?)\b`),
		regexp.MustCompile(`(?i)([A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?)\s+(?:mahallesi|mah\.?)[\s,]+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?)\s+(?:sokak|sokağı|sok\.?|cadde|caddesi|cad\.?)[\s,]+`),
	}
	streetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([A-Za-zÇçĞğİıÖöŞşÜü\s]+)\s+(?:caddesi|cad\.?|sokağı|sok\.?|bulvarı|blv\.?)\b`),
		regexp.MustCompile(`([A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?)\s+(?:sokak|sokağı|sok\.?)[\s,]+(?:No|no)[\s:\.]*(\d+)[\s,]+(?:Daire|daire|d\.)[\s:\.]*(\d+)`),
	}
	buildingNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:no|numara)[\s:\.]*(\d+)[\s/,]*(?:daire|d\.?|kat|k\.?)[\s:\.]*(\d+)`),
		regexp.MustCompile(`(?i)\bno[\s:\.]*(\d+)`),
		regexp.MustCompile(`(?i)\bdaire[\s:\.]*(\d+)`),
	}
	postalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{5})\s+([A-Za-zÇçĞğİıÖöŞşÜü]+(?:/[A-Za-zÇçĞğİıÖöŞşÜü]+)?)\b`),
		regexp.MustCompile(`(?i)(?:posta\s*kodu|pk)[\s:\.]*(\d{5})`),
	}
	cityDistrictKeyword = regexp.MustCompile(`(?i)(?:il|ilçe|şehir)[\s:\.]+([A-Za-zÇçĞğİıÖöŞşÜü]+)`)
	locationPairPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Za-zÇçĞğİıÖöŞşÜü]+)[\s/]+([A-Za-zÇçĞğİıÖöŞşÜü]+)\b`),
		regexp.MustCompile(`([A-Za-zÇçĞğİıÖöŞşÜü]+)\s*/\s*([A-Za-zÇçĞğİıÖöŞşÜü]+)`),
	}
	directLocationPattern = regexp.MustCompile(`\b([A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?)\s*(?:/|,)\s*([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)\b`)
)

func NewAddress() *Address { return &Address{} }

func (d *Address) Name() string { return "address" }

func (d *Address) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	add := func(t entity.Type, conf float64, start, end int) {
		entities = append(entities, entity.Detected{
			Type: t, Value: text[start:end], Start: start, End: end,
			Confidence: conf,
		})
	}

	for _, p := range homeAddressPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			add(entity.TypeHomeAddress, 0.98, loc[0], loc[1])
		}
	}
	for _, p := range workAddressPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			add(entity.TypeWorkAddress, 0.98, loc[0], loc[1])
		}
	}
	for _, loc := range officePattern.FindAllStringIndex(text, -1) {
		add(entity.TypeWorkAddress, 0.90, loc[0], loc[1])
	}

	for _, p := range addressContextPatterns {
		for _, m := range p.FindAllStringSubmatchIndex(text, -1) {
			captured := text[m[2]:m[3]]
			// Email addresses and domains share the keyword "adres".
			if strings.Contains(captured, "@") || strings.Contains(captured, ".com") {
				continue
			}
			add(entity.TypeAddress, 0.95, m[0], m[1])
		}
	}
	for _, p := range mahallePatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			add(entity.TypeAddress, 0.90, loc[0], loc[1])
		}
	}
	for _, p := range streetPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			add(entity.TypeAddress, 0.90, loc[0], loc[1])
		}
	}
	for _, p := range buildingNumberPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			add(entity.TypeAddress, 0.85, loc[0], loc[1])
		}
	}
	for _, p := range postalPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			add(entity.TypeAddress, 0.88, loc[0], loc[1])
		}
	}

	for _, m := range cityDistrictKeyword.FindAllStringSubmatchIndex(text, -1) {
		if gazetteer.IsPlace(gazetteer.ToLower(text[m[2]:m[3]])) {
			add(entity.TypeCityDistrict, 0.95, m[0], m[1])
		}
	}
	for _, p := range locationPairPatterns {
		for _, m := range p.FindAllStringSubmatchIndex(text, -1) {
			first := gazetteer.ToLower(text[m[2]:m[3]])
			second := gazetteer.ToLower(text[m[4]:m[5]])
			if gazetteer.IsPlace(first) || gazetteer.IsPlace(second) {
				add(entity.TypeCityDistrict, 0.85, m[0], m[1])
			}
		}
	}
	for _, m := range directLocationPattern.FindAllStringSubmatchIndex(text, -1) {
		first := gazetteer.ToLower(text[m[2]:m[3]])
		second := gazetteer.ToLower(text[m[4]:m[5]])
		if gazetteer.IsPlace(first) || gazetteer.IsPlace(second) {
			add(entity.TypeCityDistrict, 0.90, m[0], m[1])
		}
	}

	return dedupeLongest(entities)
}

// dedupeLongest prunes overlapping address hits preferring the longest
// span: an address fragment inside a fuller address adds nothing.
func dedupeLongest(entities []entity.Detected) []entity.Detected {
	if len(entities) == 0 {
		return entities
	}

	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Length() != b.Length() {
			return a.Length() > b.Length()
		}
		return a.Confidence > b.Confidence
	})

	result := make([]entity.Detected, 0, len(entities))
	for _, e := range entities {
		overlaps := false
		for i, kept := range result {
			if e.Overlaps(kept) {
				if e.Length() > kept.Length() {
					result[i] = e
				}
				overlaps = true
				break
			}
		}
		if !overlaps {
			result = append(result, e)
		}
	}
	return result
}
