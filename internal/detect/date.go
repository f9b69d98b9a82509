package detect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/gazetteer"
)

// Date detects birth dates, ages and years of birth. Calendrically
// invalid dates like 32/13/2004 are still reported: a mistyped birth
// date is as identifying as a correct one.
type Date struct{}

// turkishMonthAlt is the month name alternation for date patterns,
// built from the gazetteer month table. Longer names come first so a
// name cannot shadow one it prefixes.
var turkishMonthAlt = monthAlternation()

func monthAlternation() string {
	names := make([]string, 0, len(gazetteer.Months))
	for name := range gazetteer.Months {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return strings.Join(names, "|")
}

var (
	dateNumericPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{1,2})[\.\/\-](\d{1,2})[\.\/\-](\d{4})\b`),
		regexp.MustCompile(`\b(\d{1,2})[\.\/\-](\d{1,2})[\.\/\-](\d{2})\b`),
		regexp.MustCompile(`\b(\d{4})[\.\/\-](\d{1,2})[\.\/\-](\d{1,2})\b`),
	}
	dateMonthPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(` + turkishMonthAlt + `)\s+(\d{4})\b`)

	dateBirthContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:doğum\s*tarih|doğum\s*günü|doğduğu\s*tarih|d\.t\.|dt\.|doğum)[\s:ıi\.]*(\d{1,2}[\.\/\-]\d{1,2}[\.\/\-]\d{2,4})`),
		regexp.MustCompile(`(?i)(?:doğum\s*tarih|doğum\s*günü|doğduğu\s*tarih|d\.t\.|dt\.|doğum)[\s:ıi\.]*(\d{1,2}\s+(?:` + turkishMonthAlt + `)\s+\d{4})`),
		regexp.MustCompile(`(?i)(?:doğum\s*tarihim|doğduğum\s*tarih|doğduğum)[\s:ıi\.]*(\d{1,2}[\.\/\-]\d{1,2}[\.\/\-]\d{2,4})`),
		regexp.MustCompile(`(?i)(?:doğum\s*tarihim|doğduğum\s*tarih|doğduğum)[\s:ıi\.]*(\d{1,2}\s+(?:` + turkishMonthAlt + `)\s+\d{4})`),
	}
	dateAgePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:yaşım|yaşındayım)\s*(\d{1,2})`),
		regexp.MustCompile(`(?i)(\d{1,2})\s*yaşında(?:yım|yız|sınız|lar)?`),
		regexp.MustCompile(`(?i)(?:yaş|yas)[\s:\.]*(\d{1,2})\b`),
	}
	dateYearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{4})\s*doğumluyum`),
		regexp.MustCompile(`(?i)doğum\s*yılım[\s:\.]*(\d{4})`),
		regexp.MustCompile(`(?i)(\d{4})\s*yılında\s*doğdum`),
	}
)

func NewDate() *Date { return &Date{} }

func (d *Date) Name() string { return "date" }

func (d *Date) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	add := func(patterns []*regexp.Regexp, conf float64, context string) {
		for _, p := range patterns {
			for _, loc := range p.FindAllStringIndex(text, -1) {
				entities = append(entities, entity.Detected{
					Type:       entity.TypeBirthDate,
					Value:      text[loc[0]:loc[1]],
					Start:      loc[0],
					End:        loc[1],
					Confidence: conf,
					Context:    context,
				})
			}
		}
	}

	add(dateNumericPatterns, 0.75, "")
	add([]*regexp.Regexp{dateMonthPattern}, 0.95, "")
	add(dateBirthContextPatterns, 0.99, "")
	add(dateAgePatterns, 0.70, "age")
	add(dateYearPatterns, 0.95, "")

	return dedupe(entities)
}
