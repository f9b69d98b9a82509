package detect

import (
	"regexp"

	"github.com/trustmask/trustmask/internal/entity"
)

// ParentName detects mother and father names, including maiden name
// phrasings used for identity verification.
type ParentName struct{}

var (
	motherPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:anne\s*adı|annenin\s*adı|annemin\s*adı|annenizin\s*adı|valide\s*adı)[\s:\.]+([A-ZÇĞİÖŞÜa-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜa-zçğıöşü]+)?)`),
		regexp.MustCompile(`(?i)(?:anne\s*kızlık\s*soyad|annemin\s*kızlık\s*soyad|kızlık\s*soyad)[ıi]?[\s:\.]+([A-ZÇĞİÖŞÜa-zçğıöşü]+)`),
		regexp.MustCompile(`(?i)(?:annem|annemiz)[\s:\.]+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)`),
	}
	fatherPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:baba\s*adı|babanın\s*adı|babamın\s*adı|babanızın\s*adı|peder\s*adı)[\s:\.]+([A-ZÇĞİÖŞÜa-zçğıöşü]+(?:\s+[A-ZÇĞİÖŞÜa-zçğıöşü]+)?)`),
		regexp.MustCompile(`(?i)(?:babam|babamız)[\s:\.]+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)`),
	}
)

func NewParentName() *ParentName { return &ParentName{} }

func (d *ParentName) Name() string { return "parent_name" }

func (d *ParentName) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	add := func(patterns []*regexp.Regexp, context string) {
		for _, p := range patterns {
			for _, loc := range p.FindAllStringIndex(text, -1) {
				entities = append(entities, entity.Detected{
					Type:       entity.TypeParentName,
					Value:      text[loc[0]:loc[1]],
					Start:      loc[0],
					End:        loc[1],
					Confidence: 0.98,
					Context:    context,
				})
			}
		}
	}

	add(motherPatterns, "anne_adi")
	add(fatherPatterns, "baba_adi")

	return entities
}
