package detect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/gazetteer"
)

// Name detects personal names with four layered methods: strong context
// phrasings, honorifics, first/surname gazetteer lookup with adjacent
// word fusion, and a capitalized-pair heuristic gated by a common word
// stop list.
type Name struct{}

type namePattern struct {
	re *regexp.Regexp
	t  entity.Type
}

var strongContextPatterns = []namePattern{
	{regexp.MustCompile(`(?im)(?:adım|ismim|benim\s+adım|benim\s+ismim)[\s:]+([A-ZÇĞİÖŞÜa-zçğıöşü]+)`), entity.TypeName},
	{regexp.MustCompile(`(?im)(?:soyadım|soyismim|soy\s*adım|soy\s*ismim)[\s:]+([A-ZÇĞİÖŞÜa-zçğıöşü]+)`), entity.TypeSurname},
	{regexp.MustCompile(`(?im)(?:anne\s*kızlık\s*soyad|annemin\s*kızlık\s*soyad|kızlık\s*soyad)[ıi]?[\s:]+([A-ZÇĞİÖŞÜa-zçğıöşü]+)`), entity.TypeSurname},
	{regexp.MustCompile(`(?im)(?:baba\s*adı|anne\s*adı|babasının\s*adı|annesinin\s*adı)[\s:]+([A-ZÇĞİÖŞÜa-zçğıöşü]+)`), entity.TypeName},
	{regexp.MustCompile(`(?m)(?:^|\.\s+)[Bb]en\s+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)`), entity.TypeName},
	{regexp.MustCompile(`(?im)(?:merhaba|selam|günaydın|iyi\s+günler)[\s,]+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)`), entity.TypeName},
	{regexp.MustCompile(`(?im)(?:müşteri|abone|kullanıcı|üye)[\s:]+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)(?:\s+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+))?`), entity.TypeFullName},
	{regexp.MustCompile(`(?m)[Ss]ayın\s+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)(?:\s+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+))?`), entity.TypeFullName},
	{regexp.MustCompile(`(?m)([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)\s+(?:[Bb]ey|[Hh]anım|[Ee]fendi)`), entity.TypeName},
	{regexp.MustCompile(`(?m)(?:[Dd]r\.?|[Pp]rof\.?|[Dd]oç\.?|[Aa]v\.?|[Mm]üh\.?)\s+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)(?:\s+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+))?`), entity.TypeFullName},
	{regexp.MustCompile(`(?m)([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)'(?:in|ın|un|ün|nin|nın|nun|nün|e|a|ye|ya)`), entity.TypeName},
}

var (
	honorificAfterPattern = regexp.MustCompile(`(?i)\b([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)\s+(bey|hanım|efendi|beyefendi|hanımefendi)\b`)
	capitalWordPattern    = regexp.MustCompile(`\b([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)\b`)
	capitalPairPattern    = regexp.MustCompile(`\b([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)\s+([A-ZÇĞİÖŞÜ][a-zçğıöşü]+)\b`)
)

func NewName() *Name { return &Name{} }

func (d *Name) Name() string { return "name" }

func (d *Name) Detect(text string) []entity.Detected {
	var entities []entity.Detected
	entities = append(entities, d.detectStrongContext(text)...)
	entities = append(entities, d.detectHonorifics(text)...)
	entities = append(entities, d.detectFromGazetteer(text)...)
	entities = append(entities, d.detectCapitalizedPairs(text)...)
	return dedupeNames(entities)
}

func (d *Name) detectStrongContext(text string) []entity.Detected {
	var entities []entity.Detected

	for _, np := range strongContextPatterns {
		for _, m := range np.re.FindAllStringSubmatchIndex(text, -1) {
			if m[2] < 0 {
				continue
			}
			captured := strings.ToLower(text[m[2]:m[3]])
			if gazetteer.NameLikeCommonWords[captured] {
				continue
			}
			if len([]rune(captured)) < 3 {
				continue
			}
			entities = append(entities, entity.Detected{
				Type:       np.t,
				Value:      text[m[0]:m[1]],
				Start:      m[0],
				End:        m[1],
				Confidence: 0.95,
				Context:    "strong_context",
			})
		}
	}
	return entities
}

func (d *Name) detectHonorifics(text string) []entity.Detected {
	var entities []entity.Detected

	for _, m := range honorificAfterPattern.FindAllStringSubmatchIndex(text, -1) {
		name := strings.ToLower(text[m[2]:m[3]])
		if gazetteer.NameLikeCommonWords[name] || len([]rune(name)) < 3 {
			continue
		}
		entities = append(entities, entity.Detected{
			Type:       entity.TypeName,
			Value:      text[m[0]:m[1]],
			Start:      m[0],
			End:        m[1],
			Confidence: 0.95,
			Context:    "honorific_after",
		})
	}
	return entities
}

type tokenSpan struct {
	word       string
	start, end int
}

func (d *Name) detectFromGazetteer(text string) []entity.Detected {
	var entities []entity.Detected

	var words []tokenSpan
	for _, m := range capitalWordPattern.FindAllStringIndex(text, -1) {
		words = append(words, tokenSpan{word: text[m[0]:m[1]], start: m[0], end: m[1]})
	}

	for i, w := range words {
		lower := gazetteer.ToLower(w.word)
		if gazetteer.NameLikeCommonWords[lower] {
			continue
		}
		if len([]rune(lower)) < 3 {
			continue
		}

		switch {
		case gazetteer.FirstNames[lower]:
			// A surname-looking word immediately after makes a full name.
			if i+1 < len(words) {
				next := words[i+1]
				nextLower := gazetteer.ToLower(next.word)
				if next.start-w.end <= 2 && !gazetteer.NameLikeCommonWords[nextLower] {
					if gazetteer.Surnames[nextLower] || len([]rune(nextLower)) >= 3 {
						entities = append(entities, entity.Detected{
							Type:       entity.TypeFullName,
							Value:      text[w.start:next.end],
							Start:      w.start,
							End:        next.end,
							Confidence: 0.90,
							Context:    "database_match",
						})
						continue
					}
				}
			}
			entities = append(entities, entity.Detected{
				Type:       entity.TypeName,
				Value:      w.word,
				Start:      w.start,
				End:        w.end,
				Confidence: 0.80,
				Context:    "database_match",
			})
		case gazetteer.Surnames[lower]:
			entities = append(entities, entity.Detected{
				Type:       entity.TypeSurname,
				Value:      w.word,
				Start:      w.start,
				End:        w.end,
				Confidence: 0.70,
				Context:    "database_surname",
			})
		}
	}
	return entities
}

func (d *Name) detectCapitalizedPairs(text string) []entity.Detected {
	var entities []entity.Detected

	for _, m := range capitalPairPattern.FindAllStringSubmatchIndex(text, -1) {
		first := gazetteer.ToLower(text[m[2]:m[3]])
		second := gazetteer.ToLower(text[m[4]:m[5]])

		if gazetteer.NameLikeCommonWords[first] || gazetteer.NameLikeCommonWords[second] {
			continue
		}
		if len([]rune(first)) < 3 || len([]rune(second)) < 3 {
			continue
		}

		firstKnown := gazetteer.FirstNames[first] || gazetteer.Surnames[first]
		secondKnown := gazetteer.FirstNames[second] || gazetteer.Surnames[second]
		bothLong := len([]rune(first)) >= 4 && len([]rune(second)) >= 4

		if !firstKnown && !secondKnown && !bothLong {
			continue
		}

		before := strings.TrimSpace(text[:m[0]])
		sentenceStart := before == "" || strings.ContainsRune(".!?:,", rune(before[len(before)-1]))

		confidence := 0.60
		switch {
		case firstKnown && secondKnown:
			confidence = 0.90
		case firstKnown || secondKnown:
			confidence = 0.75
		case !sentenceStart:
			confidence = 0.65
		}

		entities = append(entities, entity.Detected{
			Type:       entity.TypeFullName,
			Value:      text[m[0]:m[1]],
			Start:      m[0],
			End:        m[1],
			Confidence: confidence,
			Context:    "capitalized_pair",
		})
	}
	return entities
}

// dedupeNames prunes overlapping name hits. A full name beats partial
// names regardless of confidence; otherwise higher confidence wins.
func dedupeNames(entities []entity.Detected) []entity.Detected {
	if len(entities) == 0 {
		return entities
	}

	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return a.Length() > b.Length()
	})

	result := make([]entity.Detected, 0, len(entities))
	for _, e := range entities {
		handled := false
		for i, kept := range result {
			if !e.Overlaps(kept) {
				continue
			}
			switch {
			case kept.Type == entity.TypeFullName:
			case e.Type == entity.TypeFullName:
				result[i] = e
			case kept.Confidence < e.Confidence:
				result[i] = e
			}
			handled = true
			break
		}
		if !handled {
			result = append(result, e)
		}
	}
	return result
}
