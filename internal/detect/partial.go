package detect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/trustmask/trustmask/internal/entity"
)

// PartialData detects fragments of personal data exchanged in customer
// verification dialogues: a bare birth year, the last digits of an
// identity number, phone or card, given as a one-line answer to a
// question on a previous line.
type PartialData struct{}

var (
	partialYearAnswer  = regexp.MustCompile(`(?:^|[:\s]+)(19[5-9]\d|20[0-2]\d)[.,!?]?\s*$`)
	partialDigitAnswer = regexp.MustCompile(`(?:^|[:\s]+)(\d{2,4})[.,!?]?\s*$`)
	partialPhoneAnswer = regexp.MustCompile(`(?:^|[:\s]+)(\d{2,3})[.,!?]?\s*$`)

	yearInlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:doğum|dogum)\s*(?:yılı|yili|yılınız|yiliniz)[\s:]*(\d{4})`),
		regexp.MustCompile(`(?i)(\d{4})\s*(?:doğumluyum|dogumluyum)`),
		regexp.MustCompile(`(?i)(?:yılı|yili|yılınız|yiliniz)[\s:]+(\d{4})`),
	}
	tcInlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:TC|T\.C\.|kimlik).*?(?:son\s*[234]?\s*hane).*?(?:\s+|:|dır|dir|dur|dür|ise|olarak)?\s*(\d{2,4})\b`),
		regexp.MustCompile(`(?i)(?:son\s*[234]?\s*hane).*?(?:\s+|:|dır|dir|dur|dür|ise|olarak)?\s*(\d{2,4})\b`),
	}
	phoneInlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:telefon|tel|cep|numara).*?(?:son\s*[23]?\s*hane).*?[\s:]+(\d{2,3})`),
		regexp.MustCompile(`(?i)(?:son\s*[23]?\s*hane)[\s:]+(\d{2,3})`),
	}
	cardInlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:kart|kredi\s*kart).*?(?:son\s*4\s*hane).*?[:\s]+(\d{4})\b`),
		regexp.MustCompile(`(?i)(?:son\s*4\s*hane)[:\s]*(\d{4})\b`),
	}
)

func NewPartialData() *PartialData { return &PartialData{} }

func (d *PartialData) Name() string { return "partial_data" }

func (d *PartialData) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	lines := strings.Split(text, "\n")
	lineStart := 0
	for i, line := range lines {
		// Up to four preceding lines carry the question; dialogues often
		// have blank lines between turns.
		var contextLines []string
		for k := 1; k <= 4 && i-k >= 0; k++ {
			contextLines = append(contextLines, strings.ToLower(lines[i-k]))
		}
		prevLine := ""
		if i > 0 {
			prevLine = strings.ToLower(lines[i-1])
		}
		context := strings.Join(contextLines, " ")

		if m := partialYearAnswer.FindStringSubmatchIndex(line); m != nil {
			hasBirthContext := containsAny(context, "doğum", "dogum") ||
				containsAny(prevLine, "yıl", "yil", "doğum yılınızı", "doğum yılı")
			if hasBirthContext {
				entities = append(entities, entity.Detected{
					Type:       entity.TypeBirthYear,
					Value:      line[m[2]:m[3]],
					Start:      lineStart + m[2],
					End:        lineStart + m[3],
					Confidence: 0.98,
					Context:    "birth_year_answer",
				})
			}
		}

		if m := partialDigitAnswer.FindStringSubmatchIndex(line); m != nil {
			value := line[m[2]:m[3]]
			num, _ := strconv.Atoi(value)
			isYear := num >= 1950 && num <= 2025

			hasTCContext := containsAny(context, "tc", "t.c", "kimlik") ||
				strings.Contains(prevLine, "kimlik numaranızın son") ||
				(strings.Contains(prevLine, "son") && strings.Contains(prevLine, "hane")) ||
				containsAny(prevLine, "doğrulama", "ek doğrulama")
			if !isYear && hasTCContext {
				entities = append(entities, entity.Detected{
					Type:       entity.TypeTCID,
					Value:      value,
					Start:      lineStart + m[2],
					End:        lineStart + m[3],
					Confidence: 0.98,
					Context:    "tc_partial_answer",
				})
			}
		}

		if m := partialPhoneAnswer.FindStringSubmatchIndex(line); m != nil {
			hasPhoneContext := containsAny(context, "telefon", "numara", "tel", "cep", "hat") ||
				strings.Contains(prevLine, "telefon numaranızın son") ||
				(strings.Contains(prevLine, "son") && strings.Contains(prevLine, "hane")) ||
				strings.Contains(prevLine, "doğrulama")
			if hasPhoneContext {
				entities = append(entities, entity.Detected{
					Type:       entity.TypePhone,
					Value:      line[m[2]:m[3]],
					Start:      lineStart + m[2],
					End:        lineStart + m[3],
					Confidence: 0.98,
					Context:    "phone_partial_answer",
				})
			}
		}

		lineStart += len(line) + 1
	}

	addInline := func(patterns []*regexp.Regexp, t entity.Type, context string) {
		for _, p := range patterns {
			for _, m := range p.FindAllStringSubmatchIndex(text, -1) {
				entities = append(entities, entity.Detected{
					Type:       t,
					Value:      text[m[2]:m[3]],
					Start:      m[2],
					End:        m[3],
					Confidence: 0.95,
					Context:    context,
				})
			}
		}
	}

	addInline(yearInlinePatterns, entity.TypeBirthYear, "birth_year_inline")
	addInline(tcInlinePatterns, entity.TypeTCID, "tc_partial_inline")
	addInline(phoneInlinePatterns, entity.TypePhone, "phone_partial_inline")
	addInline(cardInlinePatterns, entity.TypeCardInfo, "card_partial")

	return dedupe(entities)
}
