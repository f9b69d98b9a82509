package detect

import (
	"regexp"

	"github.com/trustmask/trustmask/internal/entity"
)

// NationalID detects Turkish national identity numbers. An identity
// number is 11 digits; the first digit is never zero and the last two
// digits are checksums over the first nine.
type NationalID struct {
	// Strict drops 11-digit numbers that have neither a valid checksum
	// nor surrounding identity keywords.
	Strict bool
}

var (
	tcContextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:TC|T\.C\.|T\.C|tc|t\.c\.|t\.c)[\s:\.]*(?:No|NO|no|Kimlik|kimlik|numara|numarası|numaram)?[\s:\.]*(\d{11})`),
		regexp.MustCompile(`(?i)(?:kimlik)[\s:\.]*(?:numara|no|numarası|numaram)?[\s:\.]*(\d{11})`),
		regexp.MustCompile(`(?i)(?:kimlik|TC|T\.C\.?)[\s:\.]*(\d{3})[\s\-]*(\d{3})[\s\-]*(\d{3})[\s\-]*(\d{2})`),
	}
	tcSpacedPattern = regexp.MustCompile(`\b(\d{3})[\s\-]+(\d{3})[\s\-]+(\d{3})[\s\-]+(\d{2})\b`)
	tcPlainPattern  = regexp.MustCompile(`\b\d{11}\b`)
)

func NewNationalID(strict bool) *NationalID {
	return &NationalID{Strict: strict}
}

func (d *NationalID) Name() string { return "national_id" }

func (d *NationalID) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	// Keyword-anchored forms are trusted without checksum validation.
	for _, p := range tcContextPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Detected{
				Type:       entity.TypeTCID,
				Value:      text[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
				Confidence: 0.98,
				Context:    "tc_context",
			})
		}
	}

	// Spaced groups: 323 030 104 29.
	for _, loc := range tcSpacedPattern.FindAllStringIndex(text, -1) {
		value := text[loc[0]:loc[1]]
		digits := digitsOf(value)
		context := contextWindow(text, loc[0], loc[0], 30, 0)
		hasContext := containsAny(context, "tc", "t.c", "kimlik", "numara")

		switch {
		case hasContext:
			entities = append(entities, entity.Detected{
				Type: entity.TypeTCID, Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.95,
			})
		case ValidTCID(digits):
			conf := 0.90
			if d.Strict {
				conf = 0.85
			}
			entities = append(entities, entity.Detected{
				Type: entity.TypeTCID, Value: value, Start: loc[0], End: loc[1],
				Confidence: conf,
			})
		}
	}

	// Plain 11-digit runs.
	for _, loc := range tcPlainPattern.FindAllStringIndex(text, -1) {
		if coveredBy(entities, loc[0], loc[1]) {
			continue
		}
		value := text[loc[0]:loc[1]]
		context := contextWindow(text, loc[0], loc[1], 50, 30)

		switch {
		case containsAny(context, "tc", "t.c", "kimlik", "numara", "no:"):
			entities = append(entities, entity.Detected{
				Type: entity.TypeTCID, Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.95,
			})
		case ValidTCID(value):
			entities = append(entities, entity.Detected{
				Type: entity.TypeTCID, Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.85,
			})
		case !d.Strict && value[0] != '0':
			entities = append(entities, entity.Detected{
				Type: entity.TypeTCID, Value: value, Start: loc[0], End: loc[1],
				Confidence: 0.60,
				Context:    "potential_tc",
			})
		}
	}

	return dedupe(entities)
}

// coveredBy reports whether [start, end) lies inside an existing span.
func coveredBy(entities []entity.Detected, start, end int) bool {
	for _, e := range entities {
		if start >= e.Start && end <= e.End {
			return true
		}
	}
	return false
}

// ValidTCID checks the two-stage checksum of a Turkish identity number.
// The tenth digit must equal (7*odd - even) mod 10 where odd sums digits
// 1,3,5,7,9 and even sums digits 2,4,6,8; the eleventh digit must equal
// the sum of the first ten mod 10.
func ValidTCID(s string) bool {
	digits := digitsOf(s)
	if len(digits) != 11 || digits[0] == '0' {
		return false
	}

	var d [11]int
	for i := 0; i < 11; i++ {
		d[i] = int(digits[i] - '0')
	}

	oddSum := d[0] + d[2] + d[4] + d[6] + d[8]
	evenSum := d[1] + d[3] + d[5] + d[7]

	check10 := (oddSum*7 - evenSum) % 10
	if check10 < 0 {
		check10 += 10
	}
	if check10 != d[9] {
		return false
	}

	total := 0
	for i := 0; i < 10; i++ {
		total += d[i]
	}
	return total%10 == d[10]
}
