package detect

import (
	"regexp"

	"github.com/trustmask/trustmask/internal/entity"
)

// IP detects IPv4 and IPv6 addresses.
type IP struct{}

var (
	ipv4Pattern = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`)

	ipv6Patterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b`),
		regexp.MustCompile(`(?i)\b(?:[0-9a-fA-F]{1,4}:){1,7}:`),
		regexp.MustCompile(`(?i)\b(?:[0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}\b`),
		regexp.MustCompile(`(?i)::(?:[0-9a-fA-F]{1,4}:){0,5}[0-9a-fA-F]{1,4}\b`),
	}
	ipContextPattern = regexp.MustCompile(`(?i)(?:IP|ip\s*adres|ip\s*adresi)[\s:\.]+(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})`)

	// Loopback, unspecified and broadcast addresses identify nobody.
	specialIPs = map[string]bool{
		"0.0.0.0":         true,
		"255.255.255.255": true,
		"127.0.0.1":       true,
	}
)

func NewIP() *IP { return &IP{} }

func (d *IP) Name() string { return "ip" }

func (d *IP) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	for _, loc := range ipv4Pattern.FindAllStringIndex(text, -1) {
		value := text[loc[0]:loc[1]]
		if specialIPs[value] {
			continue
		}
		entities = append(entities, entity.Detected{
			Type: entity.TypeIPAddress, Value: value, Start: loc[0], End: loc[1],
			Confidence: 0.95,
		})
	}

	for _, p := range ipv6Patterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Detected{
				Type:       entity.TypeIPAddress,
				Value:      text[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
				Confidence: 0.90,
			})
		}
	}

	for _, loc := range ipContextPattern.FindAllStringIndex(text, -1) {
		entities = append(entities, entity.Detected{
			Type:       entity.TypeIPAddress,
			Value:      text[loc[0]:loc[1]],
			Start:      loc[0],
			End:        loc[1],
			Confidence: 0.98,
		})
	}

	return dedupe(entities)
}
