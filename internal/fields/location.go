package fields

import (
	"regexp"
	"strings"
)

// Ordered from most to least specific. The first accepted match wins.
var locationPatterns = []*regexp.Regexp{
	// City, ST 12345 / City, ST
	regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)?),\s*([A-Z]{2})(?:\s+\d{5})?`),
	// City, State / City, Country (spelled out)
	regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)?),\s*([A-Z][a-z]+(?:\s[A-Z][a-z]+)?)`),
}

// extractLocation matches location-shaped patterns and keeps the first one
// containing a known location indicator. The indicator check filters out
// coincidental comma-separated text like "Thanks, John".
func (e *Extractor) extractLocation(text string) string {
	for _, re := range locationPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if e.looksLikeLocation(m) {
				return strings.TrimSpace(m)
			}
		}
	}
	return ""
}

func (e *Extractor) looksLikeLocation(candidate string) bool {
	low := " " + strings.ToLower(candidate)
	for _, indicator := range e.dicts.LocationIndicators {
		if strings.Contains(low, indicator) {
			return true
		}
	}
	return false
}
