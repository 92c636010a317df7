package fields

import (
	"fmt"
	"regexp"
	"strings"
)

const notSpecified = "Not specified"

var (
	explicitYearsRe = regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)(?:\s+of)?\s+experience`)
	dateRangeRe     = regexp.MustCompile(`(?i)(?:19|20)\d{2}\s*(?:-|–|—|to)\s*(?:(?:19|20)\d{2}|present|current)`)

	degreeRes = []struct {
		re    *regexp.Regexp
		level string
	}{
		{regexp.MustCompile(`(?i)\b(?:ph\.?d|doctorate|doctoral)\b`), "Doctorate"},
		{regexp.MustCompile(`(?i)(?:\b(?:master'?s?|mba|msc)\b|m\.s\.|m\.a\.)`), "Master's Degree"},
		{regexp.MustCompile(`(?i)(?:\b(?:bachelor'?s?|bsc)\b|b\.s\.|b\.a\.)`), "Bachelor's Degree"},
		{regexp.MustCompile(`(?i)\bassociate'?s?\s+degree\b|\ba\.a\.s?\b`), "Associate Degree"},
		{regexp.MustCompile(`(?i)\bhigh\s+school\b|\bged\b`), "High School"},
	}

	institutionKeywords = []string{
		"university", "college", "institute", "school", "graduated", "degree",
	}
)

// extractExperience prefers an explicit "N years of experience" statement.
// Without one it counts employment date ranges and estimates two years per
// range, clearly labeled as an estimate.
func (e *Extractor) extractExperience(text string) string {
	if m := explicitYearsRe.FindStringSubmatch(text); m != nil {
		return m[1] + " years"
	}

	ranges := dateRangeRe.FindAllString(text, -1)
	if len(ranges) > 0 {
		years := len(ranges) * 2
		if years < 1 {
			years = 1
		}
		return fmt.Sprintf("~%d years (estimated)", years)
	}
	return notSpecified
}

// extractEducation reports the highest degree keyword present, falling back
// to the first short line mentioning an education institution.
func extractEducation(text string) string {
	for _, d := range degreeRes {
		if d.re.MatchString(text) {
			return d.level
		}
	}

	for _, line := range nonEmptyLines(text) {
		if len(line) >= 100 {
			continue
		}
		low := strings.ToLower(line)
		for _, kw := range institutionKeywords {
			if strings.Contains(low, kw) {
				return line
			}
		}
	}
	return notSpecified
}
