package fields

import (
	"strings"
	"unicode"

	"recruitos/internal/domain"
)

// PlaceholderName is returned when every name heuristic comes up empty.
// Extraction degrades, it never fails.
const PlaceholderName = "Unknown Applicant"

// Extractor derives structured applicant fields from raw resume text. Each
// field is computed independently; a miss on one field never blocks the
// others, and Extract never returns an error.
type Extractor struct {
	dicts *Dictionaries
}

// NewExtractor creates a field extractor. A nil dicts falls back to the
// built-in dictionaries.
func NewExtractor(dicts *Dictionaries) *Extractor {
	if dicts == nil {
		dicts = Default()
	}
	return &Extractor{dicts: dicts}
}

// Extract derives every structured field from the raw text.
func (e *Extractor) Extract(rawText string) domain.ExtractedFields {
	skills := e.extractSkills(rawText)
	experience := e.extractExperience(rawText)

	return domain.ExtractedFields{
		Name:       e.extractName(rawText),
		Email:      extractEmail(rawText),
		Phone:      extractPhone(rawText),
		Location:   e.extractLocation(rawText),
		Skills:     skills,
		Experience: experience,
		Education:  extractEducation(rawText),
		Summary:    e.extractSummary(rawText, experience, skills),
		RawText:    rawText,
	}
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// isProperCase reports whether a word is a capitalized letter run, like a
// name token: upper first rune, lower rest, at least two letters.
func isProperCase(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// trimWordPunct strips leading and trailing punctuation from a token.
func trimWordPunct(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
