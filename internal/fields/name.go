package fields

import (
	"regexp"
	"strings"
)

const (
	// Scoring weights for an adjacent word pair. Kept as named constants so
	// the weights stay unit-testable apart from the line scanning.
	scoreKnownFirstName = 50
	scoreKnownLastName  = 50
	scoreProperCase     = 20
	scoreMaxLineBonus   = 20
	scoreLineDecay      = 2

	penaltyJobTitle   = -90
	penaltyPlaceName  = -80
	penaltySectionKey = -100

	nameScanLines = 10
)

// nameCandidate is a transient scored word pair considered as the applicant
// name. Generated in bulk and discarded once the best one is picked.
type nameCandidate struct {
	text  string
	score int
	line  int
}

var nameLabelRe = regexp.MustCompile(`(?im)^\s*(?:name|applicant|candidate)\s*[:\-]\s*(.+)$`)

// extractName finds the most plausible applicant name in the document.
// It scores adjacent word pairs on the first lines, then walks a chain of
// progressively blunter fallbacks. It never fails: the placeholder is the
// final resort.
func (e *Extractor) extractName(text string) string {
	lines := nonEmptyLines(text)

	if best, ok := e.bestScoredCandidate(lines); ok {
		return best.text
	}
	if name, ok := e.firstCapitalizedPair(lines); ok {
		return name
	}
	if name, ok := labeledName(text); ok {
		return name
	}
	if name, ok := e.firstCapitalizedTokens(text); ok {
		return name
	}
	return PlaceholderName
}

func (e *Extractor) bestScoredCandidate(lines []string) (nameCandidate, bool) {
	limit := nameScanLines
	if len(lines) < limit {
		limit = len(lines)
	}

	best := nameCandidate{}
	for i := 0; i < limit; i++ {
		if e.skipLineForName(lines[i]) {
			continue
		}
		words := strings.Fields(lines[i])
		for j := 0; j+1 < len(words); j++ {
			first := trimWordPunct(words[j])
			second := trimWordPunct(words[j+1])
			if first == "" || second == "" {
				continue
			}
			score := e.scorePair(first, second, i)
			if score > best.score {
				best = nameCandidate{text: first + " " + second, score: score, line: i}
			}
		}
	}
	return best, best.score > 0
}

// scorePair rates an adjacent word pair as a name candidate. Dictionary hits
// dominate, early lines get a small bonus, and words that look like job
// titles, places, or section headings sink the pair.
func (e *Extractor) scorePair(first, second string, lineIdx int) int {
	lowFirst := strings.ToLower(first)
	lowSecond := strings.ToLower(second)

	score := 0
	if e.dicts.FirstNames[lowFirst] {
		score += scoreKnownFirstName
	}
	if e.dicts.LastNames[lowSecond] {
		score += scoreKnownLastName
	}
	if isProperCase(first) && isProperCase(second) {
		score += scoreProperCase
	}

	// The line bonus breaks ties between real candidates; position alone is
	// not evidence that a pair is a name.
	if score > 0 {
		if bonus := scoreMaxLineBonus - scoreLineDecay*lineIdx; bonus > 0 {
			score += bonus
		}
	}

	for _, w := range []string{lowFirst, lowSecond} {
		switch {
		case e.dicts.SectionKeywords[w]:
			score += penaltySectionKey
		case e.dicts.JobTitleWords[w]:
			score += penaltyJobTitle
		case e.dicts.PlaceNames[w]:
			score += penaltyPlaceName
		}
	}
	return score
}

// skipLineForName filters lines that cannot contain the applicant name:
// section headers, contact lines, and address-looking lines.
func (e *Extractor) skipLineForName(line string) bool {
	if emailRe.MatchString(line) || phoneRunRe.MatchString(line) {
		return true
	}
	low := strings.ToLower(line)
	if strings.Contains(low, "http") || strings.Contains(low, "linkedin") {
		return true
	}
	if strings.ContainsAny(line, "0123456789") {
		return true
	}
	// A short line made entirely of section vocabulary is a header.
	words := strings.Fields(low)
	if len(words) <= 3 && len(words) > 0 {
		allSection := true
		for _, w := range words {
			if !e.dicts.SectionKeywords[strings.Trim(w, ":")] {
				allSection = false
				break
			}
		}
		if allSection {
			return true
		}
	}
	return strings.HasSuffix(strings.TrimSpace(line), ":")
}

// firstCapitalizedPair is the first fallback: the first line holding two
// adjacent properly capitalized words that is not recognizably a non-name
// phrase.
func (e *Extractor) firstCapitalizedPair(lines []string) (string, bool) {
	limit := nameScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		if e.skipLineForName(lines[i]) {
			continue
		}
		words := strings.Fields(lines[i])
		for j := 0; j+1 < len(words); j++ {
			first := trimWordPunct(words[j])
			second := trimWordPunct(words[j+1])
			if !isProperCase(first) || !isProperCase(second) {
				continue
			}
			if e.isNonNameWord(first) || e.isNonNameWord(second) {
				continue
			}
			return first + " " + second, true
		}
	}
	return "", false
}

func (e *Extractor) isNonNameWord(word string) bool {
	low := strings.ToLower(word)
	return e.dicts.JobTitleWords[low] || e.dicts.PlaceNames[low] ||
		e.dicts.SectionKeywords[low] || e.dicts.NoiseWords[low]
}

// labeledName looks for an explicit "Name:" / "Applicant:" label.
func labeledName(text string) (string, bool) {
	m := nameLabelRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	words := strings.Fields(name)
	if len(words) == 0 {
		return "", false
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " "), true
}

// firstCapitalizedTokens is the last resort before the placeholder: the first
// two properly capitalized tokens anywhere in the text.
func (e *Extractor) firstCapitalizedTokens(text string) (string, bool) {
	var picked []string
	for _, w := range strings.Fields(text) {
		w = trimWordPunct(w)
		if !isProperCase(w) || e.isNonNameWord(w) {
			continue
		}
		picked = append(picked, w)
		if len(picked) == 2 {
			return strings.Join(picked, " "), true
		}
	}
	return "", false
}
