package fields

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	summaryMinLen = 50
	summaryMaxLen = 300
)

var summaryHeaderRe = regexp.MustCompile(`(?i)^\s*(?:professional\s+)?(?:summary|objective|profile|about\s+me)\s*:?\s*$`)

// extractSummary returns the first substantial line following an explicit
// summary section header, or synthesizes one from the experience descriptor
// and the leading skills.
func (e *Extractor) extractSummary(text, experience string, skills []string) string {
	lines := nonEmptyLines(text)
	for i, line := range lines {
		if !summaryHeaderRe.MatchString(line) {
			continue
		}
		for _, next := range lines[i+1:] {
			if n := len(next); n >= summaryMinLen && n <= summaryMaxLen {
				return next
			}
			break
		}
	}
	return synthesizeSummary(experience, skills)
}

func synthesizeSummary(experience string, skills []string) string {
	lead := skills
	if len(lead) > 3 {
		lead = lead[:3]
	}

	switch {
	case experience != notSpecified && len(lead) > 0:
		return fmt.Sprintf("Candidate with %s of experience. Key skills include %s.",
			strings.TrimSuffix(experience, " (estimated)"), strings.Join(lead, ", "))
	case len(lead) > 0:
		return fmt.Sprintf("Candidate with skills in %s.", strings.Join(lead, ", "))
	case experience != notSpecified:
		return fmt.Sprintf("Candidate with %s of experience.", strings.TrimSuffix(experience, " (estimated)"))
	default:
		return "Candidate profile generated from submitted resume."
	}
}
