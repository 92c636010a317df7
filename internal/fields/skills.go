package fields

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxFallbackSkills = 5

// extractSkills searches the whole text against every categorized keyword,
// case-insensitively. Hits are title-cased and deduplicated in match order.
// When nothing hits, a fallback pass promotes a handful of capitalized
// standalone words to provisional skills.
func (e *Extractor) extractSkills(text string) []string {
	low := strings.ToLower(text)
	titler := cases.Title(language.English)

	var skills []string
	seen := make(map[string]bool)
	for _, category := range skillCategoryOrder {
		for _, keyword := range e.dicts.SkillCategories[category] {
			if !strings.Contains(low, keyword) {
				continue
			}
			name := titler.String(strings.TrimSpace(keyword))
			if !seen[name] {
				seen[name] = true
				skills = append(skills, name)
			}
		}
	}

	if len(skills) == 0 {
		skills = e.fallbackSkills(text, titler)
	}
	return skills
}

// skillCategoryOrder keeps extraction deterministic; map iteration order
// would reshuffle the result list between runs.
var skillCategoryOrder = []string{
	"programming", "databases", "cloud_devops", "office", "soft_skills",
	"culinary", "healthcare", "education", "finance", "retail",
}

func (e *Extractor) fallbackSkills(text string, titler cases.Caser) []string {
	var skills []string
	seen := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		w = trimWordPunct(w)
		if len(w) < 4 || !isProperCase(w) || e.isNonNameWord(w) {
			continue
		}
		low := strings.ToLower(w)
		if e.dicts.FirstNames[low] || e.dicts.LastNames[low] {
			continue
		}
		name := titler.String(w)
		if seen[name] {
			continue
		}
		seen[name] = true
		skills = append(skills, name)
		if len(skills) == maxFallbackSkills {
			break
		}
	}
	return skills
}
