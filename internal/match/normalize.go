package match

import (
	"strings"
	"unicode"
)

// normalizeText lowercases, strips punctuation, and collapses whitespace.
// Shared by the name and location normalizers.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// nameVariations expands a full name into its alias variants. Each token is
// substituted one at a time against the nickname dictionary in both
// directions, so "bob smith" yields "robert smith" and vice versa.
func nameVariations(name string) []string {
	normalized := normalizeText(name)
	tokens := strings.Fields(normalized)

	variants := []string{normalized}
	seen := map[string]bool{normalized: true}
	for i, token := range tokens {
		for _, alt := range expandToken(token, nicknameAliases, nicknameReverse) {
			if alt == token {
				continue
			}
			sub := make([]string, len(tokens))
			copy(sub, tokens)
			sub[i] = alt
			v := strings.Join(sub, " ")
			if !seen[v] {
				seen[v] = true
				variants = append(variants, v)
			}
		}
	}
	return variants
}

// emailVariations lowercases the address, canonicalizes gmail locals
// (dots and +suffix are routing noise), and swaps the domain against the
// typo dictionary in both directions.
func emailVariations(email string) []string {
	email = strings.ToLower(strings.TrimSpace(email))
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return []string{email}
	}

	if domain == "gmail.com" || hasCanonical(domain, domainReverse, "gmail.com") {
		if at := strings.Index(local, "+"); at >= 0 {
			local = local[:at]
		}
		local = strings.ReplaceAll(local, ".", "")
	}

	variants := []string{local + "@" + domain}
	seen := map[string]bool{variants[0]: true}
	for _, alt := range expandToken(domain, emailDomainTypos, domainReverse) {
		v := local + "@" + alt
		if !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}
	return variants
}

func hasCanonical(alias string, reverse map[string][]string, canonical string) bool {
	for _, c := range reverse[alias] {
		if c == canonical {
			return true
		}
	}
	return false
}

// phoneVariations strips separators and the leading plus, then tries the
// number with known country calling codes removed and with a leading US "1"
// added or removed.
func phoneVariations(phone string) []string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	base := digits.String()
	if base == "" {
		return nil
	}

	variants := []string{base}
	seen := map[string]bool{base: true}
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	for _, code := range countryCallingCodes {
		if strings.HasPrefix(base, code) && len(base)-len(code) >= 7 {
			add(base[len(code):])
		}
	}
	if strings.HasPrefix(base, "1") && len(base) == 11 {
		add(base[1:])
	}
	if len(base) == 10 {
		add("1" + base)
	}
	return variants
}

// locationVariations expands a city through the alias dictionary in both
// directions.
func locationVariations(location string) []string {
	normalized := normalizeText(location)
	variants := []string{normalized}
	seen := map[string]bool{normalized: true}
	for _, alt := range expandToken(normalized, cityAliases, cityReverse) {
		alt = normalizeText(alt)
		if !seen[alt] {
			seen[alt] = true
			variants = append(variants, alt)
		}
	}
	return variants
}

// partialCityMatch reports whether one side names a token of the other's
// multi-word city, e.g. "salt lake" against "salt lake city".
func partialCityMatch(a, b string) bool {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	longTokens := strings.Fields(longer)
	if len(longTokens) < 2 {
		return false
	}
	shortTokens := strings.Fields(shorter)
	if len(shortTokens) == 0 {
		return false
	}
	for _, st := range shortTokens {
		found := false
		for _, lt := range longTokens {
			if st == lt {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
