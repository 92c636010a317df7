package fields

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// phoneRunRe finds maximal runs of digits, separators, and parentheses
	// that could be a phone number.
	phoneRunRe = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)

	nonDigitRe = regexp.MustCompile(`\D`)
)

// extractEmail returns the first RFC-like address in the text, or an empty
// string. A missing email is not an error.
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone scans digit runs and accepts only 10-digit numbers or
// 11-digit numbers with a leading 1. The first acceptable run wins; all other
// runs are discarded. Returns an empty string when nothing qualifies.
func extractPhone(text string) string {
	for _, run := range phoneRunRe.FindAllString(text, -1) {
		digits := nonDigitRe.ReplaceAllString(run, "")
		switch {
		case len(digits) == 10:
			return formatUSPhone(digits)
		case len(digits) == 11 && strings.HasPrefix(digits, "1"):
			return "+1 " + formatUSPhone(digits[1:])
		}
	}
	return ""
}

func formatUSPhone(digits string) string {
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}
