package textextract

import "strings"

// scanPrintable salvages readable text from a legacy binary word-processor
// container. Printable ASCII and extended Latin bytes survive; any run of
// other bytes, embedded nulls included, collapses into a single space, and
// repeated whitespace is folded afterwards.
func scanPrintable(payload []byte) string {
	var b strings.Builder
	b.Grow(len(payload))

	inGap := false
	for _, c := range payload {
		switch {
		case c == '\n' || c == '\r' || c == '\t' || c == ' ':
			b.WriteByte(' ')
			inGap = false
		case c >= 0x20 && c <= 0x7E:
			b.WriteByte(c)
			inGap = false
		case c >= 0xC0: // extended Latin range in legacy single-byte encodings
			b.WriteByte(c)
			inGap = false
		default:
			if !inGap {
				b.WriteByte(' ')
				inGap = true
			}
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
