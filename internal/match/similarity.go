package match

import "github.com/agext/levenshtein"

// similarity is normalized edit-distance similarity:
// (longerLen - levenshtein) / longerLen. Symmetric in its arguments and
// always within [0, 1].
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1.0
	}
	dist := levenshtein.Distance(a, b, nil)
	if dist > longer {
		return 0
	}
	return float64(longer-dist) / float64(longer)
}

// maxPairSimilarity returns the best similarity across every combination of
// the two variation sets. Exact matches short-circuit.
func maxPairSimilarity(as, bs []string) float64 {
	best := 0.0
	for _, a := range as {
		for _, b := range bs {
			s := similarity(a, b)
			if s == 1.0 {
				return 1.0
			}
			if s > best {
				best = s
			}
		}
	}
	return best
}
