package match

import (
	"go.uber.org/zap"

	"recruitos/internal/domain"
)

// Field weights. The denominator only ever includes weights for fields
// present on both sides of a comparison.
const (
	weightName     = 0.40
	weightEmail    = 0.35
	weightPhone    = 0.20
	weightLocation = 0.05

	// Per-field thresholds above which the field counts as matched.
	nameMatchThreshold     = 0.8
	emailMatchThreshold    = 0.9
	phoneMatchThreshold    = 0.9
	locationMatchThreshold = 0.8

	// DefaultThreshold is the aggregate confidence at which a comparison is
	// classified as a duplicate.
	DefaultThreshold = 0.85

	partialCitySimilarity = 0.85
)

// Matcher screens a new applicant identity against previously stored ones.
// It holds no mutable state; one matcher serves concurrent comparisons.
type Matcher struct {
	threshold float64
	logger    *zap.Logger
}

// NewMatcher creates a matcher. A non-positive threshold falls back to
// DefaultThreshold.
func NewMatcher(threshold float64, logger *zap.Logger) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{threshold: threshold, logger: logger}
}

// Compare scores two identities field by field. Each present-on-both-sides
// field is normalized, expanded into its variation set, and scored by maximum
// pairwise similarity; the aggregate is the weighted mean over those fields.
func (m *Matcher) Compare(a, b domain.IdentityRecord) (float64, []string) {
	earned := 0.0
	total := 0.0
	var matched []string

	if a.Name != "" && b.Name != "" {
		sim := maxPairSimilarity(nameVariations(a.Name), nameVariations(b.Name))
		earned += sim * weightName
		total += weightName
		if sim > nameMatchThreshold {
			matched = append(matched, "name")
		}
	}

	if a.Email != "" && b.Email != "" {
		sim := maxPairSimilarity(emailVariations(a.Email), emailVariations(b.Email))
		earned += sim * weightEmail
		total += weightEmail
		if sim > emailMatchThreshold {
			matched = append(matched, "email")
		}
	}

	if a.Phone != "" && b.Phone != "" {
		sim := maxPairSimilarity(phoneVariations(a.Phone), phoneVariations(b.Phone))
		earned += sim * weightPhone
		total += weightPhone
		if sim > phoneMatchThreshold {
			matched = append(matched, "phone")
		}
	}

	if a.City != "" && b.City != "" {
		sim := locationSimilarity(a.City, b.City)
		earned += sim * weightLocation
		total += weightLocation
		if sim > locationMatchThreshold {
			matched = append(matched, "location")
		}
	}

	if total == 0 {
		return 0, nil
	}
	return earned / total, matched
}

// CheckAgainstAll compares the new identity against every existing record and
// keeps the best score. The comparisons are independent; the loop is
// sequential because correctness does not need concurrency here.
func (m *Matcher) CheckAgainstAll(newID domain.IdentityRecord, existing []domain.IdentityRecord) domain.MatchResult {
	result := domain.MatchResult{}
	for i := range existing {
		score, matchedFields := m.Compare(newID, existing[i])
		if score > result.Confidence {
			rec := existing[i]
			result.Confidence = score
			result.MatchedFields = matchedFields
			result.MatchedRecord = &rec
		}
	}
	result.IsDuplicate = result.Confidence >= m.threshold

	if result.IsDuplicate {
		m.logger.Debug("duplicate applicant detected",
			zap.Float64("confidence", result.Confidence),
			zap.Strings("matched_fields", result.MatchedFields))
	}
	return result
}

// locationSimilarity adds partial token matching on top of alias expansion:
// a single-token form of a multi-word city counts as a near match.
func locationSimilarity(a, b string) float64 {
	av := locationVariations(a)
	bv := locationVariations(b)
	sim := maxPairSimilarity(av, bv)
	if sim == 1.0 {
		return sim
	}
	for _, x := range av {
		for _, y := range bv {
			if partialCityMatch(x, y) && partialCitySimilarity > sim {
				sim = partialCitySimilarity
			}
		}
	}
	return sim
}
