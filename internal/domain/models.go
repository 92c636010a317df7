package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawDocument is an uploaded applicant document before any text extraction.
// It lives only for the duration of a single extraction call.
type RawDocument struct {
	Filename string
	Kind     DocumentKind
	Payload  []byte
}

// ExtractedFields is the structured applicant record derived from one document.
// Immutable after creation; persisted by the submission workflow, not by this core.
type ExtractedFields struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Summary    string   `json:"summary"`
	RawText    string   `json:"raw_text"`
}

// IdentityRecord is the partial identity view of an applicant used for
// duplicate screening. Optional fields left empty are skipped in scoring,
// never treated as empty-string mismatches.
type IdentityRecord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	City      string    `db:"city" json:"city"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MatchResult is the verdict of screening one new identity against a set of
// previously stored identities.
type MatchResult struct {
	IsDuplicate   bool            `json:"is_duplicate"`
	Confidence    float64         `json:"confidence"`
	MatchedFields []string        `json:"matched_fields"`
	MatchedRecord *IdentityRecord `json:"matched_record,omitempty"`
}
