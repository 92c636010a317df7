package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"recruitos/internal/domain"
	"recruitos/internal/match"
	"recruitos/internal/port"
)

// ScreeningService checks a new applicant against the stored applicant pool
// for the same job posting.
type ScreeningService interface {
	ScreenApplicant(ctx context.Context, jobID uuid.UUID, rec domain.IdentityRecord) (*domain.MatchResult, error)
	RegisterApplicant(ctx context.Context, jobID uuid.UUID, rec domain.IdentityRecord) (uuid.UUID, error)
}

type screeningService struct {
	identities port.IdentityRepository
	matcher    *match.Matcher
	logger     *zap.Logger
}

// NewScreeningService creates a new ScreeningService implementation.
func NewScreeningService(
	identities port.IdentityRepository,
	matcher *match.Matcher,
	logger *zap.Logger,
) ScreeningService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &screeningService{
		identities: identities,
		matcher:    matcher,
		logger:     logger,
	}
}

// ScreenApplicant loads the existing identity pool and returns the best-match
// verdict. An empty pool is not an error; it yields a clean non-duplicate.
func (s *screeningService) ScreenApplicant(ctx context.Context, jobID uuid.UUID, rec domain.IdentityRecord) (*domain.MatchResult, error) {
	existing, err := s.identities.ListIdentities(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("loading existing applicants: %w", err)
	}

	result := s.matcher.CheckAgainstAll(rec, existing)
	s.logger.Info("applicant screened",
		zap.String("job_id", jobID.String()),
		zap.Int("pool_size", len(existing)),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("is_duplicate", result.IsDuplicate))
	return &result, nil
}

// RegisterApplicant stores the identity record, assigning an ID when the
// caller did not.
func (s *screeningService) RegisterApplicant(ctx context.Context, jobID uuid.UUID, rec domain.IdentityRecord) (uuid.UUID, error) {
	if rec.ID == (uuid.UUID{}) {
		rec.ID = uuid.New()
	}
	if err := s.identities.SaveIdentity(ctx, jobID, rec); err != nil {
		return uuid.UUID{}, fmt.Errorf("saving applicant identity: %w", err)
	}
	return rec.ID, nil
}

// IdentityFromExtracted builds the identity view the matcher consumes out of
// a structured applicant record. The city is the part of the location before
// the first comma.
func IdentityFromExtracted(f *domain.ExtractedFields) domain.IdentityRecord {
	city := f.Location
	if i := strings.Index(city, ","); i >= 0 {
		city = city[:i]
	}
	return domain.IdentityRecord{
		Name:  f.Name,
		Email: f.Email,
		Phone: f.Phone,
		City:  strings.TrimSpace(city),
	}
}
