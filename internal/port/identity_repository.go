package port

import (
	"context"

	"github.com/google/uuid"

	"recruitos/internal/domain"
)

// IdentityRepository loads and stores applicant identity records. The matcher
// itself never queries storage; callers fetch the comparison set through this
// port and hand it over.
type IdentityRepository interface {
	ListIdentities(ctx context.Context, jobID uuid.UUID) ([]domain.IdentityRecord, error)
	SaveIdentity(ctx context.Context, jobID uuid.UUID, rec domain.IdentityRecord) error
}
