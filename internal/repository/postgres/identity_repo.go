package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"recruitos/internal/domain"
	"recruitos/internal/port"
)

type identityRepo struct {
	db *sqlx.DB
}

// NewIdentityRepo creates a PostgreSQL-backed IdentityRepository over the
// externally managed applicants table.
func NewIdentityRepo(db *sqlx.DB) port.IdentityRepository {
	return &identityRepo{db: db}
}

func (r *identityRepo) ListIdentities(ctx context.Context, jobID uuid.UUID) ([]domain.IdentityRecord, error) {
	var records []domain.IdentityRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, name, email, phone, city, created_at
		FROM applicants
		WHERE job_id = $1
		ORDER BY created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *identityRepo) SaveIdentity(ctx context.Context, jobID uuid.UUID, rec domain.IdentityRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applicants (id, job_id, name, email, phone, city, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		rec.ID, jobID, rec.Name, rec.Email, rec.Phone, rec.City,
	)
	return err
}
