package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"recruitos/internal/domain"
)

// MockIdentityRepo is a mock implementation of port.IdentityRepository.
type MockIdentityRepo struct {
	mock.Mock
}

func (m *MockIdentityRepo) ListIdentities(ctx context.Context, jobID uuid.UUID) ([]domain.IdentityRecord, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IdentityRecord), args.Error(1)
}

func (m *MockIdentityRepo) SaveIdentity(ctx context.Context, jobID uuid.UUID, rec domain.IdentityRecord) error {
	args := m.Called(ctx, jobID, rec)
	return args.Error(0)
}
