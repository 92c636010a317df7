package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recruitos/internal/domain"
	"recruitos/internal/match"
	"recruitos/internal/service"
	"recruitos/mocks"
)

func TestScreenApplicant_Duplicate(t *testing.T) {
	jobID := uuid.New()
	existing := domain.IdentityRecord{
		ID:    uuid.New(),
		Name:  "Robert Smith",
		Email: "bob@example.com",
	}

	repo := new(mocks.MockIdentityRepo)
	repo.On("ListIdentities", mock.Anything, jobID).
		Return([]domain.IdentityRecord{existing}, nil)

	svc := service.NewScreeningService(repo, match.NewMatcher(0, nil), nil)

	result, err := svc.ScreenApplicant(context.Background(), jobID, domain.IdentityRecord{
		Name:  "Bob Smith",
		Email: "bob@example.com",
	})

	require.NoError(t, err)
	assert.True(t, result.IsDuplicate)
	assert.Equal(t, []string{"name", "email"}, result.MatchedFields)
	require.NotNil(t, result.MatchedRecord)
	assert.Equal(t, existing.ID, result.MatchedRecord.ID)
	repo.AssertExpectations(t)
}

func TestScreenApplicant_EmptyPool(t *testing.T) {
	jobID := uuid.New()

	repo := new(mocks.MockIdentityRepo)
	repo.On("ListIdentities", mock.Anything, jobID).
		Return([]domain.IdentityRecord{}, nil)

	svc := service.NewScreeningService(repo, match.NewMatcher(0, nil), nil)

	result, err := svc.ScreenApplicant(context.Background(), jobID, domain.IdentityRecord{Name: "Jane Doe"})

	require.NoError(t, err)
	assert.False(t, result.IsDuplicate)
	assert.Zero(t, result.Confidence)
	assert.Nil(t, result.MatchedRecord)
}

func TestScreenApplicant_RepoFailure(t *testing.T) {
	jobID := uuid.New()

	repo := new(mocks.MockIdentityRepo)
	repo.On("ListIdentities", mock.Anything, jobID).
		Return(nil, errors.New("connection refused"))

	svc := service.NewScreeningService(repo, match.NewMatcher(0, nil), nil)

	_, err := svc.ScreenApplicant(context.Background(), jobID, domain.IdentityRecord{Name: "Jane Doe"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading existing applicants")
}

func TestRegisterApplicant_AssignsID(t *testing.T) {
	jobID := uuid.New()

	repo := new(mocks.MockIdentityRepo)
	repo.On("SaveIdentity", mock.Anything, jobID, mock.MatchedBy(func(rec domain.IdentityRecord) bool {
		return rec.ID != uuid.UUID{} && rec.Name == "Jane Doe"
	})).Return(nil)

	svc := service.NewScreeningService(repo, match.NewMatcher(0, nil), nil)

	id, err := svc.RegisterApplicant(context.Background(), jobID, domain.IdentityRecord{Name: "Jane Doe"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, id)
	repo.AssertExpectations(t)
}

func TestRegisterApplicant_KeepsCallerID(t *testing.T) {
	jobID := uuid.New()
	want := uuid.New()

	repo := new(mocks.MockIdentityRepo)
	repo.On("SaveIdentity", mock.Anything, jobID, mock.MatchedBy(func(rec domain.IdentityRecord) bool {
		return rec.ID == want
	})).Return(nil)

	svc := service.NewScreeningService(repo, match.NewMatcher(0, nil), nil)

	id, err := svc.RegisterApplicant(context.Background(), jobID, domain.IdentityRecord{ID: want, Name: "Jane Doe"})

	require.NoError(t, err)
	assert.Equal(t, want, id)
}

func TestIdentityFromExtracted(t *testing.T) {
	got := service.IdentityFromExtracted(&domain.ExtractedFields{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "(555) 123-4567",
		Location: "Austin, TX 78701",
	})

	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "(555) 123-4567", got.Phone)
	assert.Equal(t, "Austin", got.City)
}

func TestIdentityFromExtracted_NoComma(t *testing.T) {
	got := service.IdentityFromExtracted(&domain.ExtractedFields{Location: "Berlin"})

	assert.Equal(t, "Berlin", got.City)
}
