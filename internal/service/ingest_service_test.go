package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recruitos/internal/config"
	"recruitos/internal/domain"
	"recruitos/internal/fields"
	"recruitos/internal/port"
	"recruitos/internal/service"
	"recruitos/mocks"
)

func testS3Config() *config.S3Config {
	return &config.S3Config{Bucket: "resumes", MaxFileSizeMB: 1}
}

func TestIngestDocument(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).
		Return("Jane Doe\njane@example.com\n555-123-4567", nil)

	svc := service.NewIngestService(extractor, fields.NewExtractor(nil), nil, testS3Config(), nil)

	got, err := svc.IngestDocument(context.Background(), domain.RawDocument{
		Filename: "resume.pdf",
		Kind:     domain.KindPDF,
		Payload:  []byte("%PDF"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "(555) 123-4567", got.Phone)
	extractor.AssertExpectations(t)
}

func TestIngestDocument_ExtractionFails(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	wantErr := &domain.ExtractionError{Filename: "resume.pdf", Err: domain.ErrInsufficientText}
	extractor.On("Extract", mock.Anything, mock.Anything).Return("", wantErr)

	svc := service.NewIngestService(extractor, fields.NewExtractor(nil), nil, testS3Config(), nil)

	_, err := svc.IngestDocument(context.Background(), domain.RawDocument{Filename: "resume.pdf"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientText)
}

func TestIngestFromStorage(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Download", mock.Anything, "resumes", "uploads/resume.txt").
		Return([]byte("Jane Doe\njane@example.com"), nil)

	extractor := new(mocks.MockTextExtractor)
	extractor.On("Extract", mock.Anything, mock.MatchedBy(func(doc domain.RawDocument) bool {
		return doc.Filename == "uploads/resume.txt" &&
			doc.Kind == domain.KindPlainText &&
			string(doc.Payload) == "Jane Doe\njane@example.com"
	})).Return("Jane Doe\njane@example.com", nil)

	svc := service.NewIngestService(extractor, fields.NewExtractor(nil), storage, testS3Config(), nil)

	got, err := svc.IngestFromStorage(context.Background(), "uploads/resume.txt")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	storage.AssertExpectations(t)
	extractor.AssertExpectations(t)
}

func TestIngestFromStorage_DownloadFails(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Download", mock.Anything, "resumes", "missing.pdf").
		Return(nil, errors.New("no such key"))

	svc := service.NewIngestService(new(mocks.MockTextExtractor), fields.NewExtractor(nil), storage, testS3Config(), nil)

	_, err := svc.IngestFromStorage(context.Background(), "missing.pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.pdf")
}

func TestArchiveDocument(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "resumes" && in.Key == "resume.pdf" &&
			in.ContentType == "application/pdf" && in.Size == 4
	})).Return(&port.UploadOutput{Location: "s3://resumes/resume.pdf"}, nil)

	svc := service.NewIngestService(new(mocks.MockTextExtractor), fields.NewExtractor(nil), storage, testS3Config(), nil)

	loc, err := svc.ArchiveDocument(context.Background(), domain.RawDocument{
		Filename: "resume.pdf",
		Kind:     domain.KindPDF,
		Payload:  []byte("%PDF"),
	})

	require.NoError(t, err)
	assert.Equal(t, "s3://resumes/resume.pdf", loc)
	storage.AssertExpectations(t)
}

func TestArchiveDocument_SizeLimit(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewIngestService(new(mocks.MockTextExtractor), fields.NewExtractor(nil), storage, testS3Config(), nil)

	_, err := svc.ArchiveDocument(context.Background(), domain.RawDocument{
		Filename: "huge.pdf",
		Kind:     domain.KindPDF,
		Payload:  make([]byte, 2*1024*1024),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload limit")
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}
