package service

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"recruitos/internal/config"
	"recruitos/internal/domain"
	"recruitos/internal/fields"
	"recruitos/internal/port"
)

// IngestService turns an uploaded applicant document into a structured record.
type IngestService interface {
	IngestDocument(ctx context.Context, doc domain.RawDocument) (*domain.ExtractedFields, error)
	IngestFromStorage(ctx context.Context, key string) (*domain.ExtractedFields, error)
	ArchiveDocument(ctx context.Context, doc domain.RawDocument) (string, error)
}

type ingestService struct {
	extractor port.TextExtractor
	fields    *fields.Extractor
	storage   port.ObjectStorage
	cfg       *config.S3Config
	logger    *zap.Logger
}

// NewIngestService creates a new IngestService implementation.
func NewIngestService(
	extractor port.TextExtractor,
	fieldExtractor *fields.Extractor,
	storage port.ObjectStorage,
	cfg *config.S3Config,
	logger *zap.Logger,
) IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ingestService{
		extractor: extractor,
		fields:    fieldExtractor,
		storage:   storage,
		cfg:       cfg,
		logger:    logger,
	}
}

// IngestDocument runs both extraction stages. Text acquisition can fail hard;
// field extraction only degrades.
func (s *ingestService) IngestDocument(ctx context.Context, doc domain.RawDocument) (*domain.ExtractedFields, error) {
	rawText, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	extracted := s.fields.Extract(rawText)
	s.logger.Info("document ingested",
		zap.String("filename", doc.Filename),
		zap.String("kind", string(doc.Kind)),
		zap.Int("raw_text_chars", len(rawText)),
		zap.Int("skills", len(extracted.Skills)))
	return &extracted, nil
}

// IngestFromStorage fetches the document bytes from the resume bucket first.
func (s *ingestService) IngestFromStorage(ctx context.Context, key string) (*domain.ExtractedFields, error) {
	payload, err := s.storage.Download(ctx, s.cfg.Bucket, key)
	if err != nil {
		return nil, fmt.Errorf("loading stored document %q: %w", key, err)
	}
	return s.IngestDocument(ctx, domain.RawDocument{
		Filename: key,
		Kind:     domain.KindForFilename(key),
		Payload:  payload,
	})
}

// ArchiveDocument stores the raw document in the resume bucket and returns
// its location.
func (s *ingestService) ArchiveDocument(ctx context.Context, doc domain.RawDocument) (string, error) {
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && int64(len(doc.Payload)) > maxBytes {
		return "", fmt.Errorf("document %q exceeds the %dMB upload limit", doc.Filename, s.cfg.MaxFileSizeMB)
	}

	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         doc.Filename,
		Body:        bytes.NewReader(doc.Payload),
		ContentType: contentTypeForKind(doc.Kind),
		Size:        int64(len(doc.Payload)),
	})
	if err != nil {
		return "", err
	}
	return out.Location, nil
}

func contentTypeForKind(kind domain.DocumentKind) string {
	switch kind {
	case domain.KindPlainText:
		return "text/plain"
	case domain.KindLegacyDoc:
		return "application/msword"
	case domain.KindPDF:
		return "application/pdf"
	case domain.KindImage:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
