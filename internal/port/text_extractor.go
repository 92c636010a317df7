package port

import (
	"context"

	"recruitos/internal/domain"
)

// TextExtractor is stage 1 of ingestion: document bytes -> raw text.
type TextExtractor interface {
	Extract(ctx context.Context, doc domain.RawDocument) (string, error)
}
