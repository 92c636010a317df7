package textextract

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"recruitos/internal/config"
	"recruitos/internal/domain"
	"recruitos/internal/port"
)

const (
	// Minimum readable text lengths below which an extraction counts as failed.
	minLegacyTextLen = 50
	minImageTextLen  = 5
	minPDFTextLen    = 10
)

// Extractor converts an uploaded applicant document into raw text, dispatching
// on document kind. It implements port.TextExtractor.
type Extractor struct {
	ocr       port.OCRClient
	primary   config.OCREngineConfig
	secondary config.OCREngineConfig
	logger    *zap.Logger
}

// NewExtractor creates a text extractor backed by the given OCR client.
func NewExtractor(ocr port.OCRClient, cfg *config.OCRConfig, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		ocr:       ocr,
		primary:   cfg.Primary,
		secondary: cfg.Secondary,
		logger:    logger,
	}
}

// Extract returns the raw text of the document. Failures carry the filename
// and a remediation hint inside a *domain.ExtractionError.
func (e *Extractor) Extract(ctx context.Context, doc domain.RawDocument) (string, error) {
	kind := doc.Kind
	if kind == "" || kind == domain.KindUnknown {
		kind = domain.KindForFilename(doc.Filename)
	}

	switch kind {
	case domain.KindPlainText:
		return string(doc.Payload), nil
	case domain.KindLegacyDoc:
		return e.extractLegacy(doc)
	case domain.KindImage:
		return e.extractImage(ctx, doc)
	case domain.KindPDF:
		return e.extractPDF(ctx, doc)
	default:
		return "", &domain.ExtractionError{
			Filename:    doc.Filename,
			Remediation: "upload the resume as TXT, DOC, PDF, JPG, or PNG",
			Err:         fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind),
		}
	}
}

func (e *Extractor) extractLegacy(doc domain.RawDocument) (string, error) {
	text := scanPrintable(doc.Payload)
	if len(text) < minLegacyTextLen {
		return "", &domain.ExtractionError{
			Filename:    doc.Filename,
			Remediation: "the document could not be read, please convert it to PDF or an image and resubmit",
			Err:         fmt.Errorf("%w: %d readable characters", domain.ErrInsufficientText, len(text)),
		}
	}
	return text, nil
}

func (e *Extractor) extractImage(ctx context.Context, doc domain.RawDocument) (string, error) {
	// Best effort: a failed conversion falls back to the original bytes
	// rather than aborting the extraction.
	payload, filetype := canonicalizeImage(doc)
	res, err := e.ocr.Recognize(ctx, port.OCRRequest{
		Payload:           payload,
		Filetype:          filetype,
		Engine:            port.OCREngine(e.primary.Engine),
		DetectOrientation: true,
		Scale:             true,
	})
	if err != nil {
		return "", &domain.ExtractionError{
			Filename:    doc.Filename,
			Remediation: "the image could not be read, please upload a sharper scan",
			Err:         err,
		}
	}
	text := cleanOCRText(res.Text)
	if len(text) < minImageTextLen {
		return "", &domain.ExtractionError{
			Filename:    doc.Filename,
			Remediation: "no readable text was found in the image, please upload a sharper scan",
			Err:         fmt.Errorf("%w: %d characters recognized", domain.ErrInsufficientText, len(text)),
		}
	}
	return text, nil
}

// extractPDF tries the configured recognition engines in order. The first
// attempt yielding enough text wins; exhausting all engines is terminal.
func (e *Extractor) extractPDF(ctx context.Context, doc domain.RawDocument) (string, error) {
	engines := []config.OCREngineConfig{e.primary, e.secondary}

	var lastErr error
	for _, eng := range engines {
		res, err := e.ocr.Recognize(ctx, port.OCRRequest{
			Payload:           doc.Payload,
			Filetype:          "PDF",
			Engine:            port.OCREngine(eng.Engine),
			DetectOrientation: eng.DetectOrientation,
			Scale:             eng.Scale,
			TableMode:         eng.TableMode,
		})
		if err != nil {
			e.logger.Warn("pdf recognition attempt failed",
				zap.Int("engine", eng.Engine), zap.Error(err))
			lastErr = err
			continue
		}
		text := cleanOCRText(res.Text)
		if len(text) < minPDFTextLen {
			lastErr = fmt.Errorf("%w: engine %d recognized %d characters",
				domain.ErrInsufficientText, eng.Engine, len(text))
			e.logger.Warn("pdf recognition attempt yielded too little text",
				zap.Int("engine", eng.Engine), zap.Int("chars", len(text)))
			continue
		}
		return text, nil
	}

	return "", &domain.ExtractionError{
		Filename:    doc.Filename,
		Remediation: "please convert the PDF to JPG or PNG and resubmit",
		Err:         &domain.PDFExtractionError{Filename: doc.Filename, LastErr: lastErr},
	}
}

// cleanOCRText applies NFKC normalization and trims surrounding whitespace.
// OCR output tends to carry compatibility forms and stray padding.
func cleanOCRText(text string) string {
	return strings.TrimSpace(norm.NFKC.String(text))
}
