package port

import "context"

// OCREngine selects a provider-side recognition engine.
type OCREngine int

const (
	// EngineAccurate handles rotated, scaled, and table-heavy layouts.
	EngineAccurate OCREngine = 2
	// EngineFast is the provider's simpler, more permissive engine.
	EngineFast OCREngine = 1
)

// OCRRequest is a single recognition attempt against the provider.
type OCRRequest struct {
	Payload           []byte
	Filetype          string // provider filetype hint, e.g. "PDF", "PNG"
	Engine            OCREngine
	DetectOrientation bool
	Scale             bool
	TableMode         bool
}

// OCRResult is the parsed provider response for one attempt.
type OCRResult struct {
	Text     string
	ExitCode int
	Engine   OCREngine
}

// OCRClient abstracts the external OCR provider. One call per recognition
// attempt; engine fallback is the caller's concern.
type OCRClient interface {
	Recognize(ctx context.Context, req OCRRequest) (*OCRResult, error)
}
