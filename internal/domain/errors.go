package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedKind  = errors.New("unsupported document kind")
	ErrInsufficientText = errors.New("document yielded insufficient readable text")
	ErrNoIdentities     = errors.New("no existing identities to screen against")
)

// ExtractionError is the umbrella error for a failed text acquisition.
// It carries the filename and a user-actionable remediation hint so the caller
// can render a message without leaking provider internals.
type ExtractionError struct {
	Filename    string
	Remediation string
	Err         error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting text from %q: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// OCRAPIError indicates a transport-level failure talking to the OCR provider.
type OCRAPIError struct {
	StatusCode int
	Body       string
}

func (e *OCRAPIError) Error() string {
	return fmt.Sprintf("ocr API error (status %d): %s", e.StatusCode, e.Body)
}

// OCRExitError indicates the OCR provider accepted the request but reported an
// internal processing failure via its exit code.
type OCRExitError struct {
	ExitCode int
	Message  string
}

func (e *OCRExitError) Error() string {
	return fmt.Sprintf("ocr provider failed (exit code %d): %s", e.ExitCode, e.Message)
}

// PDFExtractionError is terminal: both recognition engines were exhausted.
// Non-retryable; the caller should advise converting the PDF to an image.
type PDFExtractionError struct {
	Filename string
	LastErr  error
}

func (e *PDFExtractionError) Error() string {
	return fmt.Sprintf("could not read PDF %q with any recognition engine, please convert it to JPG or PNG and resubmit: %v", e.Filename, e.LastErr)
}

func (e *PDFExtractionError) Unwrap() error { return e.LastErr }
