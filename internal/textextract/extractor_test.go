package textextract_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recruitos/internal/config"
	"recruitos/internal/domain"
	"recruitos/internal/port"
	"recruitos/internal/textextract"
	"recruitos/mocks"
)

func testOCRConfig() *config.OCRConfig {
	return &config.OCRConfig{
		Primary:   config.OCREngineConfig{Engine: 2, DetectOrientation: true, Scale: true, TableMode: true},
		Secondary: config.OCREngineConfig{Engine: 1, DetectOrientation: true, Scale: true},
	}
}

func TestExtract_PlainTextPassthrough(t *testing.T) {
	e := textextract.NewExtractor(nil, testOCRConfig(), nil)

	doc := domain.RawDocument{
		Filename: "resume.txt",
		Kind:     domain.KindPlainText,
		Payload:  []byte("John Smith\njohn@example.com"),
	}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "John Smith\njohn@example.com", text)
}

func TestExtract_SniffsKindFromFilename(t *testing.T) {
	e := textextract.NewExtractor(nil, testOCRConfig(), nil)

	doc := domain.RawDocument{
		Filename: "resume.txt",
		Payload:  []byte("hello"),
	}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtract_UnsupportedKind(t *testing.T) {
	e := textextract.NewExtractor(nil, testOCRConfig(), nil)

	doc := domain.RawDocument{Filename: "resume.xyz", Payload: []byte("x")}

	_, err := e.Extract(context.Background(), doc)

	require.Error(t, err)
	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "resume.xyz", extErr.Filename)
	assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
}

func TestExtract_LegacyDoc(t *testing.T) {
	readable := "John Smith worked as a software engineer for ten years in Austin"
	payload := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0x00, 0x01}, []byte(readable)...)
	payload = append(payload, 0x00, 0x05, 0x07)

	e := textextract.NewExtractor(nil, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.doc", Kind: domain.KindLegacyDoc, Payload: payload}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Contains(t, text, "John Smith worked as a software engineer")
	assert.NotContains(t, text, "\x00")
}

func TestExtract_LegacyDocInsufficientText(t *testing.T) {
	e := textextract.NewExtractor(nil, testOCRConfig(), nil)
	doc := domain.RawDocument{
		Filename: "resume.doc",
		Kind:     domain.KindLegacyDoc,
		Payload:  []byte{0xD0, 0xCF, 0x11, 'h', 'i', 0x00, 0x01},
	}

	_, err := e.Extract(context.Background(), doc)

	require.Error(t, err)
	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.ErrorIs(t, err, domain.ErrInsufficientText)
	assert.Contains(t, extErr.Remediation, "convert it to PDF or an image")
}

func TestExtract_Image(t *testing.T) {
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.MatchedBy(func(req port.OCRRequest) bool {
		return req.Filetype == "PNG" && req.Engine == port.OCREngine(2) &&
			req.DetectOrientation && req.Scale
	})).Return(&port.OCRResult{Text: "  John Smith\nAustin, TX  ", ExitCode: 1}, nil)

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.png", Kind: domain.KindImage, Payload: []byte("fakepng")}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "John Smith\nAustin, TX", text)
	ocrClient.AssertExpectations(t)
}

func TestExtract_ImageUndecodablePayloadFallsBack(t *testing.T) {
	// An undecodable payload is submitted as-is under its own filetype.
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.MatchedBy(func(req port.OCRRequest) bool {
		return req.Filetype == "GIF" && string(req.Payload) == "GIF89a-not-really"
	})).Return(&port.OCRResult{Text: "Jane Doe resume", ExitCode: 1}, nil)

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.gif", Kind: domain.KindImage, Payload: []byte("GIF89a-not-really")}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe resume", text)
	ocrClient.AssertExpectations(t)
}

func TestExtract_ImageReencodedAsPNG(t *testing.T) {
	var gifPayload bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, png.Encode(&gifPayload, img))

	// A PNG payload under a .bmp name is not passed through by extension, so
	// it goes through decode and comes back out as PNG.
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.MatchedBy(func(req port.OCRRequest) bool {
		return req.Filetype == "PNG" && bytes.HasPrefix(req.Payload, []byte("\x89PNG"))
	})).Return(&port.OCRResult{Text: "converted resume text", ExitCode: 1}, nil)

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.bmp", Kind: domain.KindImage, Payload: gifPayload.Bytes()}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "converted resume text", text)
	ocrClient.AssertExpectations(t)
}

func TestExtract_ImageInsufficientText(t *testing.T) {
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.Anything).
		Return(&port.OCRResult{Text: "  x ", ExitCode: 1}, nil)

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.jpg", Kind: domain.KindImage, Payload: []byte("fake")}

	_, err := e.Extract(context.Background(), doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientText)
}

func TestExtract_ImageOCRFailure(t *testing.T) {
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.Anything).
		Return(nil, &domain.OCRExitError{ExitCode: 3, Message: "engine crashed"})

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.jpg", Kind: domain.KindImage, Payload: []byte("fake")}

	_, err := e.Extract(context.Background(), doc)

	require.Error(t, err)
	var exitErr *domain.OCRExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestExtract_PDFPrimaryEngineSucceeds(t *testing.T) {
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.MatchedBy(func(req port.OCRRequest) bool {
		return req.Filetype == "PDF" && req.Engine == port.OCREngine(2) && req.TableMode
	})).Return(&port.OCRResult{Text: "full resume text from primary", ExitCode: 1}, nil)

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.pdf", Kind: domain.KindPDF, Payload: []byte("%PDF-fake")}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "full resume text from primary", text)
	ocrClient.AssertNumberOfCalls(t, "Recognize", 1)
}

func TestExtract_PDFFallsBackToSecondaryEngine(t *testing.T) {
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.MatchedBy(func(req port.OCRRequest) bool {
		return req.Engine == port.OCREngine(2)
	})).Return(nil, &domain.OCRExitError{ExitCode: 3, Message: "primary failed"}).Once()
	ocrClient.On("Recognize", mock.Anything, mock.MatchedBy(func(req port.OCRRequest) bool {
		return req.Engine == port.OCREngine(1) && !req.TableMode
	})).Return(&port.OCRResult{Text: "text recovered by fallback engine", ExitCode: 1}, nil).Once()

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.pdf", Kind: domain.KindPDF, Payload: []byte("%PDF-fake")}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "text recovered by fallback engine", text)
	ocrClient.AssertExpectations(t)
}

func TestExtract_PDFBothEnginesExhausted(t *testing.T) {
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.Anything).
		Return(nil, &domain.OCRExitError{ExitCode: 4, Message: "unreadable"}).Twice()

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "scan.pdf", Kind: domain.KindPDF, Payload: []byte("%PDF-fake")}

	_, err := e.Extract(context.Background(), doc)

	require.Error(t, err)
	var pdfErr *domain.PDFExtractionError
	require.ErrorAs(t, err, &pdfErr)
	assert.Equal(t, "scan.pdf", pdfErr.Filename)
	assert.Contains(t, err.Error(), "scan.pdf")
	ocrClient.AssertNumberOfCalls(t, "Recognize", 2)
}

func TestExtract_PDFShortTextTriggersFallback(t *testing.T) {
	ocrClient := new(mocks.MockOCRClient)
	ocrClient.On("Recognize", mock.Anything, mock.MatchedBy(func(req port.OCRRequest) bool {
		return req.Engine == port.OCREngine(2)
	})).Return(&port.OCRResult{Text: "stub", ExitCode: 1}, nil).Once()
	ocrClient.On("Recognize", mock.Anything, mock.MatchedBy(func(req port.OCRRequest) bool {
		return req.Engine == port.OCREngine(1)
	})).Return(&port.OCRResult{Text: "enough text this time around", ExitCode: 1}, nil).Once()

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.pdf", Kind: domain.KindPDF, Payload: []byte("%PDF-fake")}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "enough text this time around", text)
	ocrClient.AssertExpectations(t)
}

func TestExtract_OCRTextNFKCNormalized(t *testing.T) {
	ocrClient := new(mocks.MockOCRClient)
	// U+FB01 is the "fi" ligature; NFKC folds it into plain letters.
	ocrClient.On("Recognize", mock.Anything, mock.Anything).
		Return(&port.OCRResult{Text: "qualiﬁed candidate", ExitCode: 1}, nil)

	e := textextract.NewExtractor(ocrClient, testOCRConfig(), nil)
	doc := domain.RawDocument{Filename: "resume.jpg", Kind: domain.KindImage, Payload: []byte("fake")}

	text, err := e.Extract(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "qualified candidate", text)
	assert.False(t, strings.ContainsRune(text, 'ﬁ'))
}
