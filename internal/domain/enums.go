package domain

import (
	"path/filepath"
	"strings"
)

// DocumentKind identifies the extraction strategy for an uploaded document.
type DocumentKind string

const (
	KindPlainText DocumentKind = "text"
	KindLegacyDoc DocumentKind = "legacy_doc"
	KindImage     DocumentKind = "image"
	KindPDF       DocumentKind = "pdf"
	KindUnknown   DocumentKind = "unknown"
)

// AllowedContentTypes maps MIME content types to a DocumentKind.
var AllowedContentTypes = map[string]DocumentKind{
	"text/plain":         KindPlainText,
	"application/msword": KindLegacyDoc,
	"application/pdf":    KindPDF,
	"image/jpeg":         KindImage,
	"image/png":          KindImage,
	"image/gif":          KindImage,
	"image/bmp":          KindImage,
	"image/tiff":         KindImage,
	"image/webp":         KindImage,
}

var kindByExtension = map[string]DocumentKind{
	"txt":  KindPlainText,
	"doc":  KindLegacyDoc,
	"docx": KindLegacyDoc,
	"pdf":  KindPDF,
	"jpg":  KindImage,
	"jpeg": KindImage,
	"png":  KindImage,
	"gif":  KindImage,
	"bmp":  KindImage,
	"tif":  KindImage,
	"tiff": KindImage,
	"webp": KindImage,
}

// KindForFilename sniffs the document kind from a filename extension.
// Used only when the caller did not declare a kind.
func KindForFilename(name string) DocumentKind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if kind, ok := kindByExtension[ext]; ok {
		return kind
	}
	return KindUnknown
}
