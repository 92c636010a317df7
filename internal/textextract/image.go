package textextract

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"recruitos/internal/domain"
)

// canonicalizeImage re-encodes rasters the OCR provider does not accept
// natively (webp, bmp, tiff, gif) as PNG. PNG and JPEG pass through
// untouched. Conversion is best effort: if decoding fails the original
// payload is submitted as-is.
func canonicalizeImage(doc domain.RawDocument) ([]byte, string) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(doc.Filename), ".")) {
	case "png":
		return doc.Payload, "PNG"
	case "jpg", "jpeg":
		return doc.Payload, "JPG"
	}

	img, _, err := image.Decode(bytes.NewReader(doc.Payload))
	if err != nil {
		return doc.Payload, imageFiletype(doc.Filename)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return doc.Payload, imageFiletype(doc.Filename)
	}
	return buf.Bytes(), "PNG"
}

func imageFiletype(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "png":
		return "PNG"
	case "jpg", "jpeg":
		return "JPG"
	case "gif":
		return "GIF"
	default:
		return "PNG"
	}
}
