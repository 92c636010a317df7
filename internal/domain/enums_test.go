package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitos/internal/domain"
)

func TestKindForFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     domain.DocumentKind
	}{
		{"resume.txt", domain.KindPlainText},
		{"resume.doc", domain.KindLegacyDoc},
		{"resume.docx", domain.KindLegacyDoc},
		{"resume.pdf", domain.KindPDF},
		{"Resume.PDF", domain.KindPDF},
		{"scan.jpg", domain.KindImage},
		{"scan.jpeg", domain.KindImage},
		{"scan.png", domain.KindImage},
		{"scan.webp", domain.KindImage},
		{"scan.tiff", domain.KindImage},
		{"archive.zip", domain.KindUnknown},
		{"noextension", domain.KindUnknown},
		{"", domain.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.KindForFilename(tt.filename))
		})
	}
}
