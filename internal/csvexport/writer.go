package csvexport

import (
	"encoding/csv"
	"io"
	"strings"

	"recruitos/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Name",
	"Email",
	"Phone",
	"Location",
	"Skills",
	"Experience",
	"Education",
	"Summary",
}

// Writer wraps csv.Writer for exporting extracted applicant records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts a batch of applicant records to CSV rows and writes them.
func (w *Writer) WriteRecords(records []domain.ExtractedFields) error {
	for i := range records {
		if err := w.csv.Write(recordToRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func recordToRow(rec *domain.ExtractedFields) []string {
	return []string{
		rec.Name,
		rec.Email,
		rec.Phone,
		rec.Location,
		strings.Join(rec.Skills, "; "),
		rec.Experience,
		rec.Education,
		rec.Summary,
	}
}
