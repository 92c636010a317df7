package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitos/internal/csvexport"
	"recruitos/internal/domain"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer

	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords([]domain.ExtractedFields{
		{
			Name:       "Jane Doe",
			Email:      "jane@example.com",
			Phone:      "(555) 123-4567",
			Location:   "Austin, TX",
			Skills:     []string{"Python", "Sql"},
			Experience: "5 years",
			Education:  "Bachelor's Degree",
			Summary:    "Experienced engineer.",
		},
		{Name: "Unknown Applicant"},
	}))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Name", "Email", "Phone", "Location", "Skills", "Experience", "Education", "Summary",
	}, rows[0])
	assert.Equal(t, []string{
		"Jane Doe", "jane@example.com", "(555) 123-4567", "Austin, TX",
		"Python; Sql", "5 years", "Bachelor's Degree", "Experienced engineer.",
	}, rows[1])
	assert.Equal(t, "Unknown Applicant", rows[2][0])
}

func TestWriter_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer

	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords(nil))
	w.Flush()

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
