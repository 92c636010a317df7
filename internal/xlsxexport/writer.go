package xlsxexport

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"recruitos/internal/domain"
)

const sheetName = "Screening Report"

var columns = []string{
	"Applicant",
	"Email",
	"Best Match",
	"Confidence",
	"Matched Fields",
	"Verdict",
}

// ReportRow pairs a screened applicant with their duplicate verdict.
type ReportRow struct {
	Applicant domain.IdentityRecord
	Result    domain.MatchResult
}

// WriteReport renders a duplicate-screening report workbook.
func WriteReport(w io.Writer, rows []ReportRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := rowValues(row)
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func rowValues(row ReportRow) []interface{} {
	matchedName := ""
	if row.Result.MatchedRecord != nil {
		matchedName = row.Result.MatchedRecord.Name
	}
	verdict := "unique"
	if row.Result.IsDuplicate {
		verdict = "duplicate"
	}
	return []interface{}{
		row.Applicant.Name,
		row.Applicant.Email,
		matchedName,
		fmt.Sprintf("%.2f", row.Result.Confidence),
		strings.Join(row.Result.MatchedFields, ", "),
		verdict,
	}
}
