// Package xlsx exports a profile's records and summary as a spreadsheet.
package xlsx

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

const (
	recordsSheet = "Records"
	summarySheet = "Summary"
)

// Export writes records and their summary for profile to w as an .xlsx
// workbook. An empty record set yields domain.ErrNoData.
func Export(w io.Writer, profile string, records []domain.NormalizedRecord) (err error) {
	report, err := app.Summarize(records)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return err
	}
	if err := writeRecords(f, records); err != nil {
		return fmt.Errorf("export records: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, profile, report); err != nil {
		return fmt.Errorf("export summary: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: %w: %w", domain.ErrIO, err)
	}
	return nil
}

func writeRecords(f *excelize.File, records []domain.NormalizedRecord) error {
	header := []any{"Date", "Weight", "Unit", "Weight (kg)", "Weight (lbs)"}
	if err := f.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr("yyyy-mm-dd hh:mm:ss")})
	if err != nil {
		return err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.Timestamp,
			r.RawWeight,
			string(r.Unit),
			r.WeightKg,
			domain.KgToLbs(r.WeightKg),
		}
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return err
		}
		if err := f.SetCellStyle(recordsSheet, cell, cell, dateStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(recordsSheet, "A", "A", 20)
}

func writeSummary(f *excelize.File, profile string, r *app.Report) error {
	rows := [][]any{
		{"Profile", profile},
		{"Total Entries", r.Count},
		{"From", r.From.Format(app.ReportDateLayout)},
		{"To", r.To.Format(app.ReportDateLayout)},
		{"Average (lbs)", round2(r.AverageLbs)},
		{"Minimum (lbs)", round2(r.MinLbs)},
		{"Maximum (lbs)", round2(r.MaxLbs)},
		{"Overall Trend", r.Trend.String()},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(summarySheet, "A", "B", 24)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr[T any](v T) *T { return &v }
