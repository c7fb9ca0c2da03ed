package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/report"
)

const defaultSheet = "Sheet1"

// ExportToXLSX writes one worksheet per report section: title in row 1,
// headers in row 2, data below.
func (r *ExportRepositoryImpl) ExportToXLSX(result *entity.DashboardResult, bound entity.Bound, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return "", fmt.Errorf("error creating XLSX style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"282828"}, Pattern: 1},
	})
	if err != nil {
		return "", fmt.Errorf("error creating XLSX style: %w", err)
	}

	first := -1
	for _, section := range report.Build(result, bound) {
		idx, err := f.NewSheet(section.Sheet)
		if err != nil {
			return "", fmt.Errorf("error creating sheet %q: %w", section.Sheet, err)
		}
		if first < 0 {
			first = idx
		}
		if err := writeSection(f, section, titleStyle, headerStyle); err != nil {
			return "", err
		}
	}
	if first >= 0 {
		f.SetActiveSheet(first)
	}
	f.DeleteSheet(defaultSheet)

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeSection(f *excelize.File, s report.Section, titleStyle, headerStyle int) error {
	if err := f.SetCellValue(s.Sheet, "A1", s.Title); err != nil {
		return fmt.Errorf("error writing sheet %q: %w", s.Sheet, err)
	}
	if err := f.SetCellStyle(s.Sheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("error styling sheet %q: %w", s.Sheet, err)
	}

	if err := setRow(f, s.Sheet, 2, s.Headers); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(s.Headers))
	if err != nil {
		return fmt.Errorf("error styling sheet %q: %w", s.Sheet, err)
	}
	if err := f.SetCellStyle(s.Sheet, "A2", lastCol+"2", headerStyle); err != nil {
		return fmt.Errorf("error styling sheet %q: %w", s.Sheet, err)
	}

	for i, row := range s.Rows {
		if err := setRow(f, s.Sheet, i+3, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(s.Sheet, "A", "A", 36); err != nil {
		return fmt.Errorf("error sizing sheet %q: %w", s.Sheet, err)
	}
	if len(s.Headers) > 1 {
		if err := f.SetColWidth(s.Sheet, "B", lastCol, 18); err != nil {
			return fmt.Errorf("error sizing sheet %q: %w", s.Sheet, err)
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("error writing sheet %q: %w", sheet, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("error writing sheet %q row %d: %w", sheet, row, err)
	}
	return nil
}
