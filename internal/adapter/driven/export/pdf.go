package export

import (
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/report"
)

const (
	pdfPageWidth   = 190.0
	pdfFirstColumn = 50.0
	pdfRowHeight   = 6.0
)

func (r *ExportRepositoryImpl) ExportToPDF(result *entity.DashboardResult, bound entity.Bound, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	generated := r.now().Format("2006-01-02")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by UAV Volume Dashboard | %s", generated)
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	drawSection := func(s report.Section) {
		if len(s.Headers) == 0 {
			return
		}
		// Keep a title together with at least its header and first row.
		_, pageHeight := pdf.GetPageSize()
		_, _, _, bottom := pdf.GetMargins()
		if pdf.GetY()+8+11+2*pdfRowHeight > pageHeight-bottom-15 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(s.Title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+pdfPageWidth, pdf.GetY())
		pdf.Ln(4)

		widths := columnWidths(len(s.Headers))

		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range s.Headers {
			pdf.CellFormat(widths[i], pdfRowHeight, tr(h), "B", 0, align(i), true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range s.Rows {
			border := ""
			if row[0] == entity.TotalRowName {
				pdf.SetFont("Arial", "B", 8)
				border = "T"
			}
			for i, cell := range row {
				pdf.CellFormat(widths[i], pdfRowHeight, tr(cell), border, 0, align(i), false, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetFont("Arial", "", 8)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  UAV Volume Dashboard (%d)", result.Year)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Run ID: %s", result.RunID)), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Bound: %s", bound.Label())), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	for _, section := range report.Build(result, bound) {
		drawSection(section)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// columnWidths gives the label column a fixed width and shares the rest.
func columnWidths(n int) []float64 {
	widths := make([]float64, n)
	if n == 1 {
		widths[0] = pdfPageWidth
		return widths
	}
	widths[0] = pdfFirstColumn
	rest := (pdfPageWidth - pdfFirstColumn) / float64(n-1)
	for i := 1; i < n; i++ {
		widths[i] = rest
	}
	return widths
}

func align(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}
