// Package reports renders bonus review PDFs.
package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"bonuscalc/internal/domain/bonus"
)

type Service struct {
	dir string
}

func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// ExportBonusReview renders the review as a one-page PDF under the report
// directory and returns the file path.
func (s *Service) ExportBonusReview(review bonus.Review, formula bonus.Formula) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("bonus-review-%s.pdf", time.Now().Format("2006-01-02-150405")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Bonus Review")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Formula: bonus = salary * (kpi/100 * %v + min(experience * %v, %v))",
		formula.KPICoefficient, formula.ExperienceCoefficient, formula.MaxExperienceBonus))
	pdf.Ln(10)

	widths := []float64{60, 30, 20, 20, 30}
	headers := []string{"Employee", "Salary", "KPI", "Years", "Bonus"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range review.Rows {
		cells := []string{
			row.Name,
			fmt.Sprintf("%.2f", row.Salary),
			fmt.Sprintf("%.0f%%", row.KPIScore),
			fmt.Sprintf("%d", row.Experience),
			fmt.Sprintf("%.2f", row.Bonus),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %.2f    Average: %.2f", review.Total, review.Average))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Max: %.2f (%s)    Min: %.2f (%s)", review.Max, review.Best, review.Min, review.Worst))
	if len(review.NeedsImprovement) > 0 {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, "Needs improvement (KPI below 70%):")
		pdf.SetFont("Helvetica", "", 10)
		for _, name := range review.NeedsImprovement {
			pdf.Ln(6)
			pdf.Cell(0, 6, "- "+name)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
