package reports

import (
	"os"
	"testing"

	"bonuscalc/internal/domain/bonus"
)

func TestExportBonusReview(t *testing.T) {
	svc := NewService(t.TempDir())
	review := bonus.BuildReview([]bonus.ReviewRow{
		{Name: "Anna", Salary: 2000, KPIScore: 80, Experience: 10, Bonus: 420},
		{Name: "Boris", Salary: 1500, KPIScore: 60, Experience: 2, Bonus: 195},
	})

	path, err := svc.ExportBonusReview(review, bonus.DefaultFormula())
	if err != nil {
		t.Fatalf("ExportBonusReview: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("report file is empty")
	}
}

func TestExportCreatesReportDir(t *testing.T) {
	dir := t.TempDir() + "/nested/reports"
	svc := NewService(dir)
	if _, err := svc.ExportBonusReview(bonus.BuildReview(nil), bonus.DefaultFormula()); err != nil {
		t.Fatalf("ExportBonusReview: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("report dir not created: %v", err)
	}
}
