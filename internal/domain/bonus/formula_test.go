package bonus

import (
	"math"
	"testing"
)

func TestDefaultFormula(t *testing.T) {
	f := DefaultFormula()
	if f.KPICoefficient != 0.2 || f.ExperienceCoefficient != 0.005 || f.MaxExperienceBonus != 0.05 {
		t.Fatalf("unexpected defaults: %+v", f)
	}
}

func TestCalculateReferenceScenario(t *testing.T) {
	// salary 2000, aggregate KPI 80, 10 years:
	// kpiBonus = 0.8*0.2 = 0.16, expBonus = min(0.05, 0.05) = 0.05 -> 2000*0.21 = 420
	f := DefaultFormula()
	got := f.Calculate(2000, 80, 10)
	if math.Abs(got-420) > 1e-9 {
		t.Fatalf("Calculate(2000, 80, 10) = %v, want 420", got)
	}

	breakdown := f.Explain(2000, 80, 10)
	if math.Abs(breakdown.KPIBonus-320) > 1e-9 {
		t.Errorf("KPIBonus = %v, want 320", breakdown.KPIBonus)
	}
	if math.Abs(breakdown.ExperienceBonus-100) > 1e-9 {
		t.Errorf("ExperienceBonus = %v, want 100", breakdown.ExperienceBonus)
	}
}

func TestCalculateIsMonotonic(t *testing.T) {
	f := DefaultFormula()
	base := f.Calculate(2000, 50, 4)
	if f.Calculate(2500, 50, 4) < base {
		t.Error("bonus decreased when salary increased")
	}
	if f.Calculate(2000, 60, 4) < base {
		t.Error("bonus decreased when KPI increased")
	}
	if f.Calculate(2000, 50, 5) < base {
		t.Error("bonus decreased when experience increased")
	}
}

func TestExperienceBonusIsCapped(t *testing.T) {
	f := DefaultFormula()
	for _, years := range []int{0, 5, 10, 25, 50} {
		breakdown := f.Explain(3000, 0, years)
		if breakdown.ExperienceBonus > f.MaxExperienceBonus*3000+1e-9 {
			t.Fatalf("experience bonus %v exceeds cap at %d years", breakdown.ExperienceBonus, years)
		}
	}
	if got := f.Explain(3000, 0, 40).ExperienceBonus; math.Abs(got-150) > 1e-9 {
		t.Fatalf("capped experience bonus = %v, want 150", got)
	}
}

func TestFormulaCodecRoundTrip(t *testing.T) {
	formulas := []Formula{
		DefaultFormula(),
		{KPICoefficient: 0.35, ExperienceCoefficient: 0.01, MaxExperienceBonus: 0.5},
		{KPICoefficient: 1, ExperienceCoefficient: 0, MaxExperienceBonus: 0.123},
	}
	for _, f := range formulas {
		if got := DecodeFormula(EncodeFormula(f)); got != f {
			t.Errorf("round trip of %+v produced %+v", f, got)
		}
	}
}

func TestDecodeFormulaFallsBackToDefaults(t *testing.T) {
	lines := []string{
		"",
		"0.2",
		"0.2,0.005",
		"0.2,0.005,0.05,1",
		"abc,0.005,0.05",
		"0.2,def,0.05",
		"0.2,0.005,ghi",
	}
	for _, line := range lines {
		if got := DecodeFormula(line); got != DefaultFormula() {
			t.Errorf("DecodeFormula(%q) = %+v, want defaults", line, got)
		}
	}
}

func TestDecodeFormulaTrimsTokenSpaces(t *testing.T) {
	got := DecodeFormula("0.3, 0.01, 0.1")
	want := Formula{KPICoefficient: 0.3, ExperienceCoefficient: 0.01, MaxExperienceBonus: 0.1}
	if got != want {
		t.Fatalf("DecodeFormula = %+v, want %+v", got, want)
	}
}
