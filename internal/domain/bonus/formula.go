package bonus

import (
	"strconv"
	"strings"
)

const (
	DefaultKPICoefficient        = 0.2
	DefaultExperienceCoefficient = 0.005
	DefaultMaxExperienceBonus    = 0.05
)

// Formula holds the configurable bonus coefficients. The type itself never
// validates their ranges; the interactive boundary restricts what reaches it.
type Formula struct {
	KPICoefficient        float64
	ExperienceCoefficient float64
	MaxExperienceBonus    float64
}

// DefaultFormula returns the stock coefficients. It is also the fallback for
// any persisted formula line that cannot be parsed.
func DefaultFormula() Formula {
	return Formula{
		KPICoefficient:        DefaultKPICoefficient,
		ExperienceCoefficient: DefaultExperienceCoefficient,
		MaxExperienceBonus:    DefaultMaxExperienceBonus,
	}
}

// Calculate returns the bonus for a salary, an aggregate KPI score and whole
// years of experience:
//
//	experienceBonus = min(experience * ExperienceCoefficient, MaxExperienceBonus)
//	kpiBonus        = (kpiScore / 100) * KPICoefficient
//	bonus           = salary * (kpiBonus + experienceBonus)
func (f Formula) Calculate(salary, kpiScore float64, experienceYears int) float64 {
	breakdown := f.Explain(salary, kpiScore, experienceYears)
	return breakdown.Total
}

// Breakdown reports the two bonus components separately for the formula
// preview in the admin console.
type Breakdown struct {
	KPIBonus        float64
	ExperienceBonus float64
	Total           float64
}

func (f Formula) Explain(salary, kpiScore float64, experienceYears int) Breakdown {
	experienceRate := float64(experienceYears) * f.ExperienceCoefficient
	if experienceRate > f.MaxExperienceBonus {
		experienceRate = f.MaxExperienceBonus
	}
	kpiRate := kpiScore / 100 * f.KPICoefficient
	return Breakdown{
		KPIBonus:        salary * kpiRate,
		ExperienceBonus: salary * experienceRate,
		Total:           salary * (kpiRate + experienceRate),
	}
}

// EncodeFormula renders f as the single persisted CSV line. Full float
// precision so that decoding reproduces f exactly.
func EncodeFormula(f Formula) string {
	fields := []string{
		strconv.FormatFloat(f.KPICoefficient, 'f', -1, 64),
		strconv.FormatFloat(f.ExperienceCoefficient, 'f', -1, 64),
		strconv.FormatFloat(f.MaxExperienceBonus, 'f', -1, 64),
	}
	return strings.Join(fields, ",")
}

// DecodeFormula parses a persisted formula line. Anything other than exactly
// three numeric tokens yields the defaults: a half-written or legacy file
// downgrades the coefficients instead of failing startup.
func DecodeFormula(line string) Formula {
	tokens := strings.Split(line, ",")
	if len(tokens) != 3 {
		return DefaultFormula()
	}
	values := make([]float64, 0, 3)
	for _, token := range tokens {
		value, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return DefaultFormula()
		}
		values = append(values, value)
	}
	return Formula{
		KPICoefficient:        values[0],
		ExperienceCoefficient: values[1],
		MaxExperienceBonus:    values[2],
	}
}
