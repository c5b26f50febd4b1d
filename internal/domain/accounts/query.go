package accounts

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bonuscalc/internal/domain/bonus"
)

// Folding and collation are locale-aware so Cyrillic names search and sort
// the same way Latin ones do.
var (
	lowerCaser   = cases.Lower(language.Russian)
	nameCollator = collate.New(language.Russian, collate.IgnoreCase)
)

func fold(s string) string {
	return lowerCaser.String(s)
}

// Search returns the employees whose chosen field contains term,
// case-insensitively, in store order.
func (s *Service) Search(field SearchField, term string) []*Account {
	needle := fold(term)
	var results []*Account
	for _, emp := range s.store.Employees() {
		var haystack string
		switch field {
		case SearchByName:
			haystack = emp.FullName
		case SearchByPosition:
			haystack = emp.Position
		case SearchByDepartment:
			haystack = emp.Department
		default:
			return nil
		}
		if strings.Contains(fold(haystack), needle) {
			results = append(results, emp)
		}
	}
	return results
}

// SortedEmployees returns an ordered copy of the employee view; the store
// order is never mutated. Name and department sort ascending under Russian
// collation, bonus and experience sort descending.
func (s *Service) SortedEmployees(key SortKey) []*Account {
	employees := s.store.Employees()
	switch key {
	case SortByName:
		sort.SliceStable(employees, func(i, j int) bool {
			return nameCollator.CompareString(employees[i].FullName, employees[j].FullName) < 0
		})
	case SortByBonus:
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].Bonus(s.formula) > employees[j].Bonus(s.formula)
		})
	case SortByExperience:
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].Experience() > employees[j].Experience()
		})
	case SortByDepartment:
		sort.SliceStable(employees, func(i, j int) bool {
			return nameCollator.CompareString(employees[i].Department, employees[j].Department) < 0
		})
	}
	return employees
}

// BonusReview runs the current formula over every employee and aggregates
// the results.
func (s *Service) BonusReview() bonus.Review {
	employees := s.store.Employees()
	rows := make([]bonus.ReviewRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, bonus.ReviewRow{
			Name:       emp.FullName,
			Salary:     emp.Salary,
			KPIScore:   emp.KPI.Total(),
			Experience: emp.Experience(),
			Bonus:      emp.Bonus(s.formula),
		})
	}
	return bonus.BuildReview(rows)
}
