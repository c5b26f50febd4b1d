package accounts

import (
	"errors"
	"fmt"
	"log"

	"bonuscalc/internal/domain/bonus"
	"bonuscalc/internal/platform/flatfile"
)

// Service owns the store, the active formula and both file paths. Every
// mutating operation finishes by rewriting the relevant file; a failed write
// is returned for display but the in-memory change stays authoritative.
type Service struct {
	store       *Store
	formula     bonus.Formula
	dataFile    string
	formulaFile string
}

func NewService(store *Store, dataFile, formulaFile string) *Service {
	return &Service{
		store:       store,
		formula:     bonus.DefaultFormula(),
		dataFile:    dataFile,
		formulaFile: formulaFile,
	}
}

func (s *Service) Store() *Store {
	return s.store
}

// EnsureAdmin creates the bootstrap admin when none is live. Admin rows are
// skipped on load, so this runs on every start.
func (s *Service) EnsureAdmin(username, password, fullName string) {
	if s.store.HasAdmin() {
		return
	}
	s.store.AddLive(NewAdmin(username, password, fullName))
}

// LoadFormula reads the formula file. A missing file or an unparseable line
// leaves the defaults in place; neither is an error.
func (s *Service) LoadFormula() {
	lines, exists, err := flatfile.ReadLines(s.formulaFile)
	if err != nil {
		log.Printf("formula file %s unreadable, using defaults: %v", s.formulaFile, err)
		s.formula = bonus.DefaultFormula()
		return
	}
	if !exists || len(lines) == 0 {
		log.Printf("formula file %s not found, using defaults", s.formulaFile)
		s.formula = bonus.DefaultFormula()
		return
	}
	s.formula = bonus.DecodeFormula(lines[0])
}

// LoadData reads the data file into the store. Short and admin rows are
// skipped silently, partial or unparseable rows with a diagnostic; a bad
// line never aborts the rest of the file.
func (s *Service) LoadData() {
	lines, exists, err := flatfile.ReadLines(s.dataFile)
	if err != nil {
		log.Printf("data file %s unreadable: %v", s.dataFile, err)
		return
	}
	if !exists {
		log.Printf("data file %s not found, starting empty", s.dataFile)
		return
	}
	for i, line := range lines {
		account, err := DecodeAccount(line)
		if err != nil {
			if !errors.Is(err, ErrShortRecord) && !errors.Is(err, ErrAdminRecord) {
				log.Printf("data file %s line %d skipped: %v", s.dataFile, i+1, err)
			}
			continue
		}
		s.store.AddLive(account)
	}
}

// SaveData rewrites the data file from every live account. Pending
// registrations are not persisted.
func (s *Service) SaveData() error {
	lines := make([]string, 0, s.store.Count())
	for _, a := range s.store.Users() {
		lines = append(lines, EncodeAccount(a))
	}
	if err := flatfile.WriteLines(s.dataFile, lines); err != nil {
		return fmt.Errorf("save data file: %w", err)
	}
	return nil
}

func (s *Service) SaveFormula() error {
	if err := flatfile.WriteLines(s.formulaFile, []string{bonus.EncodeFormula(s.formula)}); err != nil {
		return fmt.Errorf("save formula file: %w", err)
	}
	return nil
}

// Authenticate succeeds only for a live, approved account with a matching
// username and password. Every failure mode maps to the same error.
func (s *Service) Authenticate(username, password string) (*Account, error) {
	for _, a := range s.store.Users() {
		if a.Username == username && a.VerifyPassword(password) && a.Approved {
			return a, nil
		}
	}
	return nil, ErrAuthFailed
}

// UsernameExists scans live accounts only.
func (s *Service) UsernameExists(username string) bool {
	return s.store.FindByUsername(username) != nil
}

// Register queues a self-registered employee for admin approval. The new
// account is unapproved and invisible to authentication and listings until
// approved. Salary, hire date and KPI are set during approval.
func (s *Service) Register(username, password, fullName, department, position string) error {
	if s.store.UsernameTaken(username) {
		return ErrUsernameTaken
	}
	emp := NewEmployee(username, password, fullName, department, position, 0, HireDate{Day: 1, Month: 1, Year: 2000})
	emp.Approved = false
	s.store.AddPending(emp)
	return nil
}

// ApproveRegistration moves the pending registration at the 1-based index
// into the live accounts with the supplied employment data, then persists.
// Index zero or out of range cancels without any mutation.
func (s *Service) ApproveRegistration(index int, salary float64, hireDate HireDate, kpi bonus.KPI) (*Account, error) {
	emp := s.store.TakePendingAt(index)
	if emp == nil {
		return nil, ErrInvalidIndex
	}
	emp.Salary = salary
	emp.HireDate = hireDate
	emp.KPI = kpi
	emp.Approved = true
	s.store.AddLive(emp)
	return emp, s.SaveData()
}

// AddEmployee is the direct admin path: the account bypasses the pending
// queue and is approved immediately.
func (s *Service) AddEmployee(username, password, fullName, department, position string, salary float64, hireDate HireDate, kpi bonus.KPI) (*Account, error) {
	if s.store.UsernameTaken(username) {
		return nil, ErrUsernameTaken
	}
	emp := NewEmployee(username, password, fullName, department, position, salary, hireDate)
	emp.KPI = kpi
	s.store.AddLive(emp)
	return emp, s.SaveData()
}

// DeleteEmployee removes the employee at the 1-based index of the employee
// view. Index zero or out of range is a no-op.
func (s *Service) DeleteEmployee(index int) error {
	employees := s.store.Employees()
	if index < 1 || index > len(employees) {
		return ErrInvalidIndex
	}
	s.store.RemoveByID(employees[index-1].ID)
	return s.SaveData()
}

func (s *Service) UpdateFullName(a *Account, fullName string) error {
	a.FullName = fullName
	return s.SaveData()
}

func (s *Service) UpdateKPI(a *Account, kpi bonus.KPI) error {
	a.KPI = kpi
	return s.SaveData()
}

func (s *Service) UpdateSalary(a *Account, salary float64) error {
	a.Salary = salary
	return s.SaveData()
}

func (s *Service) UpdateHireDate(a *Account, hireDate HireDate) error {
	a.HireDate = hireDate
	return s.SaveData()
}

func (s *Service) UpdateDepartmentPosition(a *Account, department, position string) error {
	a.Department = department
	a.Position = position
	return s.SaveData()
}

func (s *Service) Formula() bonus.Formula {
	return s.formula
}

func (s *Service) SetKPICoefficient(v float64) error {
	s.formula.KPICoefficient = v
	return s.SaveFormula()
}

func (s *Service) SetExperienceCoefficient(v float64) error {
	s.formula.ExperienceCoefficient = v
	return s.SaveFormula()
}

func (s *Service) SetMaxExperienceBonus(v float64) error {
	s.formula.MaxExperienceBonus = v
	return s.SaveFormula()
}

func (s *Service) ResetFormula() error {
	s.formula = bonus.DefaultFormula()
	return s.SaveFormula()
}
