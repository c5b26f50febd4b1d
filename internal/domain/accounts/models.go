// Package accounts owns the user model, its flat-file codec, the
// authoritative in-memory store and the service operating on both.
package accounts

import (
	"github.com/google/uuid"

	"bonuscalc/internal/domain/bonus"
	"bonuscalc/internal/platform/obfuscate"
)

// Account is a single stored identity. Role tags the two variants: admins
// carry only the identity fields, employees additionally use Department,
// Position, Salary, HireDate and KPI. The ID is generated, never persisted,
// and exists so that removal works on identity rather than field equality.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Role         string
	Approved     bool

	Department string
	Position   string
	Salary     float64
	HireDate   HireDate
	KPI        bonus.KPI
}

func NewAdmin(username, password, fullName string) *Account {
	return &Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: obfuscate.Apply(password),
		FullName:     fullName,
		Role:         RoleAdmin,
		Approved:     true,
	}
}

func NewEmployee(username, password, fullName, department, position string, salary float64, hireDate HireDate) *Account {
	return &Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: obfuscate.Apply(password),
		FullName:     fullName,
		Role:         RoleUser,
		Approved:     true,
		Department:   department,
		Position:     position,
		Salary:       salary,
		HireDate:     hireDate,
	}
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// SetPassword stores the obfuscated form of a plain-text password. The
// loader never calls this: hashes read from file are already obfuscated and
// are assigned verbatim.
func (a *Account) SetPassword(plain string) {
	a.PasswordHash = obfuscate.Apply(plain)
}

func (a *Account) VerifyPassword(plain string) bool {
	return obfuscate.Verify(plain, a.PasswordHash)
}

// Experience returns whole years of service as of now.
func (a *Account) Experience() int {
	return a.HireDate.Experience()
}

// Bonus computes the employee's bonus under the given formula, using the
// wall-clock experience at call time.
func (a *Account) Bonus(f bonus.Formula) float64 {
	return f.Calculate(a.Salary, a.KPI.Total(), a.Experience())
}
