package accounts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"bonuscalc/internal/domain/bonus"
)

// EncodeAccount renders one persisted line. For employees it is the exact
// inverse of DecodeAccount. Admin rows are written in the legacy short form
// with the placeholder date; they are never read back, the bootstrap admin
// is recreated from configuration on every start.
func EncodeAccount(a *Account) string {
	if a.IsAdmin() {
		return strings.Join([]string{
			a.Username,
			a.PasswordHash,
			a.FullName,
			a.Role,
			approvedFlagTrue,
			adminPlaceholderDate,
		}, ",")
	}
	return strings.Join([]string{
		a.Username,
		a.PasswordHash,
		a.FullName,
		a.Role,
		encodeApproved(a.Approved),
		a.Department,
		a.Position,
		formatFloat(a.Salary),
		a.HireDate.String(),
		formatFloat(a.KPI.ProjectCompletion),
		formatFloat(a.KPI.CodeQuality),
		formatFloat(a.KPI.Teamwork),
		formatFloat(a.KPI.Innovation),
	}, ",")
}

// DecodeAccount parses one persisted line into an employee account.
// Skippable lines are reported through the codec sentinels: ErrShortRecord
// for fewer than five fields, ErrAdminRecord for admin rows, and
// ErrPartialRecord for non-admin rows too short to reconstruct. Numeric
// garbage in salary, hire date or KPI fields yields a wrapped parse error;
// the loader skips the line and continues.
func DecodeAccount(line string) (*Account, error) {
	tokens := strings.Split(line, ",")
	if len(tokens) < minRecordFields {
		return nil, ErrShortRecord
	}
	if tokens[3] == RoleAdmin {
		return nil, ErrAdminRecord
	}
	if len(tokens) < employeeRecordFields {
		return nil, ErrPartialRecord
	}

	salary, err := strconv.ParseFloat(tokens[7], 64)
	if err != nil {
		return nil, fmt.Errorf("salary %q: %w", tokens[7], err)
	}
	hireDate, err := ParseHireDate(tokens[8])
	if err != nil {
		return nil, err
	}
	scores := make([]float64, 0, 4)
	for _, token := range tokens[9:13] {
		score, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("kpi %q: %w", token, err)
		}
		scores = append(scores, score)
	}

	return &Account{
		ID:       uuid.NewString(),
		Username: tokens[0],
		// Already obfuscated on disk; assigned verbatim, never re-applied.
		PasswordHash: tokens[1],
		FullName:     tokens[2],
		Role:         RoleUser,
		Approved:     tokens[4] == approvedFlagTrue,
		Department:   tokens[5],
		Position:     tokens[6],
		Salary:       salary,
		HireDate:     hireDate,
		KPI: bonus.KPI{
			ProjectCompletion: scores[0],
			CodeQuality:       scores[1],
			Teamwork:          scores[2],
			Innovation:        scores[3],
		},
	}, nil
}

func encodeApproved(approved bool) string {
	if approved {
		return approvedFlagTrue
	}
	return "0"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
