package accounts

import (
	"errors"
	"strings"
	"testing"

	"bonuscalc/internal/domain/bonus"
	"bonuscalc/internal/platform/obfuscate"
)

func sampleEmployee() *Account {
	emp := NewEmployee("ivanov", "secret99", "Иванов Иван", "Engineering", "Developer", 2450.5, HireDate{Day: 3, Month: 9, Year: 2018})
	emp.KPI = bonus.KPI{ProjectCompletion: 85, CodeQuality: 90.5, Teamwork: 70, Innovation: 60}
	return emp
}

func TestEmployeeRecordRoundTrip(t *testing.T) {
	emp := sampleEmployee()
	decoded, err := DecodeAccount(EncodeAccount(emp))
	if err != nil {
		t.Fatalf("DecodeAccount: %v", err)
	}

	if decoded.Username != emp.Username {
		t.Errorf("Username = %q, want %q", decoded.Username, emp.Username)
	}
	if decoded.PasswordHash != emp.PasswordHash {
		t.Errorf("PasswordHash changed across the round trip")
	}
	if !decoded.VerifyPassword("secret99") {
		t.Error("reloaded account no longer verifies the original password")
	}
	if decoded.FullName != emp.FullName || decoded.Department != emp.Department || decoded.Position != emp.Position {
		t.Errorf("text fields changed: %+v", decoded)
	}
	if decoded.Salary != emp.Salary {
		t.Errorf("Salary = %v, want %v", decoded.Salary, emp.Salary)
	}
	if decoded.HireDate != emp.HireDate {
		t.Errorf("HireDate = %+v, want %+v", decoded.HireDate, emp.HireDate)
	}
	if decoded.KPI != emp.KPI {
		t.Errorf("KPI = %+v, want %+v", decoded.KPI, emp.KPI)
	}
	if !decoded.Approved {
		t.Error("approved flag lost")
	}
}

func TestPasswordHashIsNeverReObfuscated(t *testing.T) {
	emp := sampleEmployee()
	line := EncodeAccount(emp)
	once, err := DecodeAccount(line)
	if err != nil {
		t.Fatalf("DecodeAccount: %v", err)
	}
	twice, err := DecodeAccount(EncodeAccount(once))
	if err != nil {
		t.Fatalf("DecodeAccount: %v", err)
	}
	if twice.PasswordHash != obfuscate.Apply("secret99") {
		t.Fatal("hash drifted after a second round trip")
	}
}

func TestDecodeAccountSkipSentinels(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"empty", "", ErrShortRecord},
		{"four fields", "u,p,n,user", ErrShortRecord},
		{"admin row", "admin,hash,System Administrator,admin,1,2024-01-01", ErrAdminRecord},
		{"five fields", "u,p,n,user,1", ErrPartialRecord},
		{"twelve fields", "u,p,n,user,1,d,pos,100,1.1.2020,10,20,30", ErrPartialRecord},
	}
	for _, tc := range cases {
		if _, err := DecodeAccount(tc.line); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestDecodeAccountNumericGarbage(t *testing.T) {
	good := EncodeAccount(sampleEmployee())
	for _, bad := range []struct {
		name  string
		index int
	}{
		{"salary", 7},
		{"hire date", 8},
		{"kpi", 10},
	} {
		tokens := strings.Split(good, ",")
		tokens[bad.index] = "garbage"
		_, err := DecodeAccount(strings.Join(tokens, ","))
		if err == nil {
			t.Errorf("%s: garbage accepted", bad.name)
		}
		if errors.Is(err, ErrShortRecord) || errors.Is(err, ErrAdminRecord) || errors.Is(err, ErrPartialRecord) {
			t.Errorf("%s: parse failure reported as a skip sentinel: %v", bad.name, err)
		}
	}
}

func TestDecodeAccountUnapprovedFlag(t *testing.T) {
	emp := sampleEmployee()
	emp.Approved = false
	decoded, err := DecodeAccount(EncodeAccount(emp))
	if err != nil {
		t.Fatalf("DecodeAccount: %v", err)
	}
	if decoded.Approved {
		t.Fatal("unapproved flag lost across the round trip")
	}
}

func TestAdminRowShape(t *testing.T) {
	admin := NewAdmin("admin", "admin123", "System Administrator")
	line := EncodeAccount(admin)
	tokens := strings.Split(line, ",")
	if len(tokens) != 6 {
		t.Fatalf("admin row has %d fields, want 6: %q", len(tokens), line)
	}
	if tokens[3] != RoleAdmin || tokens[4] != "1" || tokens[5] != "2024-01-01" {
		t.Fatalf("unexpected admin row: %q", line)
	}
}
