package cli

import "testing"

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "user_01", "ivan-petrov", "A1234567890123456789"}
	for _, username := range valid {
		if err := ValidateUsername(username); err != nil {
			t.Errorf("ValidateUsername(%q) = %v, want nil", username, err)
		}
	}
	invalid := []string{"", "ab", "with space", "пользователь", "a!b", "aaaaaaaaaaaaaaaaaaaaa"}
	for _, username := range invalid {
		if err := ValidateUsername(username); err == nil {
			t.Errorf("ValidateUsername(%q) accepted", username)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("1234"); err != nil {
		t.Errorf("minimum length rejected: %v", err)
	}
	for _, password := range []string{"", "abc", "aaaaaaaaaaaaaaaaaaaaa"} {
		if err := ValidatePassword(password); err == nil {
			t.Errorf("ValidatePassword(%q) accepted", password)
		}
	}
}

func TestValidateFullName(t *testing.T) {
	valid := []string{"Ivan Petrov", "Иванов Иван Иванович", "Anna-Maria J. Smith"}
	for _, name := range valid {
		if err := ValidateFullName(name); err != nil {
			t.Errorf("ValidateFullName(%q) = %v, want nil", name, err)
		}
	}
	invalid := []string{"", "  ", "John3", "-John", "John-", "An--na", "Name, Surname"}
	for _, name := range invalid {
		if err := ValidateFullName(name); err == nil {
			t.Errorf("ValidateFullName(%q) accepted", name)
		}
	}
}

func TestValidateDate(t *testing.T) {
	valid := []struct{ d, m, y int }{
		{29, 2, 2024},
		{28, 2, 2023},
		{31, 12, 1900},
		{29, 2, 2000},
	}
	for _, tc := range valid {
		if err := ValidateDate(tc.d, tc.m, tc.y); err != nil {
			t.Errorf("ValidateDate(%d.%d.%d) = %v, want nil", tc.d, tc.m, tc.y, err)
		}
	}
	invalid := []struct{ d, m, y int }{
		{29, 2, 2023},
		{29, 2, 1900},
		{32, 1, 2020},
		{31, 4, 2020},
		{0, 1, 2020},
		{1, 0, 2020},
		{1, 13, 2020},
		{1, 1, 1899},
		{1, 1, 2101},
	}
	for _, tc := range invalid {
		if err := ValidateDate(tc.d, tc.m, tc.y); err == nil {
			t.Errorf("ValidateDate(%d.%d.%d) accepted", tc.d, tc.m, tc.y)
		}
	}
}

func TestValidateRanges(t *testing.T) {
	if err := ValidateKPIScore(100); err != nil {
		t.Errorf("KPI 100 rejected: %v", err)
	}
	if err := ValidateKPIScore(100.5); err == nil {
		t.Error("KPI above 100 accepted")
	}
	if err := ValidateSalary(0); err == nil {
		t.Error("zero salary accepted")
	}
	if err := ValidateSalary(500); err != nil {
		t.Errorf("normal salary rejected: %v", err)
	}
	if err := ValidateCoefficient(1.5); err == nil {
		t.Error("coefficient above 1 accepted")
	}
}
