package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username must not be empty")
	}
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if len(username) > 20 {
		return errors.New("username must be at most 20 characters")
	}
	for _, r := range username {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') &&
			!(r >= '0' && r <= '9') && r != '_' && r != '-' {
			return errors.New("username may contain only letters, digits, underscores and hyphens")
		}
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	if len(password) < 4 {
		return errors.New("password must be at least 4 characters")
	}
	if len(password) > 20 {
		return errors.New("password must be at most 20 characters")
	}
	return nil
}

func ValidateFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("full name must not be empty")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '.' {
			return errors.New("full name may contain only letters, spaces, hyphens and dots")
		}
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return errors.New("a hyphen cannot start or end the name")
	}
	if strings.Contains(name, "--") {
		return errors.New("double hyphens are not allowed")
	}
	return nil
}

func ValidateDepartment(department string) error {
	if strings.TrimSpace(department) == "" {
		return errors.New("department must not be empty")
	}
	return nil
}

func ValidatePosition(position string) error {
	if strings.TrimSpace(position) == "" {
		return errors.New("position must not be empty")
	}
	return nil
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidateDate checks the calendar components, leap years included.
func ValidateDate(day, month, year int) error {
	if year < 1900 || year > 2100 {
		return errors.New("year must be between 1900 and 2100")
	}
	if month < 1 || month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if day < 1 {
		return errors.New("day must be at least 1")
	}
	max := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	if day > max {
		return fmt.Errorf("this month has at most %d days", max)
	}
	return nil
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func ValidateKPIScore(score float64) error {
	if score < 0 || score > 100 {
		return errors.New("KPI must be between 0 and 100")
	}
	return nil
}

func ValidateSalary(salary float64) error {
	if salary <= 0 || salary > 1000000 {
		return errors.New("salary must be between 0 and 1000000")
	}
	return nil
}

func ValidateCoefficient(coefficient float64) error {
	if coefficient < 0 || coefficient > 1 {
		return errors.New("coefficient must be between 0 and 1")
	}
	return nil
}
