package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DataFile      string
	FormulaFile   string
	ReportDir     string
	AdminUsername string
	AdminPassword string
	AdminFullName string
}

func Load() Config {
	return Config{
		DataFile:      getEnv("BONUS_DATA_FILE", "users.txt"),
		FormulaFile:   getEnv("BONUS_FORMULA_FILE", "formula.txt"),
		ReportDir:     getEnv("BONUS_REPORT_DIR", "storage/reports"),
		AdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		AdminFullName: getEnv("SEED_ADMIN_NAME", "System Administrator"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("BONUS_DATA_FILE must not be empty")
	}
	if strings.TrimSpace(c.FormulaFile) == "" {
		return fmt.Errorf("BONUS_FORMULA_FILE must not be empty")
	}
	if strings.TrimSpace(c.ReportDir) == "" {
		return fmt.Errorf("BONUS_REPORT_DIR must not be empty")
	}
	if strings.TrimSpace(c.AdminUsername) == "" {
		return fmt.Errorf("SEED_ADMIN_USERNAME must not be empty")
	}
	if strings.TrimSpace(c.AdminPassword) == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD must not be empty")
	}
	return nil
}
