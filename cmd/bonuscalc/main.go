package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"bonuscalc/internal/domain/accounts"
	"bonuscalc/internal/domain/reports"
	"bonuscalc/internal/platform/config"
	"bonuscalc/internal/transport/cli"
)

func main() {
	// A .env file is optional; configuration falls back to the environment
	// and the built-in defaults.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	store := accounts.NewStore()
	svc := accounts.NewService(store, cfg.DataFile, cfg.FormulaFile)
	svc.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminFullName)
	svc.LoadFormula()
	svc.LoadData()

	app := cli.NewApp(svc, reports.NewService(cfg.ReportDir), os.Stdin, os.Stdout)
	app.Run()

	// Final flush on exit, mirroring the per-operation saves.
	if err := svc.SaveData(); err != nil {
		log.Printf("save data: %v", err)
	}
	if err := svc.SaveFormula(); err != nil {
		log.Printf("save formula: %v", err)
	}
}
