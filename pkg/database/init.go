package database

import (
	"fmt"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

// InitializeDatabase creates the application database if it does not exist.
// It connects to the default 'postgres' database to issue the CREATE, and is
// meant to run once at deploy time, before migrations.
func InitializeDatabase(cfg *config.Config) error {
	target := cfg.Database.DBName
	if target == "" {
		return fmt.Errorf("no database name configured")
	}

	adminCfg := FromCentralConfig(cfg.Database)
	adminCfg.DBName = "postgres"

	db, err := New(adminCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer Close(db)

	var exists bool
	err = db.Raw(`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = ?)`, target).
		Scan(&exists).Error
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot be parameterized; the name comes from config,
	// not user input.
	if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", target)).Error; err != nil {
		return fmt.Errorf("failed to create database %q: %w", target, err)
	}
	return nil
}
