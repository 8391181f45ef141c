package main

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// migrationsDir is resolved relative to the working directory the server is
// started from.
const migrationsDir = "migrations"

// runMigrations executes database migrations using goose.
func runMigrations(db *sql.DB, command string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch command {
	case "up":
		return goose.Up(db, migrationsDir)
	case "down":
		return goose.Down(db, migrationsDir)
	case "status":
		return goose.Status(db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %q (want up, down, or status)", command)
	}
}
