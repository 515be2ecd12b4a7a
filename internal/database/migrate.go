package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Migrations holds the versioned PostgreSQL schema
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations
const MigrationsDir = "migrations"

// MigrateUp applies all pending embedded migrations
func MigrateUp(db *sql.DB) error {
	goose.SetBaseFS(Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(db, MigrationsDir); err != nil {
		return fmt.Errorf("failed to run up migrations: %w", err)
	}
	return nil
}
