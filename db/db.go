// Package db opens the posts database and brings its schema up to date.
package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

const DefaultSQLiteURL = "./posts.db?_pragma=foreign_keys(1)"

//go:embed migrations
var migrations embed.FS

// Open connects to the database and runs pending migrations.
// An already up to date schema is not an error.
func Open(driverName, dataSourceName string) (*sql.DB, error) {
	if driverName == "" {
		driverName = DriverSQLite
	}
	if driverName == DriverSQLite && dataSourceName == "" {
		dataSourceName = DefaultSQLiteURL
	}

	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	if err := migrateUp(db, driverName); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateUp(db *sql.DB, driverName string) error {
	var (
		driver database.Driver
		dir    string
		err    error
	)
	switch driverName {
	case DriverSQLite:
		dir = "migrations/sqlite"
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case DriverPostgres:
		dir = "migrations/postgres"
		driver, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	default:
		return fmt.Errorf("unsupported database driver %q", driverName)
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrations, dir)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
