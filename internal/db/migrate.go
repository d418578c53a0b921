package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"spend-guard/db/migrations"
)

// Migrate applies all up migrations embedded in the binary to the
// database at addr, up to migrations.Version. A database left dirty by an
// interrupted run is reported rather than forced.
func Migrate(addr string) error {
	mg, closeFn, err := newMigrator(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// MigrateDown rolls back every applied migration.
func MigrateDown(addr string) error {
	mg, closeFn, err := newMigrator(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = mg.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// SchemaVersion reports the applied schema version and whether it is dirty.
func SchemaVersion(addr string) (uint, bool, error) {
	mg, closeFn, err := newMigrator(addr)
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	v, dirty, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func newMigrator(addr string) (*migrate.Migrate, func(), error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, nil, err
	}

	conn, err := sql.Open("postgres", addr)
	if err != nil {
		_ = source.Close()
		return nil, nil, fmt.Errorf("open migration connection: %w", err)
	}
	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		_ = source.Close()
		return nil, nil, fmt.Errorf("migration driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		_ = source.Close()
		return nil, nil, err
	}
	return mg, func() { _, _ = mg.Close() }, nil
}
