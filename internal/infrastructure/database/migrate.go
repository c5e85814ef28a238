package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"teetime/migrations"
)

// RunMigrations brings the schema at dsn up to date. An empty dir applies
// the migrations embedded in the binary; otherwise dir is read from disk.
func RunMigrations(dsn, dir string) error {
	m, err := newMigrate(dsn, dir)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}
	log.Printf("✅ Schema at version %d (dirty=%v)", version, dirty)
	return nil
}

func newMigrate(dsn, dir string) (*migrate.Migrate, error) {
	if dir != "" {
		return migrate.New("file://"+dir, dsn)
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", src, dsn)
}
