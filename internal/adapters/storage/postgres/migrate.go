package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"vetcare360/internal/platform/logger"
	"vetcare360/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate aplica las migraciones pendientes embebidas en el binario.
// Es idempotente: llamarla con el esquema al día es no-op.
func Migrate(db *sql.DB, log *logger.Logger) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("schema up-to-date", nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Info("migrations applied", map[string]any{"version": version})
	return nil
}
