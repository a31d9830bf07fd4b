package mysql

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"darzi/internal/config"
)

// MigrateUp applies every pending migration from dir. Returns false when the
// schema was already current.
func MigrateUp(dir string, cfg config.DatabaseConfig) (bool, error) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", dir),
		fmt.Sprintf("mysql://%s", DSN(cfg)),
	)
	if err != nil {
		return false, fmt.Errorf("initializing migrations: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("applying migrations: %w", err)
	}
	return true, nil
}
