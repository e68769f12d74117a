package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrator wraps golang-migrate with logging and no-change handling.
// Schema files live under migrations/ as <version>_<name>.{up,down}.sql
// pairs.
type Migrator struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

// New builds a Migrator on an existing postgres connection.
func New(db *sql.DB, migrationsPath string, logger *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migrate instance: %w", err)
	}

	return &Migrator{m: m, logger: logger}, nil
}

// Up applies every pending migration.
func (mg *Migrator) Up() error {
	if done, err := mg.run(mg.m.Up()); done || err != nil {
		return err
	}
	mg.logVersion("migrations applied")
	return nil
}

// Down rolls every migration back.
func (mg *Migrator) Down() error {
	if done, err := mg.run(mg.m.Down()); done || err != nil {
		return err
	}
	mg.logger.Info("all migrations rolled back")
	return nil
}

// Steps applies n migrations; negative n rolls back.
func (mg *Migrator) Steps(n int) error {
	if done, err := mg.run(mg.m.Steps(n)); done || err != nil {
		return err
	}
	mg.logVersion("migration steps applied", zap.Int("steps", n))
	return nil
}

// GoTo migrates up or down to an exact version.
func (mg *Migrator) GoTo(version uint) error {
	if done, err := mg.run(mg.m.Migrate(version)); done || err != nil {
		return err
	}
	mg.logger.Info("migrated to version", zap.Uint("version", version))
	return nil
}

// Version reports the current version; (0, false, nil) means no
// migrations have been applied yet.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration version: %w", err)
	}
	return version, dirty, nil
}

// Force overwrites the recorded version without running any migration.
// Only for repairing a dirty state.
func (mg *Migrator) Force(version int) error {
	mg.logger.Warn("forcing migration version", zap.Int("version", version))
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	return nil
}

// Drop removes every object in the database.
func (mg *Migrator) Drop() error {
	mg.logger.Warn("dropping all database objects")
	if err := mg.m.Drop(); err != nil {
		return fmt.Errorf("drop database: %w", err)
	}
	return nil
}

// Close releases the source and database handles.
func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()
	if sourceErr != nil {
		return fmt.Errorf("close migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration database: %w", dbErr)
	}
	return nil
}

// run normalizes a migrate call result: ErrNoChange is logged and
// reported as done, other errors are wrapped.
func (mg *Migrator) run(err error) (bool, error) {
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("database already up to date")
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("migration failed: %w", err)
	}
	return false, nil
}

func (mg *Migrator) logVersion(msg string, fields ...zap.Field) {
	if version, dirty, err := mg.Version(); err == nil {
		fields = append(fields, zap.Uint("version", version), zap.Bool("dirty", dirty))
	}
	mg.logger.Info(msg, fields...)
}
