package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var files embed.FS

// Migrator manages database migrations
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator creates a migrator for the database at databaseURL (pgx5:// scheme)
// using the SQL files embedded in this package.
func NewMigrator(databaseURL string, lgr zerolog.Logger) (*Migrator, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise migrations: %w", err)
	}
	m.Log = &migrateLogger{lgr: lgr}

	return &Migrator{m: m}, nil
}

// Up applies all pending migrations
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the given number of migrations
func (mg *Migrator) Down(steps int) error {
	if steps < 1 {
		return fmt.Errorf("migrate down: steps must be positive, got %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version returns the current schema version; version 0 means no migration applied.
func (mg *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Force sets the schema version without running migrations, clearing the dirty flag
func (mg *Migrator) Force(version int) error {
	return mg.m.Force(version)
}

// Close releases the source and database handles
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

type migrateLogger struct {
	lgr zerolog.Logger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.lgr.Info().Msgf("migrate: "+format, v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}
