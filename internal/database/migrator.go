package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsDir = "migrations"
	defaultSeedsDir      = "seeds"
)

// Migrator applies schema migrations and optional seed data against the
// raw *sql.DB underneath the gorm connection.
type Migrator struct {
	db            *sql.DB
	migrationsDir string
	seedsDir      string
	maxWait       int
	waitInterval  time.Duration
}

// NewMigrator creates a migrator with the default directories and a
// 30-attempt readiness window.
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{
		db:            db,
		migrationsDir: defaultMigrationsDir,
		seedsDir:      defaultSeedsDir,
		maxWait:       30,
		waitInterval:  2 * time.Second,
	}
}

// WaitForDatabase pings until the database accepts connections or the
// attempt budget runs out. Container orchestration may start the API
// before postgres is ready.
func (m *Migrator) WaitForDatabase() error {
	for i := 1; i <= m.maxWait; i++ {
		if err := m.db.Ping(); err == nil {
			return nil
		} else {
			log.Printf("database not ready (attempt %d/%d): %v", i, m.maxWait, err)
		}
		time.Sleep(m.waitInterval)
	}
	return fmt.Errorf("database not ready after %d attempts", m.maxWait)
}

// Up applies all pending migrations. A missing migrations directory is
// not an error so the binary can run against a pre-provisioned schema.
func (m *Migrator) Up() error {
	if _, err := os.Stat(m.migrationsDir); os.IsNotExist(err) {
		log.Printf("no migrations directory at %s, skipping", m.migrationsDir)
		return nil
	}

	mg, err := m.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := mg.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		log.Printf("database dirty at version %d, forcing", version)
		if err := mg.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	switch err := mg.Up(); err {
	case nil:
		newVersion, _, verr := mg.Version()
		if verr != nil {
			return fmt.Errorf("failed to read migration version: %w", verr)
		}
		log.Printf("migrations applied, now at version %d", newVersion)
	case migrate.ErrNoChange:
		log.Println("schema already up to date")
	default:
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Seed executes every .sql file in the seeds directory, in name order.
// A failing seed file is skipped rather than aborting startup.
func (m *Migrator) Seed() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		return nil
	}

	if _, err := os.Stat(m.seedsDir); os.IsNotExist(err) {
		log.Printf("no seeds directory at %s, skipping", m.seedsDir)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(m.seedsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := m.db.Exec(string(content)); err != nil {
			log.Printf("seed file %s failed, skipping: %v", filepath.Base(file), err)
			continue
		}
		log.Printf("seed file %s applied", filepath.Base(file))
	}

	return nil
}

// Version reports the current migration version and dirty flag.
func (m *Migrator) Version() (version uint, dirty bool, err error) {
	if _, err := os.Stat(m.migrationsDir); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	mg, err := m.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return mg.Version()
}

func (m *Migrator) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(m.migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	mg, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mg, nil
}

// MigrateIfEnabled waits for the database and applies migrations plus
// seeds when AUTO_MIGRATE=true; otherwise it is a no-op.
func MigrateIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		log.Println("auto-migration disabled (AUTO_MIGRATE != true)")
		return nil
	}

	migrator := NewMigrator(db)

	if err := migrator.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := migrator.Seed(); err != nil {
		log.Printf("seed data loading failed: %v", err)
	}

	return nil
}
