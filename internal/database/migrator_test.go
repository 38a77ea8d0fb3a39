package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrator(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrator := NewMigrator(db)

	assert.NotNil(t, migrator)
	assert.Equal(t, db, migrator.db)
	assert.Equal(t, defaultMigrationsDir, migrator.migrationsDir)
	assert.Equal(t, defaultSeedsDir, migrator.seedsDir)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	migrator := NewMigrator(db)
	err = migrator.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	// First ping fails, second succeeds
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	migrator := NewMigrator(db)
	migrator.maxWait = 2
	migrator.waitInterval = 50 * time.Millisecond

	err = migrator.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	migrator := NewMigrator(db)
	migrator.maxWait = 2
	migrator.waitInterval = 50 * time.Millisecond

	for i := 0; i < migrator.maxWait; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = migrator.WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestUp_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrator := NewMigrator(db)
	migrator.migrationsDir = "/nonexistent/path/to/migrations"

	err = migrator.Up()

	// A missing directory means a pre-provisioned schema, not a failure
	assert.NoError(t, err)
}

func TestSeed_DisabledByEnvironment(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "false")
	defer os.Setenv("SEED_DATABASE", originalValue)

	migrator := NewMigrator(db)
	err = migrator.Seed()

	assert.NoError(t, err)
}

func TestSeed_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	migrator := NewMigrator(db)
	migrator.seedsDir = "/nonexistent/seeds/path"

	err = migrator.Seed()

	assert.NoError(t, err)
}

func TestSeed_NoSeedFiles(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	migrator := NewMigrator(db)
	migrator.seedsDir = tempDir

	err = migrator.Seed()

	assert.NoError(t, err)
}

func TestSeed_SuccessfulExecution(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()

	seedContent := `
INSERT INTO users (id, email, name, password_hash)
VALUES ('a0000000-0000-0000-0000-000000000001', 'maria@example.com', 'Maria', 'hash')
ON CONFLICT (email) DO NOTHING;
`
	seedFile := filepath.Join(tempDir, "001_demo_user.sql")
	require.NoError(t, os.WriteFile(seedFile, []byte(seedContent), 0644))

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))

	migrator := NewMigrator(db)
	migrator.seedsDir = tempDir

	err = migrator.Seed()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_ExecutionFailureIsContinued(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()

	seed1 := filepath.Join(tempDir, "001_bad_data.sql")
	require.NoError(t, os.WriteFile(seed1, []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644))

	seed2 := filepath.Join(tempDir, "002_good_data.sql")
	require.NoError(t, os.WriteFile(seed2, []byte("INSERT INTO users VALUES ('test');"), 0644))

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	// A failed seed file is logged and skipped, not fatal
	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))

	migrator := NewMigrator(db)
	migrator.seedsDir = tempDir

	err = migrator.Seed()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()

	// A directory where a file is expected forces a read error
	seedDir := filepath.Join(tempDir, "001_invalid.sql")
	require.NoError(t, os.Mkdir(seedDir, 0755))

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	migrator := NewMigrator(db)
	migrator.seedsDir = tempDir

	err = migrator.Seed()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestMigrateIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	originalValue := os.Getenv("AUTO_MIGRATE")
	os.Setenv("AUTO_MIGRATE", "false")
	defer os.Setenv("AUTO_MIGRATE", originalValue)

	err = MigrateIfEnabled(db)

	assert.NoError(t, err)
}

func TestVersion_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrator := NewMigrator(db)
	migrator.migrationsDir = "/nonexistent/migrations"

	_, _, err = migrator.Version()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}
