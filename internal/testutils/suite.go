package testutils

import (
	"path/filepath"
	"testing"

	"employee-records/internal/config"
	"employee-records/internal/database"

	"gorm.io/gorm"
)

// ------------------------------
// Base suite type
// ------------------------------
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite opens a fresh SQLite database file under the test's temp dir and runs
// migrations. Every suite gets its own file, so suites never see each other's rows.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "employee_test.db")
	db, err := database.Initialize(database.DriverSQLite, dsn, nil)
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}

	return &BaseTestSuite{
		DB:     db,
		Config: TestConfig(database.DriverSQLite, dsn),
	}
}

// TestConfig builds the configuration used by tests that wire the full router
func TestConfig(driver, dsn string) *config.Config {
	return &config.Config{
		Environment:     "test",
		Port:            "8080",
		LogLevel:        "debug",
		DatabaseDriver:  driver,
		DatabaseURL:     dsn,
		DatabaseName:    "employee_test",
		SecretKey:       "test-secret-key",
		AllowedOrigins:  []string{"http://localhost:3000"},
		MaxUploadSizeMB: 1,
	}
}

// RunWithTestSuite is a convenience wrapper to run a function with a ready suite.
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite cleans the tables and releases SQLite connections. The shared
// Postgres container is left running and torn down by CleanupSharedContainer.
func (s *BaseTestSuite) TeardownTestSuite() {
	s.CleanTestDB()
	if s.DB != nil && s.DB.Dialector.Name() == "sqlite" {
		_ = database.Close(s.DB)
	}
}

// CleanTestDB removes all rows from known tables if they exist.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"employee",
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if !m.HasTable(t) {
			continue
		}
		if s.DB.Dialector.Name() == "postgres" {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		} else {
			s.DB.Exec(`DELETE FROM "` + t + `";`)
		}
	}
}
