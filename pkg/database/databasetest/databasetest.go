// Package databasetest opens a real database for repository tests. Tests are
// skipped unless TEST_DATABASE_DSN is set; with TEST_REQUIRE_DATABASE set a
// missing DSN fails the test instead. Every Open empties the reporting
// tables, so run integration packages with -p 1 (see `make test-integration`).
package databasetest

import (
	"os"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/sales-insights/pkg/database"
)

// Open connects to TEST_DATABASE_DSN using TEST_DB_DRIVER (postgres by
// default), migrates models and clears the sales, inventory and products
// tables.
func Open(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	dsn := lookupDSN(t)
	if dsn == "" {
		return nil
	}

	var dialector gorm.Dialector
	switch os.Getenv("TEST_DB_DRIVER") {
	case "", database.DriverPostgres:
		dialector = postgres.Open(dsn)
	case database.DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		t.Fatalf("unsupported TEST_DB_DRIVER %q", os.Getenv("TEST_DB_DRIVER"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test database handle: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	// children first so foreign keys never block the delete
	for _, table := range []string{"sales", "inventory", "products"} {
		if !db.Migrator().HasTable(table) {
			continue
		}
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clear %s: %v", table, err)
		}
	}

	return db
}

func lookupDSN(t testing.TB) string {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn != "" {
		return dsn
	}
	if os.Getenv("TEST_REQUIRE_DATABASE") != "" {
		t.Fatal("TEST_REQUIRE_DATABASE is set but TEST_DATABASE_DSN is empty")
		return ""
	}
	t.Skip("TEST_DATABASE_DSN not set; skipping database test")
	return ""
}
