package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/teleworkapp/telework-backend-go/internal/pkg/database"
)

var testDB *database.DB

// setupTestDB connects to the test database and ensures the schema, skipping
// the calling test when no test database is configured.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database-backed tests")
	}
	if testDB != nil {
		return testDB
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := testDB.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to ensure schema: %v", err)
	}
	return testDB
}

// truncateTables removes all rows from the given tables.
func truncateTables(t *testing.T, ctx context.Context, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if _, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}
