package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	"github.com/dealersync/dealersync/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	pgmodels "github.com/dealersync/dealersync/internal/platform/storage/gen/postgres/public/model"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("skipping integration test, provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// CleanupData removes all runs, run errors and listings.
func CleanupData(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := table.RunError.DELETE().WHERE(table.RunError.ID.IS_NOT_NULL()).Exec(db); err != nil {
		t.Fatal("can't cleanup run errors", err)
	}
	if _, err := table.Run.DELETE().WHERE(table.Run.ID.IS_NOT_NULL()).Exec(db); err != nil {
		t.Fatal("can't cleanup runs", err)
	}
	if _, err := table.Listing.DELETE().WHERE(table.Listing.ID.IS_NOT_NULL()).Exec(db); err != nil {
		t.Fatal("can't cleanup listings", err)
	}
}

// InsertListings is a helper test function to insert listings.
func InsertListings(t *testing.T, exc qrm.Executable, listings ...pgmodels.Listing) {
	t.Helper()

	if len(listings) == 0 {
		return
	}

	_, err := table.Listing.INSERT(table.Listing.AllColumns.Except(table.Listing.ID, table.Listing.CreatedAt)).
		MODELS(listings).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert listings", err)
	}
}

// SelectRunErrors returns all run errors ordered by position.
func SelectRunErrors(t *testing.T, db *sql.DB) []pgmodels.RunError {
	t.Helper()

	var runErrors []pgmodels.RunError
	err := table.RunError.SELECT(table.RunError.AllColumns).
		ORDER_BY(table.RunError.Position.ASC()).
		Query(db, &runErrors)
	if err != nil {
		t.Fatal("can't select run errors", err)
	}

	return runErrors
}
