package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/repository"
)

// NewTestDB opens a migrated in-memory store that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestStore opens a test store already holding plans.
func NewTestStore(t *testing.T, plans ...*domain.Plan) (*sql.DB, db.UnitOfWork) {
	t.Helper()
	database := NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	for _, p := range plans {
		if err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("seeding plan %s: %v", p.ShortID, err)
		}
	}
	return database, NewTestUoW(database)
}
