// Package testutil provides helpers for tests that need a stock ledger.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/gilded-rose/internal/model"
	"github.com/Veraticus/gilded-rose/internal/storage"
)

// SetupTestDB creates a migrated in-memory ledger seeded with items.
// Passing no items leaves the ledger empty.
//
// Example:
//
//	store := testutil.SetupTestDB(t, inventory.Default())
func SetupTestDB(t *testing.T, items []model.Item) *storage.SQLiteStorage {
	t.Helper()
	return setup(t, storage.InMemory, items)
}

// SetupTestDBFile creates a migrated ledger file under t.TempDir and returns
// its path, for code that opens the ledger itself.
func SetupTestDBFile(t *testing.T, items []model.Item) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "rose.db")
	store := setup(t, dbPath, items)
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close test database: %v", err)
	}
	return dbPath
}

func setup(t *testing.T, dbPath string, items []model.Item) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(items) > 0 {
		if err := store.ReplaceStock(ctx, items); err != nil {
			t.Fatalf("failed to seed stock: %v", err)
		}
	}

	return store
}
