package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore err=%v", err)
	}
	defer store.Close()

	ctx := context.Background()

	// Fresh database is an empty ledger.
	ledger, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if len(ledger) != 0 {
		t.Fatalf("expected empty ledger, got %d", len(ledger))
	}

	orig := testLedger(t)
	if err := store.Save(ctx, orig); err != nil {
		t.Fatalf("Save err=%v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if len(loaded) != len(orig) {
		t.Fatalf("loaded %d entries, want %d", len(loaded), len(orig))
	}
	for i := range orig {
		if loaded[i].ToRecord() != orig[i].ToRecord() {
			t.Fatalf("entry %d mismatch:\n orig=%+v\n load=%+v", i, orig[i].ToRecord(), loaded[i].ToRecord())
		}
	}

	// Full-snapshot semantics: a smaller save replaces everything.
	if err := store.Save(ctx, orig[:1]); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 entry after replace, got %d", len(loaded))
	}
}

func TestSQLiteStoreSaveEmpty(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore err=%v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Save(ctx, testLedger(t)); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("Save empty err=%v", err)
	}
	ledger, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if len(ledger) != 0 {
		t.Fatalf("expected empty ledger, got %d", len(ledger))
	}
}
