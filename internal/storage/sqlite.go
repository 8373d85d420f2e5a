package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"moneytracker/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the ledger in a SQLite database with the same
// full-snapshot contract as the JSON store: Save replaces every row
// inside one transaction, Load reads them back in position order. Column
// names keep the wire vocabulary so rows mirror core.Record.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save replaces the stored snapshot in one database transaction.
func (s *SQLiteStore) Save(ctx context.Context, ledger []core.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger_entries`); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ledger_entries (position, kategori, jumlah_cents, keterangan, tipe, tanggal)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range ledger {
		r := t.ToRecord()
		if _, err := stmt.ExecContext(ctx, i, r.Category, t.Amount().Cents, r.Note, r.Kind, r.Timestamp); err != nil {
			return fmt.Errorf("insert entry %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load reads the snapshot back in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kategori, jumlah_cents, keterangan, tipe, tanggal
		FROM ledger_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	var ledger []core.Transaction
	for rows.Next() {
		var (
			r     core.Record
			cents int64
		)
		if err := rows.Scan(&r.Category, &cents, &r.Note, &r.Kind, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		r.Amount = core.Money{Cents: cents}.Units()
		t, err := core.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", len(ledger), err)
		}
		ledger = append(ledger, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger: %w", err)
	}
	return ledger, nil
}
