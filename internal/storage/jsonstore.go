// Package storage provides the durable representations of the ledger:
// a JSON snapshot file, a SQLite database, and an in-memory store for
// tests and development. All stores share full-snapshot semantics; the
// core entities never see the persisted shape beyond core.Record.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"moneytracker/internal/core"
)

// JSONStore persists the ledger as one JSON array of records in a single
// file. Writes go to a temp file first and are renamed over the target,
// so a crashed save never leaves a truncated file behind.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
	}
	return &JSONStore{path: path}, nil
}

// Save serializes the full ledger snapshot, overwriting prior content.
func (s *JSONStore) Save(_ context.Context, ledger []core.Transaction) error {
	records := make([]core.Record, len(ledger))
	for i, t := range ledger {
		records[i] = t.ToRecord()
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp ledger file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}

// Load deserializes the full snapshot. A missing file is an empty ledger;
// unreadable or structurally invalid content is an error, it is never
// silently degraded to empty.
func (s *JSONStore) Load(_ context.Context) ([]core.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	var records []core.Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode ledger file %s: %w", s.path, err)
	}

	ledger := make([]core.Transaction, 0, len(records))
	for i, r := range records {
		t, err := core.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		ledger = append(ledger, t)
	}
	return ledger, nil
}
