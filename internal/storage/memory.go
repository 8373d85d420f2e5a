package storage

import (
	"context"
	"sync"

	"moneytracker/internal/core"
)

// MemoryStore keeps the snapshot in memory. Used by the memory backend
// and as a stand-in store in tests. Records are stored in wire shape so
// load goes through the same rehydration path as the durable stores.
type MemoryStore struct {
	mu      sync.Mutex
	records []core.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, ledger []core.Transaction) error {
	records := make([]core.Record, len(ledger))
	for i, t := range ledger {
		records[i] = t.ToRecord()
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	records := append([]core.Record(nil), s.records...)
	s.mu.Unlock()

	ledger := make([]core.Transaction, 0, len(records))
	for _, r := range records {
		t, err := core.FromRecord(r)
		if err != nil {
			return nil, err
		}
		ledger = append(ledger, t)
	}
	return ledger, nil
}
