// Package services orchestrates ledger mutations: every add or delete is
// persisted through the store before control returns to the caller, so
// the saved snapshot never diverges from the in-memory ledger.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"moneytracker/internal/core"
)

// LedgerStore is the persistence port. Save writes the full ordered
// snapshot atomically; Load returns an empty ledger when no prior storage
// exists and an error for malformed storage.
type LedgerStore interface {
	Save(ctx context.Context, ledger []core.Transaction) error
	Load(ctx context.Context) ([]core.Transaction, error)
}

// EventPublisher is the optional outbound port for ledger change events.
// Publishing is best-effort: failures are logged, never surfaced to the
// mutation that triggered them.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, action string, t core.Transaction) error
}

// LedgerService owns the session's ordered ledger (insertion order =
// chronological entry order, most-recent-last). A single mutex serializes
// mutations and reads; there is exactly one mutator per session.
type LedgerService struct {
	mu        sync.Mutex
	ledger    []core.Transaction
	store     LedgerStore
	publisher EventPublisher
}

// NewLedgerService loads the persisted ledger. The publisher may be nil.
func NewLedgerService(ctx context.Context, store LedgerStore, publisher EventPublisher) (*LedgerService, error) {
	ledger, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return &LedgerService{ledger: ledger, store: store, publisher: publisher}, nil
}

// Add parses the raw amount, builds the transaction via the factory,
// appends it and persists the new snapshot. On persistence failure the
// append is rolled back and the error returned.
func (s *LedgerService) Add(ctx context.Context, kind, category, amount, note string) (core.Transaction, error) {
	k, err := core.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return nil, err
	}
	tx, err := core.New(k, category, core.Money{Cents: cents}, note, time.Time{})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger = append(s.ledger, tx)
	if err := s.store.Save(ctx, s.ledger); err != nil {
		s.ledger = s.ledger[:len(s.ledger)-1]
		return nil, fmt.Errorf("persist ledger: %w", err)
	}

	slog.InfoContext(ctx, "Transaction added",
		"kind", tx.Kind(),
		"category", tx.Category(),
		"amount_cents", tx.Amount().Cents,
		"count", len(s.ledger))

	s.publish(ctx, "added", tx)
	return tx, nil
}

// DeleteAt removes the transaction at the given display position and
// persists the new snapshot. Display order is reverse-chronological, so
// the position is first converted with TrueIndex. On persistence failure
// the removal is rolled back.
func (s *LedgerService) DeleteAt(ctx context.Context, displayIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := TrueIndex(displayIndex, len(s.ledger))
	if err != nil {
		return err
	}
	removed := s.ledger[idx]
	next := make([]core.Transaction, 0, len(s.ledger)-1)
	next = append(next, s.ledger[:idx]...)
	next = append(next, s.ledger[idx+1:]...)

	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	s.ledger = next

	slog.InfoContext(ctx, "Transaction deleted",
		"kind", removed.Kind(),
		"category", removed.Category(),
		"amount_cents", removed.Amount().Cents,
		"count", len(s.ledger))

	s.publish(ctx, "deleted", removed)
	return nil
}

// Transactions returns a copy of the ledger in chronological order
// (most-recent-last).
func (s *LedgerService) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// Statistics recomputes the aggregate bundle from a fresh snapshot.
// Values are never cached across mutations.
func (s *LedgerService) Statistics() core.Statistics {
	s.mu.Lock()
	snap := make([]core.Transaction, len(s.ledger))
	copy(snap, s.ledger)
	s.mu.Unlock()
	return core.NewCalculator(snap).Statistics()
}

// Len returns the number of recorded transactions.
func (s *LedgerService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ledger)
}

func (s *LedgerService) publish(ctx context.Context, action string, t core.Transaction) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLedgerEvent(ctx, action, t); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"action", action, "error", err)
	}
}

// TrueIndex converts a reverse-chronological display position into the
// chronological ledger index: trueIndex = length - 1 - displayIndex.
// Out-of-range positions fail with core.ErrIndexOutOfRange.
func TrueIndex(displayIndex, length int) (int, error) {
	if displayIndex < 0 || displayIndex >= length {
		return 0, fmt.Errorf("%w: display index %d, ledger length %d",
			core.ErrIndexOutOfRange, displayIndex, length)
	}
	return length - 1 - displayIndex, nil
}
