// Package worker aggregates ledger events consumed from the queue into
// running totals and reports them periodically.
package worker

import (
	"fmt"
	"sync"

	"moneytracker/internal/amqp"
	"moneytracker/internal/core"
	applog "moneytracker/internal/log"
)

// Summary is a point-in-time snapshot of the tallies.
type Summary struct {
	Added        int
	Deleted      int
	InflowCents  int64
	OutflowCents int64
}

// NetCents is the net contribution of the events seen so far. Deleted
// events already reversed their sign when tallied.
func (s Summary) NetCents() int64 {
	return s.InflowCents - s.OutflowCents
}

// TallyWorker keeps running totals of the ledger events it handles.
type TallyWorker struct {
	mu      sync.Mutex
	summary Summary
	logger  *applog.Logger
}

func NewTallyWorker(logger *applog.Logger) *TallyWorker {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	}
	return &TallyWorker{logger: logger}
}

// HandleEvent folds one event into the tallies. A deletion reverses the
// amount the addition contributed.
func (w *TallyWorker) HandleEvent(event *amqp.LedgerEvent) error {
	sign := int64(1)
	switch event.Action {
	case amqp.ActionAdded:
	case amqp.ActionDeleted:
		sign = -1
	default:
		return fmt.Errorf("unknown event action: %q", event.Action)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch core.Kind(event.Kind) {
	case core.KindInflow:
		w.summary.InflowCents += sign * event.AmountCents
	case core.KindOutflow:
		w.summary.OutflowCents += sign * event.AmountCents
	default:
		return fmt.Errorf("unknown event kind: %q", event.Kind)
	}

	if sign > 0 {
		w.summary.Added++
	} else {
		w.summary.Deleted++
	}

	w.logger.Info("Tallied ledger event",
		applog.FieldAction, event.Action,
		applog.FieldKind, event.Kind,
		applog.FieldCategory, event.Category,
		applog.FieldAmountCents, event.AmountCents)
	return nil
}

// Summary returns a copy of the current tallies.
func (w *TallyWorker) Summary() Summary {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.summary
}

// LogSummary writes the current tallies to the log.
func (w *TallyWorker) LogSummary() {
	s := w.Summary()
	w.logger.Info("Ledger event summary",
		"added", s.Added,
		"deleted", s.Deleted,
		"inflow_cents", s.InflowCents,
		"outflow_cents", s.OutflowCents,
		"net_cents", s.NetCents())
}
