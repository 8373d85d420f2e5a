package amqp

import (
	"encoding/json"
	"time"
)

// Event actions published after a successful ledger mutation.
const (
	ActionAdded   = "added"
	ActionDeleted = "deleted"
)

// LedgerEvent describes one ledger mutation. Consumers get the full
// affected record; the ledger itself is never shipped over the broker.
type LedgerEvent struct {
	Action      string    `json:"action"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Timestamp   string    `json:"timestamp"`
	PublishedAt time.Time `json:"published_at"`
}

// ToJSON converts the event to JSON bytes.
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerEventFromJSON parses an event from JSON bytes.
func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
