package core

import (
	"fmt"
	"time"
)

// Wire kind values. The persisted file keeps the vocabulary of the data
// it has always been saved with, so older ledgers stay readable.
const (
	wireOutflow = "pengeluaran"
	wireInflow  = "pemasukan"
)

// Record is the flat persisted shape of one transaction. Field names
// follow the established file schema (kategori=category, jumlah=amount in
// decimal units, keterangan=note, tipe=kind, tanggal=timestamp).
type Record struct {
	Category  string  `json:"kategori"`
	Amount    float64 `json:"jumlah"`
	Note      string  `json:"keterangan"`
	Kind      string  `json:"tipe"`
	Timestamp string  `json:"tanggal"`
}

// ParseKind maps the API vocabulary to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindOutflow, KindInflow:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

func (k Kind) wire() string {
	if k == KindInflow {
		return wireInflow
	}
	return wireOutflow
}

func kindFromWire(s string) (Kind, error) {
	switch s {
	case wireOutflow:
		return KindOutflow, nil
	case wireInflow:
		return KindInflow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// New builds a transaction variant from raw fields. It is the single
// registration point for variants: a third kind means one more branch
// here and one more type, nothing else.
//
// Validation: amount must be positive (ErrInvalidAmount), an empty note
// becomes "-", and a zero timestamp defaults to now truncated to the
// minute.
func New(kind Kind, category string, amount Money, note string, at time.Time) (Transaction, error) {
	if err := amount.Validate(); err != nil {
		return nil, err
	}
	if note == "" {
		note = defaultNote
	}
	if at.IsZero() {
		at = time.Now().Truncate(time.Minute)
	} else {
		at = at.Truncate(time.Minute)
	}

	b := base{kind: kind, category: category, amount: amount, note: note, at: at}
	switch kind {
	case KindOutflow:
		return &Outflow{base: b}, nil
	case KindInflow:
		return &Inflow{base: b}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}

// FromRecord rehydrates a transaction from its persisted shape,
// preserving the stored timestamp. Round-trip identity holds:
// FromRecord(t.ToRecord()) is observationally equal to t.
func FromRecord(r Record) (Transaction, error) {
	kind, err := kindFromWire(r.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	at, err := time.ParseInLocation(TimestampLayout, r.Timestamp, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp %q", ErrInvalidRecord, r.Timestamp)
	}
	t, err := New(kind, r.Category, MoneyFromUnits(r.Amount), r.Note, at)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return t, nil
}
