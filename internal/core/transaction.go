package core

import (
	"math"
	"time"
)

// TimestampLayout is the sortable minute-granularity format used both in
// the persisted record and for display.
const TimestampLayout = "2006-01-02 15:04"

// DefaultTaxRate is the rate applied by Inflow.EstimatedTax when the
// caller passes no explicit rate.
const DefaultTaxRate = 0.05

const defaultNote = "-"

// Kind tags the two transaction variants.
type Kind string

const (
	KindOutflow Kind = "outflow"
	KindInflow  Kind = "inflow"
)

// Transaction is the shared capability set of the two variants. Kind,
// category and timestamp are fixed at construction; amount and note have
// validated mutators. Aggregations must go through Contribution, never
// branch on Kind to decide the sign.
type Transaction interface {
	Kind() Kind
	Category() string
	Amount() Money
	Note() string
	Time() time.Time

	// Timestamp renders Time in TimestampLayout.
	Timestamp() string

	// Contribution is the signed effect on the net balance: -amount for
	// an outflow, +amount for an inflow.
	Contribution() Money

	// DisplayLabel is the variant's icon + name, presentation only.
	DisplayLabel() string

	// FormatAmount is the currency-formatted amount, presentation only.
	FormatAmount() string

	// ToRecord returns the flat persisted shape.
	ToRecord() Record

	// SetAmount replaces the amount; non-positive values fail with
	// ErrInvalidAmount and leave the transaction unchanged.
	SetAmount(Money) error

	// SetNote replaces the note, normalizing empty input to "-".
	SetNote(string)
}

// base carries the fields common to both variants. Fields are unexported;
// construction goes through the factory in factory.go.
type base struct {
	kind     Kind
	category string
	amount   Money
	note     string
	at       time.Time
}

func (b *base) Kind() Kind        { return b.kind }
func (b *base) Category() string  { return b.category }
func (b *base) Amount() Money     { return b.amount }
func (b *base) Note() string      { return b.note }
func (b *base) Time() time.Time   { return b.at }
func (b *base) Timestamp() string { return b.at.Format(TimestampLayout) }

func (b *base) FormatAmount() string { return b.amount.Format() }

func (b *base) SetAmount(m Money) error {
	if err := m.Validate(); err != nil {
		return err
	}
	b.amount = m
	return nil
}

func (b *base) SetNote(note string) {
	if note == "" {
		note = defaultNote
	}
	b.note = note
}

func (b *base) ToRecord() Record {
	return Record{
		Category:  b.category,
		Amount:    b.amount.Units(),
		Note:      b.note,
		Kind:      b.kind.wire(),
		Timestamp: b.Timestamp(),
	}
}

// Outflow is money leaving the ledger. Its contribution is negative.
type Outflow struct {
	base
}

func (o *Outflow) Contribution() Money  { return Money{Cents: -o.amount.Cents} }
func (o *Outflow) DisplayLabel() string { return "💸 Outflow" }

// IsOverBudget reports whether the outflow exceeds the given limit.
func (o *Outflow) IsOverBudget(limit Money) bool {
	return o.amount.Cents > limit.Cents
}

// Inflow is money entering the ledger. Its contribution is positive.
type Inflow struct {
	base
}

func (i *Inflow) Contribution() Money  { return i.amount }
func (i *Inflow) DisplayLabel() string { return "💰 Inflow" }

// EstimatedTax returns amount * rate, rounded half away from zero to the
// cent. Use DefaultTaxRate for the standard estimate.
func (i *Inflow) EstimatedTax(rate float64) Money {
	return Money{Cents: int64(math.Round(float64(i.amount.Cents) * rate))}
}
