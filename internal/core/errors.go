package core

import "errors"

var (
	// ErrInvalidAmount rejects non-positive amounts at construction and
	// through SetAmount. Amounts are never clamped.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidKind marks a transaction kind outside the closed set
	// {outflow, inflow}. This is a caller defect, not user input.
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidRecord marks a stored record that cannot be rehydrated
	// (bad timestamp, bad amount, unknown wire kind).
	ErrInvalidRecord = errors.New("invalid transaction record")

	// ErrIndexOutOfRange marks a delete position outside the ledger.
	ErrIndexOutOfRange = errors.New("index out of range")
)
