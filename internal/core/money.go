// Package core holds the transaction domain model: money values, the
// transaction variants, the factory and the calculator.
//
// This file contains money parsing and formatting. Amounts are stored as
// int64 cents; floats appear only at the wire boundary and for display.
package core

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// Money is a fixed-point amount in cents. Stored amounts are always
// positive; negative cents occur only in derived values such as
// Transaction.Contribution.
type Money struct {
	Cents int64
}

// Validate rejects non-positive amounts.
func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Units returns the decimal-unit value used by the persisted record
// format. Exact for any amount below 2^53 cents.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

// MoneyFromUnits converts a decimal-unit number back to cents, rounding
// half away from zero at the cent.
func MoneyFromUnits(units float64) Money {
	return Money{Cents: int64(math.Round(units * 100))}
}

// Format renders the amount as a currency string, e.g. "Rp 25,000".
// Whole units are grouped; cents are shown only when non-zero.
// Presentation only; never used in comparisons or aggregation.
func (m Money) Format() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	s := humanize.Comma(cents / 100)
	if rem := cents % 100; rem != 0 {
		s += "." + strconv.FormatInt(rem/10, 10) + strconv.FormatInt(rem%10, 10)
	}
	return sign + "Rp " + s
}

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. Both dot (12.34) and comma (12,34)
// separators are accepted. Signed, zero, and malformed input fail with
// ErrInvalidAmount.
//
// Examples:
//
//	ParseDecimalToCents("25000")  -> 2500000, nil
//	ParseDecimalToCents("12,34")  -> 1234, nil
//	ParseDecimalToCents("12.346") -> 1235, nil (rounds up)
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}
