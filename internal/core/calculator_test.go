package core

import (
	"testing"
	"time"
)

func mustNew(t *testing.T, kind Kind, category string, cents int64, note string) Transaction {
	t.Helper()
	tx, err := New(kind, category, Money{Cents: cents}, note, time.Time{})
	if err != nil {
		t.Fatalf("New(%s, %d) err=%v", kind, cents, err)
	}
	return tx
}

func TestStatisticsScenario(t *testing.T) {
	// Outflow Food 25000, inflow Salary 500000 -> 500000 / 25000 / 475000.
	ledger := []Transaction{
		mustNew(t, KindOutflow, "Food", 2500000, ""),
		mustNew(t, KindInflow, "Salary", 50000000, "March"),
	}
	stats := NewCalculator(ledger).Statistics()
	if stats.Inflow.Units() != 500000 {
		t.Fatalf("inflow=%v, want 500000", stats.Inflow.Units())
	}
	if stats.Outflow.Units() != 25000 {
		t.Fatalf("outflow=%v, want 25000", stats.Outflow.Units())
	}
	if stats.Balance.Units() != 475000 {
		t.Fatalf("balance=%v, want 475000", stats.Balance.Units())
	}
}

func TestNetBalanceEqualsInflowMinusOutflow(t *testing.T) {
	ledgers := [][]Transaction{
		nil,
		{mustNew(t, KindInflow, "Salary", 1, "")},
		{mustNew(t, KindOutflow, "Food", 1, "")},
		{
			mustNew(t, KindOutflow, "Food", 1234567, ""),
			mustNew(t, KindInflow, "Salary", 99, ""),
			mustNew(t, KindOutflow, "Transport", 50000, ""),
			mustNew(t, KindInflow, "Bonus", 1234567, ""),
			mustNew(t, KindOutflow, "Rent", 3, ""),
		},
	}
	for i, ledger := range ledgers {
		c := NewCalculator(ledger)
		want := c.TotalInflow().Cents - c.TotalOutflow().Cents
		if got := c.NetBalance().Cents; got != want {
			t.Fatalf("ledger %d: net=%d, inflow-outflow=%d", i, got, want)
		}
	}
}

func TestCalculatorSnapshotIsImmutable(t *testing.T) {
	ledger := []Transaction{mustNew(t, KindInflow, "Salary", 100, "")}
	c := NewCalculator(ledger)

	// Mutating the original slice must not affect the snapshot.
	ledger[0] = mustNew(t, KindOutflow, "Food", 9999, "")
	if got := c.NetBalance().Cents; got != 100 {
		t.Fatalf("snapshot observed later mutation: net=%d", got)
	}
}

func TestEmptyLedgerStatistics(t *testing.T) {
	stats := NewCalculator(nil).Statistics()
	if stats.Inflow.Cents != 0 || stats.Outflow.Cents != 0 || stats.Balance.Cents != 0 {
		t.Fatalf("empty ledger stats=%+v", stats)
	}
}

func TestTotalsAreNonNegative(t *testing.T) {
	ledger := []Transaction{
		mustNew(t, KindOutflow, "Food", 700, ""),
		mustNew(t, KindOutflow, "Rent", 300, ""),
	}
	c := NewCalculator(ledger)
	if c.TotalOutflow().Cents != 1000 {
		t.Fatalf("outflow=%d, want 1000", c.TotalOutflow().Cents)
	}
	if c.TotalInflow().Cents != 0 {
		t.Fatalf("inflow=%d, want 0", c.TotalInflow().Cents)
	}
	if c.NetBalance().Cents != -1000 {
		t.Fatalf("net=%d, want -1000", c.NetBalance().Cents)
	}
}
