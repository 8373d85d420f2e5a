package core

// Statistics bundles the three aggregate values derived from one ledger
// snapshot.
type Statistics struct {
	Inflow  Money
	Outflow Money
	Balance Money
}

// Calculator aggregates over an immutable snapshot of the ledger taken at
// construction. Build a fresh one after every mutation; it never observes
// later changes.
type Calculator struct {
	snapshot []Transaction
}

func NewCalculator(ledger []Transaction) *Calculator {
	snap := make([]Transaction, len(ledger))
	copy(snap, ledger)
	return &Calculator{snapshot: snap}
}

// TotalInflow sums the contribution of every inflow. Always >= 0.
func (c *Calculator) TotalInflow() Money {
	var cents int64
	for _, t := range c.snapshot {
		if _, ok := t.(*Inflow); ok {
			cents += t.Contribution().Cents
		}
	}
	return Money{Cents: cents}
}

// TotalOutflow sums the contribution of every outflow and returns the
// absolute value. Always >= 0.
func (c *Calculator) TotalOutflow() Money {
	var cents int64
	for _, t := range c.snapshot {
		if _, ok := t.(*Outflow); ok {
			cents += t.Contribution().Cents
		}
	}
	if cents < 0 {
		cents = -cents
	}
	return Money{Cents: cents}
}

// NetBalance sums the contribution of every transaction regardless of
// kind. Equals TotalInflow - TotalOutflow for any ledger.
func (c *Calculator) NetBalance() Money {
	var cents int64
	for _, t := range c.snapshot {
		cents += t.Contribution().Cents
	}
	return Money{Cents: cents}
}

// Statistics computes all three values from the same snapshot.
func (c *Calculator) Statistics() Statistics {
	return Statistics{
		Inflow:  c.TotalInflow(),
		Outflow: c.TotalOutflow(),
		Balance: c.NetBalance(),
	}
}
