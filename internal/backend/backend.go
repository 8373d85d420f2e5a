// Package backend selects and constructs the ledger store configured for
// the process.
package backend

// Type identifies a ledger store implementation.
type Type string

const (
	JSONBackend   Type = "json"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds the store-specific settings used by the factory.
type Config struct {
	Type Type

	// JSON backend
	LedgerPath string

	// SQLite backend
	SQLiteDBPath string
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error
