package backend

import (
	"fmt"
	"log/slog"

	"moneytracker/internal/services"
	"moneytracker/internal/storage"
)

// Result bundles the constructed store with its cleanup function.
// Cleanup may be nil for stores without resources to release.
type Result struct {
	Store   services.LedgerStore
	Cleanup CleanupFunc
}

// Factory creates ledger stores from configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateStore builds the store named by config.Type.
func (f *Factory) CreateStore(config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{Store: storage.NewMemoryStore()}, nil

	default:
		store, err := storage.NewJSONStore(config.LedgerPath)
		if err != nil {
			return nil, fmt.Errorf("initialize json store: %w", err)
		}
		f.logger.Info("Initialized JSON backend", "ledger_path", config.LedgerPath)
		return &Result{Store: store}, nil
	}
}
