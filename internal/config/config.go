package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// Ledger store
	DataBackend  string
	LedgerPath   string
	SQLiteDBPath string

	// Category seed files
	DataDir string

	// AMQP (optional; empty URL disables event publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Single-threshold budget check applied to outflows, in cents.
	BudgetLimitCents int64

	// Rate used for inflow tax estimates.
	TaxRate float64
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DataBackend:  getEnv("DATA_BACKEND", "json"),
		LedgerPath:   getEnv("LEDGER_PATH", "./data/money_tracker_data.json"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/moneytracker.db"),

		DataDir: getEnv("DATA_DIR", "data"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "moneytracker"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "ledger_events"),

		BudgetLimitCents: getEnvInt64("BUDGET_LIMIT_CENTS", 10000000),
		TaxRate:          getEnvFloat("TAX_RATE", 0.05),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"json", "sqlite", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "json" {
		if c.LedgerPath == "" {
			errs = append(errs, "ledger path cannot be empty when using json backend")
		} else if err := ensureDir(c.LedgerPath); err != nil {
			errs = append(errs, fmt.Sprintf("cannot create ledger directory for '%s': %v", c.LedgerPath, err))
		}
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else if err := ensureDir(c.SQLiteDBPath); err != nil {
			errs = append(errs, fmt.Sprintf("cannot create SQLite database directory for '%s': %v", c.SQLiteDBPath, err))
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.BudgetLimitCents <= 0 {
		errs = append(errs, fmt.Sprintf("invalid budget limit %d: must be positive", c.BudgetLimitCents))
	}

	if c.TaxRate < 0 || c.TaxRate >= 1 {
		errs = append(errs, fmt.Sprintf("invalid tax rate %v: must be in [0, 1)", c.TaxRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
