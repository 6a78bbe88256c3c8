package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.LockTimeout <= 0 {
		return fmt.Errorf("database.lock_timeout must be > 0 (got %v)", c.Database.LockTimeout)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Lending.validate(); err != nil {
		return fmt.Errorf("lending: %w", err)
	}

	return nil
}

func (l *LendingConfig) validate() error {
	if l.LoanPeriodDays <= 0 {
		return fmt.Errorf("loan_period_days must be > 0 (got %d)", l.LoanPeriodDays)
	}
	if l.BusyRetryAttempts < 1 {
		return fmt.Errorf("busy_retry_attempts must be >= 1 (got %d)", l.BusyRetryAttempts)
	}
	if l.BusyRetryBaseDelay < 0 {
		return fmt.Errorf("busy_retry_base_delay must be >= 0 (got %v)", l.BusyRetryBaseDelay)
	}

	rate, err := ParseFineRate(l.FineRatePerDayRaw)
	if err != nil {
		return fmt.Errorf("fine_rate_per_day: %w", err)
	}
	l.FineRatePerDay = rate

	return nil
}

// ParseFineRate parses a non-negative decimal amount such as "2" or "0.50".
func ParseFineRate(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("required")
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("must be >= 0 (got %s)", rate)
	}

	return rate, nil
}
