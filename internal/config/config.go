package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Lending  LendingConfig  `yaml:"lending"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// LockTimeout bounds how long a transaction waits for a book or loan row lock.
	LockTimeout time.Duration `yaml:"lock_timeout" env:"DATABASE_LOCK_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LendingConfig holds the loan policy.
type LendingConfig struct {
	LoanPeriodDays     int           `yaml:"loan_period_days"      env:"LENDING_LOAN_PERIOD_DAYS"      env-default:"14"`
	FineRatePerDayRaw  string        `yaml:"fine_rate_per_day"     env:"LENDING_FINE_RATE_PER_DAY"     env-default:"2"`
	BusyRetryAttempts  int           `yaml:"busy_retry_attempts"   env:"LENDING_BUSY_RETRY_ATTEMPTS"   env-default:"3"`
	BusyRetryBaseDelay time.Duration `yaml:"busy_retry_base_delay" env:"LENDING_BUSY_RETRY_BASE_DELAY" env-default:"50ms"`

	// FineRatePerDay is parsed from FineRatePerDayRaw during validation.
	FineRatePerDay decimal.Decimal `yaml:"-" env:"-"`
}
