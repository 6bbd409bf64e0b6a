package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the booking store tooling
type Config struct {
	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// Synthetic data seeding configuration
	Seed SeedConfig `mapstructure:"seed"`

	// Logging
	Verbose bool `mapstructure:"verbose"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	// Connection string (DSN)
	// Format: user:password@tcp(host:port)/database
	DSN string `mapstructure:"dsn"`

	// Driver (mysql by default; the sequence DDL targets MariaDB 10.3+)
	Driver string `mapstructure:"driver"`

	// Connection pool settings
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`

	// OpTimeout bounds each transactional storage operation.
	// Zero disables the bound.
	OpTimeout time.Duration `mapstructure:"op_timeout"`
}

// SeedConfig holds synthetic data generation settings
type SeedConfig struct {
	// Random seed for reproducibility (0 = random)
	Seed int64 `mapstructure:"seed"`

	// Volume settings, inserted in foreign-key order
	NumVenues     int `mapstructure:"num_venues"`
	NumUsers      int `mapstructure:"num_users"`
	NumFacilities int `mapstructure:"num_facilities"`
	NumBookings   int `mapstructure:"num_bookings"`
	NumPayments   int `mapstructure:"num_payments"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          "mysql",
			MaxOpenConns:    DefaultMaxOpenConns,
			MaxIdleConns:    DefaultMaxIdleConns,
			ConnMaxLifetime: DefaultConnMaxLifetime,
			ConnMaxIdleTime: DefaultConnMaxIdleTime,
			OpTimeout:       DefaultOpTimeout,
		},
		Seed: SeedConfig{
			Seed:          0,
			NumVenues:     DefaultNumVenues,
			NumUsers:      DefaultNumUsers,
			NumFacilities: DefaultNumFacilities,
			NumBookings:   DefaultNumBookings,
			NumPayments:   DefaultNumPayments,
		},
		Verbose: false,
	}
}

// Load reads configuration from viper into a Config struct
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []string

	if c.Database.DSN == "" {
		errs = append(errs, "database.dsn is required")
	}
	if c.Database.MaxOpenConns < 0 {
		errs = append(errs, "database.max_open_conns must be non-negative")
	}
	if c.Database.OpTimeout < 0 {
		errs = append(errs, "database.op_timeout must be non-negative")
	}

	if c.Seed.NumVenues < 0 {
		errs = append(errs, "seed.num_venues must be non-negative")
	}
	if c.Seed.NumUsers < 0 {
		errs = append(errs, "seed.num_users must be non-negative")
	}
	if c.Seed.NumFacilities < 0 {
		errs = append(errs, "seed.num_facilities must be non-negative")
	}
	if c.Seed.NumBookings < 0 {
		errs = append(errs, "seed.num_bookings must be non-negative")
	}
	if c.Seed.NumPayments < 0 {
		errs = append(errs, "seed.num_payments must be non-negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
