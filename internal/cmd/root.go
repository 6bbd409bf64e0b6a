package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aklymenko/booking-store/internal/config"
)

var verbose bool
var noColor bool
var dbDSN string
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookingstore",
	Short: "Administrative CLI for the sport booking database",
	Long: `Administrative tooling for the sport booking database.

The store holds four entities (users, facility, booking, payment) in
MariaDB. This tool creates the schema, fills the tables with synthetic
data, empties them and reports row counts.

Connection settings come from --db, a bookingstore.yaml config file or
BOOKING_DATABASE_DSN. Tunable defaults are in internal/config/defaults.go.

Example usage:
  bookingstore schema | mysql -u root booking
  bookingstore seed --users 10000 --bookings 50000 --db "user:pass@tcp(host:3306)/booking"
  bookingstore stats`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and animations")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db", "", "database DSN: user:password@tcp(host:3306)/booking")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bookingstore.yaml)")

	viper.BindPFlag("database.dsn", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true

	// Set version template
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// initConfig wires viper: optional config file plus BOOKING_* env vars.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookingstore")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/bookingstore")
	}

	viper.SetEnvPrefix("BOOKING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Failed to read config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig builds and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Output goes to stderr so piped
// schema output stays clean.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    noColor,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
