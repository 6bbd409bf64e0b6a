package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aklymenko/booking-store/internal/config"
	"github.com/aklymenko/booking-store/internal/database"
	"github.com/aklymenko/booking-store/internal/ui"
	"github.com/aklymenko/booking-store/internal/utils"
)

var (
	seedValue     int64
	numVenues     int
	numUsers      int
	numFacilities int
	numBookings   int
	numPayments   int
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with synthetic booking data",
	Long: `Generate synthetic booking data directly into the database.

Entities are inserted in foreign-key order: venue stubs first, then
users and facilities, then bookings referencing both, then payments
referencing bookings. Each entity's id sequence is restarted at
max(existing id)+1 before generation, so seeding composes with rows
already present.

Volume defaults come from config; flags override per run.

Example:
  bookingstore seed --users 10000 --bookings 50000
  bookingstore seed --seed 42    # Reproducible`,
	Run: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed for reproducibility (0 = time-based)")
	seedCmd.Flags().IntVar(&numVenues, "venues", config.DefaultNumVenues, "venue stubs to ensure")
	seedCmd.Flags().IntVar(&numUsers, "users", config.DefaultNumUsers, "users to generate")
	seedCmd.Flags().IntVar(&numFacilities, "facilities", config.DefaultNumFacilities, "facilities to generate")
	seedCmd.Flags().IntVar(&numBookings, "bookings", config.DefaultNumBookings, "bookings to generate")
	seedCmd.Flags().IntVar(&numPayments, "payments", config.DefaultNumPayments, "payments to generate")
}

// seedVolumes merges config-file volumes with flag overrides. A flag
// the user set wins; otherwise the config value applies.
func seedVolumes(cmd *cobra.Command, sc config.SeedConfig) config.SeedConfig {
	if cmd.Flags().Changed("seed") {
		sc.Seed = seedValue
	}
	if cmd.Flags().Changed("venues") {
		sc.NumVenues = numVenues
	}
	if cmd.Flags().Changed("users") {
		sc.NumUsers = numUsers
	}
	if cmd.Flags().Changed("facilities") {
		sc.NumFacilities = numFacilities
	}
	if cmd.Flags().Changed("bookings") {
		sc.NumBookings = numBookings
	}
	if cmd.Flags().Changed("payments") {
		sc.NumPayments = numPayments
	}
	return sc
}

func runSeed(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Configuration: %v", err)))
		os.Exit(1)
	}
	sc := seedVolumes(cmd, cfg.Seed)

	seed := sc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := utils.NewRandom(seed)
	log := newLogger()

	ctx := context.Background()

	pool, err := database.NewPool(cfg.Database)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Opening pool: %v", err)))
		os.Exit(1)
	}
	if err := pool.Connect(ctx); err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Connecting: %v", err)))
		os.Exit(1)
	}
	defer pool.Close()

	fmt.Println(u.Header("Booking Store Seeder"))
	fmt.Println()
	fmt.Println(u.KeyValue("Seed", fmt.Sprintf("%d", seed)))
	fmt.Println(u.KeyValue("Venues", fmt.Sprintf("%d", sc.NumVenues)))
	fmt.Println()

	admin, err := pool.Session(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Opening session: %v", err)))
		os.Exit(1)
	}
	defer admin.Close()

	sp := u.NewSpinner(fmt.Sprintf("Ensuring %d venues", sc.NumVenues))
	sp.Start()
	if err := database.EnsureVenues(ctx, admin, sc.NumVenues); err != nil {
		sp.Error(err.Error())
		os.Exit(1)
	}
	sp.Success("done")

	repos, err := database.NewRepositories(ctx, pool, log, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Opening repositories: %v", err)))
		os.Exit(1)
	}
	defer repos.Close()

	start := time.Now()

	// FK order: parents before children.
	steps := []struct {
		label    string
		n        int
		generate func(context.Context, int) error
	}{
		{"Users", sc.NumUsers, repos.Users.GenerateRandomBatch},
		{"Facilities", sc.NumFacilities, repos.Facilities.GenerateRandomBatch},
		{"Bookings", sc.NumBookings, repos.Bookings.GenerateRandomBatch},
		{"Payments", sc.NumPayments, repos.Payments.GenerateRandomBatch},
	}

	total := 0
	for _, step := range steps {
		if step.n <= 0 {
			continue
		}

		bar := u.NewProgressBar(step.label, int64(step.n))
		done := 0
		for done < step.n {
			chunk := config.BatchInsertSize
			if rem := step.n - done; rem < chunk {
				chunk = rem
			}
			if err := step.generate(ctx, chunk); err != nil {
				bar.Fail(err)
				os.Exit(1)
			}
			done += chunk
			bar.Update(int64(done))
		}
		bar.Complete()
		total += step.n
	}

	fmt.Println(u.SummaryBox("Seeding Complete", []ui.KV{
		{Key: "Rows", Value: fmt.Sprintf("%d", total)},
		{Key: "Elapsed", Value: time.Since(start).Round(time.Millisecond).String()},
		{Key: "Status", Value: "Success"},
	}))
}
