package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aklymenko/booking-store/internal/database"
	"github.com/aklymenko/booking-store/internal/ui"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show row counts per entity table",
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Configuration: %v", err)))
		os.Exit(1)
	}

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

	sess, err := pool.Session(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Opening session: %v", err)))
		os.Exit(1)
	}
	defer sess.Close()

	fmt.Println(u.Header("Booking Store"))
	fmt.Println()

	var total int64
	failed := false
	for _, table := range database.Tables {
		count, err := database.CountRows(ctx, sess, table)
		if err != nil {
			fmt.Println(u.TableRow(table, err.Error(), ui.StatusError))
			failed = true
			continue
		}
		fmt.Println(u.TableRow(table, fmt.Sprintf("%d rows", count), ui.StatusSuccess))
		total += count
	}

	fmt.Println()
	fmt.Println(u.KeyValue("Total", fmt.Sprintf("%d rows", total)))

	if failed {
		os.Exit(1)
	}
}
