package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aklymenko/booking-store/internal/database"
	"github.com/aklymenko/booking-store/internal/ui"
	"github.com/aklymenko/booking-store/internal/utils"
)

var truncateYes bool

// truncateCmd represents the truncate command
var truncateCmd = &cobra.Command{
	Use:   "truncate [table...]",
	Short: "Delete all rows from entity tables",
	Long: `Delete all rows from the given entity tables, or from all four
when none are named.

Valid tables: users, facility, booking, payment. Regardless of the
order given, tables are emptied child-first (payment before booking,
booking before users/facility) so foreign keys never block the run.

Example:
  bookingstore truncate --yes              # Empty everything
  bookingstore truncate payment booking    # Children only`,
	Args: cobra.ArbitraryArgs,
	Run:  runTruncate,
}

func init() {
	rootCmd.AddCommand(truncateCmd)
	truncateCmd.Flags().BoolVarP(&truncateYes, "yes", "y", false, "skip the confirmation prompt")
}

// truncateOrder filters the requested tables into child-first order.
func truncateOrder(requested []string) ([]string, error) {
	want := make(map[string]bool, len(requested))
	if len(requested) == 0 {
		for _, t := range database.Tables {
			want[t] = true
		}
	} else {
		for _, t := range requested {
			valid := false
			for _, known := range database.Tables {
				if t == known {
					valid = true
					break
				}
			}
			if !valid {
				return nil, fmt.Errorf("unknown table %q (valid: %s)", t, strings.Join(database.Tables, ", "))
			}
			want[t] = true
		}
	}

	ordered := make([]string, 0, len(want))
	for i := len(database.Tables) - 1; i >= 0; i-- {
		if want[database.Tables[i]] {
			ordered = append(ordered, database.Tables[i])
		}
	}
	return ordered, nil
}

func runTruncate(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	tables, err := truncateOrder(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	if !truncateYes {
		fmt.Printf("This deletes ALL rows from: %s\n", strings.Join(tables, ", "))
		fmt.Print("Type 'yes' to continue: ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "yes" {
			fmt.Println(u.Muted("Aborted."))
			return
		}
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

	repos, err := database.NewRepositories(ctx, pool, newLogger(), utils.NewRandom(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Opening repositories: %v", err)))
		os.Exit(1)
	}
	defer repos.Close()

	truncators := map[string]func(context.Context) error{
		"users":    repos.Users.Truncate,
		"facility": repos.Facilities.Truncate,
		"booking":  repos.Bookings.Truncate,
		"payment":  repos.Payments.Truncate,
	}

	for _, table := range tables {
		sp := u.NewSpinner("Truncating " + table)
		sp.Start()
		if err := truncators[table](ctx); err != nil {
			sp.Error(err.Error())
			os.Exit(1)
		}
		sp.Success("done")
	}

	fmt.Println(u.Success(fmt.Sprintf("Truncated %d table(s)", len(tables))))
}
