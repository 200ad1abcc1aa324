package commands

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/accounts"
	"github.com/tally-dev/tally/internal/store"
)

func newChartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [directory]",
		Short: "List the chart of accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runChart(cmd, absDir)
		},
	}
	return cmd
}

func runChart(cmd *cobra.Command, dir string) error {
	st, err := store.Open(dbPath(dir))
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer st.Close()

	chart, err := accounts.NewService(st).All()
	if err != nil {
		return fmt.Errorf("reading chart of accounts: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\t")
	for _, a := range chart {
		marker := ""
		if a.Reserved {
			marker = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Title, a.Type, marker)
	}
	return w.Flush()
}
