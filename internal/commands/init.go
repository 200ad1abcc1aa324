package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/accounts"
	"github.com/tally-dev/tally/internal/audit"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/store"
)

// configFile is the seed configuration written next to the database.
const configFile = "tally.yaml"

// dbPath resolves the database location for a ledger directory. A .env file
// in the directory is loaded first; TALLY_DB overrides the default
// <dir>/tally.db.
func dbPath(dir string) string {
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	if p := os.Getenv("TALLY_DB"); p != "" {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	return filepath.Join(dir, "tally.db")
}

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger",
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

			return runInit(cmd, absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write tally.yaml, keeping an existing one untouched.
	cfgPath := filepath.Join(dir, configFile)
	cfg := config.Default(name)
	if _, err := os.Stat(cfgPath); err == nil {
		existing, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("reading existing config: %w", err)
		}
		cfg = existing
	} else if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	st, err := store.Open(dbPath(dir))
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer st.Close()

	// Seed variables from the config file.
	vars, err := st.Variables()
	if err != nil {
		return fmt.Errorf("loading variables: %w", err)
	}
	if err := seedVariables(vars, cfg); err != nil {
		return fmt.Errorf("seeding variables: %w", err)
	}

	// Seed the reserved chart; re-running never clobbers renamed titles.
	if err := accounts.NewService(st).SeedReserved(); err != nil {
		return fmt.Errorf("seeding chart of accounts: %w", err)
	}

	if err := audit.NewLogger(st).Log("init", "initialized ledger for "+cfg.Business, 0); err != nil {
		return fmt.Errorf("recording audit entry: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledger for %s at %s\n", cfg.Business, st.Path())
	return nil
}

func seedVariables(vars *store.Variables, cfg *config.File) error {
	set := func(key, value string) error {
		if _, ok := vars.Get(key); ok || value == "" {
			return nil
		}
		return vars.Set(key, value)
	}
	if err := set(config.KeyBaseCurrency, cfg.BaseCurrency); err != nil {
		return err
	}
	if err := set(config.KeyFiscalYearStart, cfg.FiscalYearStart); err != nil {
		return err
	}
	return set(config.KeyTaxAuthorities, strings.Join(cfg.TaxAuthorities, ","))
}
