// Command migrations manages the polling database schema.
//
// Usage:
//
//	migrations up -c config.yaml   # apply pending migrations
//	migrations status              # list applied and pending migrations
//	migrations version             # show build information
//
// Connection settings come from the config file and the same environment
// variables the server reads (DATABASE_DRIVER, DATABASE_URL, POSTGRES_*).
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/pollingapp/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/pollingapp/internal/config"
)

// Set at build time via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

const migrateTimeout = 5 * time.Minute

var rootCmd = &cobra.Command{
	Use:          "migrations",
	Short:        "Manage the polling database schema",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE:  runUp,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they have been applied",
	RunE:  runStatus,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "migrations %s (commit %s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", os.Getenv("CONFIG_FILE"), "path to config file")
	rootCmd.AddCommand(upCmd, statusCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openDB(ctx context.Context, cmd *cobra.Command) (*sql.DB, *config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:       cfg.Database.Driver,
		URL:          cfg.Database.URL,
		MaxOpenConns: 1,
	})
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	db, cfg, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := sqlstore.Migrate(ctx, db, cfg.Database.Driver)
	for _, v := range applied {
		fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", v)
	}
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, cfg, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	migrations, err := sqlstore.Status(ctx, db, cfg.Database.Driver)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range migrations {
		if m.Applied {
			fmt.Fprintf(out, "%-24s applied %s\n", m.Version, m.AppliedAt.UTC().Format(time.RFC3339))
		} else {
			fmt.Fprintf(out, "%-24s pending\n", m.Version)
		}
	}
	return nil
}
