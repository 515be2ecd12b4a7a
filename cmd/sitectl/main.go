// Command sitectl performs operator tasks against the site database: creating
// admin accounts, resetting passwords and loading catalog fixtures.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/harvest-export/website/internal/config"
	"github.com/harvest-export/website/internal/database"
	"github.com/harvest-export/website/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// env carries what every subcommand needs
type env struct {
	openDB func(ctx context.Context) (*gorm.DB, *zap.Logger, error)
	in     io.Reader
	out    io.Writer
}

func main() {
	e := &env{openDB: openConfiguredDB, in: os.Stdin, out: os.Stdout}
	if err := newRootCmd(e).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Operator tools for the Harvest Export website",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetIn(e.in)
	root.SetOut(e.out)
	root.SetErr(e.out)

	root.AddCommand(
		newAdminCmd(e),
		newSeedCmd(e),
		newVersionCmd(),
	)
	return root
}

// openConfiguredDB connects with the same configuration as the server
func openConfiguredDB(ctx context.Context) (*gorm.DB, *zap.Logger, error) {
	basicCfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return db, log, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sitectl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sitectl %s\n", version)
		},
	}
}
