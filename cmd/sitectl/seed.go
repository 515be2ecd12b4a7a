package main

import (
	"fmt"

	"github.com/harvest-export/website/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd(e *env) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load categories, products, countries, posts and homepage picks from YAML",
		Long: `Load catalog fixtures. Entries whose slug (or country code) already exists are
skipped, so the same file can be applied repeatedly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.ParseFile(args[0])
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d categories, %d products, %d countries, %d posts\n",
					args[0], len(f.Categories), len(f.Products), len(f.Countries), len(f.Posts))
				return nil
			}

			db, log, err := e.openDB(cmd.Context())
			if err != nil {
				return err
			}
			report, err := seed.NewSeeder(db, log).Apply(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d created, %d skipped\n", args[0], report.Created, report.Skipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse the file without touching the database")
	return cmd
}
