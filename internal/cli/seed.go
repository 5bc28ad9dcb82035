package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recitation/internal/app"
	"github.com/heartmarshall/recitation/internal/app/seeder"
	"github.com/heartmarshall/recitation/internal/config"
)

// SeedCmd creates the seed command.
func SeedCmd(env *Env) *cobra.Command {
	var (
		seederConfig string
		batchSize    int
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "seed [file.json]",
		Short: "Import built-in texts from a JSON file",
		Long: `Import built-in texts from a JSON file holding either an array of
{"title","author","content"} objects or {"texts": [...]}.

Without a file argument the path comes from SEEDER_PATH or --seeder-config.
Texts whose title and author already exist are skipped, so seeding twice is safe.`,
		Example: `  recitation seed texts.json
  recitation seed --dry-run texts.json
  SEEDER_PATH=texts.json recitation seed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seedCfg, err := seeder.LoadConfig(seederConfig)
			if err != nil {
				return err
			}
			// Flags override the seeder config.
			if len(args) == 1 {
				seedCfg.Path = args[0]
			}
			if cmd.Flags().Changed("batch-size") {
				seedCfg.BatchSize = batchSize
			}
			if dryRun {
				seedCfg.DryRun = true
			}

			ctx := cmd.Context()
			return env.withBackend(ctx, false, func(_ *config.Config, b *app.Backend, log *slog.Logger) error {
				if !b.Local() {
					return ErrRemoteSeed
				}

				p := seeder.NewPipeline(log, b.TextService, *seedCfg)
				if err := p.RunFile(ctx, ""); err != nil {
					return err
				}

				res := p.Result()
				if seedCfg.DryRun {
					fmt.Fprintf(env.Stdout, "read %d, would insert %d, skipped %d\n", res.Read, res.Pending, res.Skipped)
					return nil
				}
				fmt.Fprintf(env.Stdout, "read %d, inserted %d, skipped %d\n", res.Read, res.Inserted, res.Skipped)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&seederConfig, "seeder-config", "", "Path to a seeder YAML config file")
	cmd.Flags().IntVar(&batchSize, "batch-size", 50, "Texts per transaction")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be imported without writing")

	return cmd
}
