package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recitation/internal/app"
	"github.com/heartmarshall/recitation/internal/config"
)

// RecordingsCmd creates the recordings command and its subcommands.
func RecordingsCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recordings",
		Short: "List saved recordings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return env.withBackend(ctx, false, func(_ *config.Config, b *app.Backend, _ *slog.Logger) error {
				recs, err := b.Recordings.ListRecordings(ctx)
				if err != nil {
					return err
				}
				texts, err := b.Texts.ListTexts(ctx)
				if err != nil {
					return err
				}
				titles := make(map[string]string, len(texts))
				for _, t := range texts {
					titles[t.ID.String()] = t.Title
				}
				return printRecordings(env.Stdout, recs, titles)
			})
		},
	}

	cmd.AddCommand(recordingsDeleteCmd(env))

	return cmd
}

func recordingsDeleteCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <recording-id>",
		Short: "Delete a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return env.withBackend(cmd.Context(), false, func(_ *config.Config, b *app.Backend, _ *slog.Logger) error {
				if err := b.Recordings.DeleteRecording(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(env.Stdout, "deleted recording %s\n", id)
				return nil
			})
		},
	}
}
