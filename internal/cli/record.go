package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recitation/internal/app"
	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/tui"
)

// RecordCmd creates the record command.
func RecordCmd(env *Env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "record <text-id>",
		Short: "Record yourself reciting a text",
		Long: `Open the microphone and record a recitation of the given text.

space pauses and resumes, enter stops and saves, q discards.
Saving replaces the previous recording of the text; you are asked to
confirm first unless --yes is given.`,
		Example: `  recitation record 0b6f8f9e-3c1e-4f55-9a53-2f1f3c2f0e1a
  recitation record --yes 0b6f8f9e-3c1e-4f55-9a53-2f1f3c2f0e1a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return env.withBackend(ctx, true, func(cfg *config.Config, b *app.Backend, log *slog.Logger) error {
				t, err := b.Texts.GetText(ctx, id)
				if err != nil {
					return err
				}

				var existing *domain.Recording
				if !yes {
					existing, err = b.Recordings.GetRecordingByTextID(ctx, id)
					if err != nil && !errors.Is(err, domain.ErrNotFound) {
						return err
					}
				}

				out, err := env.Record(ctx, tui.Options{
					Text:     t,
					Existing: existing,
					Session:  app.NewCaptureSession(cfg.Capture, log, nil),
					Saver:    b.Recordings,
					Now:      env.Now,
				})
				if err != nil {
					return err
				}

				if out.Recording == nil {
					fmt.Fprintln(env.Stderr, "discarded, nothing saved")
					return nil
				}
				d := time.Duration(out.Recording.Duration * float64(time.Second))
				fmt.Fprintf(env.Stdout, "saved %s recording of %q (%s)\n", tui.FormatDuration(d), t.Title, out.Recording.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Replace an existing recording without asking")

	return cmd
}
