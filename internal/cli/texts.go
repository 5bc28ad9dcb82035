package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recitation/internal/app"
	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/service/text"
)

// TextsCmd creates the texts command and its subcommands.
func TextsCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texts",
		Short: "List texts and whether they have a recording",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.withBackend(cmd.Context(), false, func(_ *config.Config, b *app.Backend, _ *slog.Logger) error {
				overview, err := b.Texts.ListOverview(cmd.Context())
				if err != nil {
					return err
				}
				return printOverview(env.Stdout, overview)
			})
		},
	}

	cmd.AddCommand(textsShowCmd(env))
	cmd.AddCommand(textsAddCmd(env))
	cmd.AddCommand(textsDeleteCmd(env))

	return cmd
}

func textsShowCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <text-id>",
		Short: "Print a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return env.withBackend(cmd.Context(), false, func(_ *config.Config, b *app.Backend, _ *slog.Logger) error {
				t, err := b.Texts.GetText(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printText(env.Stdout, t)
			})
		},
	}
}

func textsAddCmd(env *Env) *cobra.Command {
	var (
		title   string
		author  string
		content string
		file    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom text",
		Example: `  recitation texts add --title "Sonnet 18" --author Shakespeare --file sonnet18.txt
  echo "Hope is the thing with feathers" | recitation texts add --title Hope --file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file != "" {
				body, err := readContent(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				content = body
			}

			return env.withBackend(cmd.Context(), false, func(_ *config.Config, b *app.Backend, _ *slog.Logger) error {
				t, err := b.Texts.CreateText(cmd.Context(), text.CreateTextInput{
					Title:   title,
					Author:  author,
					Content: content,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(env.Stdout, "added %q (%s)\n", t.Title, t.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title of the text")
	cmd.Flags().StringVar(&author, "author", "", "Author (optional)")
	cmd.Flags().StringVar(&content, "content", "", "Body of the text")
	cmd.Flags().StringVar(&file, "file", "", `Read the body from a file ("-" for stdin)`)
	_ = cmd.MarkFlagRequired("title")
	cmd.MarkFlagsMutuallyExclusive("content", "file")

	return cmd
}

func readContent(stdin io.Reader, file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read text body: %w", err)
	}
	return string(data), nil
}

func textsDeleteCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <text-id>",
		Short: "Delete a custom text and its recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return env.withBackend(cmd.Context(), false, func(_ *config.Config, b *app.Backend, _ *slog.Logger) error {
				if err := b.Texts.DeleteText(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(env.Stdout, "deleted text %s\n", id)
				return nil
			})
		},
	}
}
