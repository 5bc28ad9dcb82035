package cli

import (
	"github.com/spf13/cobra"
)

// ServeCmd creates the serve command.
func ServeCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API over the local store",
		Long: `Serve the texts and recordings of the configured local store over HTTP.

Other machines can then use it with STORE_DRIVER=remote and REMOTE_BASE_URL.
The server stops cleanly on Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := env.setup(false)
			if err != nil {
				return err
			}
			return env.Serve(cmd.Context(), cfg, log)
		},
	}
}
