package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the recitation command tree.
func NewRootCmd(env *Env, version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "recitation",
		Short:   "Record yourself reciting texts and play the recordings back",
		Version: version,
		// Errors are printed by main with the matching exit code.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(ServeCmd(env))
	root.AddCommand(SeedCmd(env))
	root.AddCommand(TextsCmd(env))
	root.AddCommand(RecordingsCmd(env))
	root.AddCommand(RecordCmd(env))

	return root
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q", ErrInvalidID, s)
	}
	return id, nil
}
