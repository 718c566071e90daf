package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newTokenCmd(a *app) *cobra.Command {
	var count int

	c := &cobra.Command{
		Use:   "token",
		Short: "Print short upper case tokens derived from the monotonic clock",
		Long: `Print short upper case tokens derived from the monotonic clock.

Tokens use the alphabet A-Z0-9. They are not random and two tokens taken
in quick succession may be equal.`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "alpha_numeric", count, "count of at least 1")
			}
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), stringx.AlphaNumeric())
			}
			return nil
		}),
	}

	c.Flags().IntVarP(&count, "count", "n", 1, "number of tokens")
	return c
}
