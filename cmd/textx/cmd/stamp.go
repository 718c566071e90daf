package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/timex"
)

func newStampCmd(a *app) *cobra.Command {
	var granularity string

	c := &cobra.Command{
		Use:   "stamp",
		Short: "Print the current time as a compact digit stamp",
		Long: `Print the current time as a compact digit stamp.

Layout: YYYYMMDDhhmmssSSS, cut after the selected granularity
(month, date, hour, minute, second, millisecond). The hour is taken
from the 12-hour clock without an AM/PM marker.`,
		Example: `  textx stamp
  textx stamp --granularity minute`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			g := a.settings.Granularity
			if cmd.Flags().Changed("granularity") {
				var err error
				if g, err = timex.ParseGranularity(granularity); err != nil {
					return err
				}
			}

			stamp, err := timex.DateStampNow(g)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stamp)
			return nil
		}),
	}

	c.Flags().StringVarP(&granularity, "granularity", "g", "", "last field of the stamp (default from stamp.granularity)")
	return c
}
