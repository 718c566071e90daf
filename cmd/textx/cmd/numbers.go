package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/mathx"
)

var roundingModes = map[string]mathx.RoundingMode{
	"half_up":   mathx.RoundingModeHalfUp,
	"half_even": mathx.RoundingModeHalfEven,
	"down":      mathx.RoundingModeDown,
}

func newDecimalsCmd(a *app) *cobra.Command {
	var (
		precision uint
		rounding  string
	)

	c := &cobra.Command{
		Use:   "decimals <number>",
		Short: "Format a number with a fixed count of decimals",
		Long: `Format a number with a fixed count of decimals.

Whole numbers are printed without a decimal point. Negative numbers
must follow "--" so they are not read as flags.`,
		Example: `  textx decimals 3.14159 --precision 3
  textx decimals --rounding half_even 2.345
  textx decimals -- -1.5`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return mdwerrors.InvalidInput(mdwerrors.ModuleMathx, "format_to_decimals", args[0], "decimal number")
			}
			mode, ok := roundingModes[rounding]
			if !ok {
				return mdwerrors.InvalidInput(mdwerrors.ModuleMathx, "format_to_decimals", rounding, "half_up, half_even or down")
			}

			p := a.settings.Precision
			if cmd.Flags().Changed("precision") {
				if precision > maxPrecision {
					return mdwerrors.InvalidInput(mdwerrors.ModuleMathx, "format_to_decimals", precision, "precision of at most 20")
				}
				p = precision
			}
			fmt.Fprintln(cmd.OutOrStdout(), mathx.FormatToDecimalsMode(value, p, mode))
			return nil
		}),
	}

	c.Flags().UintVar(&precision, "precision", 0, "fraction digits, 0 to 20 (default from format.precision)")
	c.Flags().StringVar(&rounding, "rounding", "half_up", "rounding mode: half_up, half_even or down")
	return c
}

func newPadCmd(a *app) *cobra.Command {
	var width uint

	c := &cobra.Command{
		Use:   "pad <integer>",
		Short: "Left pad an integer with zeros",
		Example: `  textx pad 7 --width 3
  textx pad -- -5`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return mdwerrors.InvalidInput(mdwerrors.ModuleMathx, "zero_pad", args[0], "integer")
			}

			w := a.settings.PadWidth
			if cmd.Flags().Changed("width") {
				if width > maxPadWidth {
					return mdwerrors.InvalidInput(mdwerrors.ModuleMathx, "zero_pad", width, "width of at most 64")
				}
				w = width
			}
			fmt.Fprintln(cmd.OutOrStdout(), mathx.ZeroPad(value, w))
			return nil
		}),
	}

	c.Flags().UintVar(&width, "width", 0, "minimum width, 0 to 64 (default from format.pad_width)")
	return c
}
