package commands

import (
	"github.com/spf13/cobra"

	"cidrcalc/internal/services/calculator"
)

// decompose <start> <end> | <start-end>: cover the range with CIDR blocks.
func decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decompose <start> <end>",
		Aliases: []string{"d", "range"},
		Short:   "Find the fewest CIDR blocks covering an address range",
		Example: "  cidrcalc decompose 192.168.1.1 192.168.2.254\n  cidrcalc decompose 10.0.0.1-10.0.0.6",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end := args[0], ""
			if len(args) == 2 {
				end = args[1]
			} else {
				var err error
				if start, end, err = calculator.ParseRange(args[0]); err != nil {
					return err
				}
			}
			return appCtx.Decompose(cmd.OutOrStdout(), start, end)
		},
	}
}
