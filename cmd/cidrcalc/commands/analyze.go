package commands

import (
	"github.com/spf13/cobra"
)

// analyze <A.B.C.D/N>: print the properties of one CIDR block.
func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "analyze <A.B.C.D/N>",
		Aliases: []string{"a"},
		Short:   "Analyze a CIDR block",
		Example: "  cidrcalc analyze 192.168.1.0/24",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Analyze(cmd.OutOrStdout(), args[0])
		},
	}
}
