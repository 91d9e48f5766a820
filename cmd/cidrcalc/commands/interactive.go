package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// interactive: the menu loop. Errors are shown and the loop continues; EOF or
// choice 3 ends it.
func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Menu-driven prompt for analysis and decomposition",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(bufio.NewScanner(cmd.InOrStdin()), cmd.OutOrStdout())
		},
	}
}

func runInteractive(in *bufio.Scanner, out io.Writer) error {
	prompt := func(label string) (string, bool) {
		fmt.Fprint(out, label)
		if !in.Scan() {
			return "", false
		}
		return strings.TrimSpace(in.Text()), true
	}

	fmt.Fprintln(out, "CIDR calculator")
	for {
		fmt.Fprintln(out, "\nChoose an option:")
		fmt.Fprintln(out, "1. Analyze CIDR notation")
		fmt.Fprintln(out, "2. Find optimal CIDR blocks for a range")
		fmt.Fprintln(out, "3. Exit")

		choice, ok := prompt("\nYour choice (1-3): ")
		if !ok {
			return in.Err()
		}

		var err error
		switch choice {
		case "1":
			cidr, ok := prompt("\nEnter CIDR notation (e.g. 192.168.1.0/24): ")
			if !ok {
				return in.Err()
			}
			err = appCtx.Analyze(out, cidr)
		case "2":
			start, ok := prompt("\nEnter start IP address: ")
			if !ok {
				return in.Err()
			}
			end, ok := prompt("Enter end IP address: ")
			if !ok {
				return in.Err()
			}
			err = appCtx.Decompose(out, start, end)
		case "3":
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(out, "\nInvalid choice. Please choose 1, 2 or 3.")
			continue
		}
		if err != nil {
			_ = appCtx.Render.Error(out, err)
		}
	}
}
