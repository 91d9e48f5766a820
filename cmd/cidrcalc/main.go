package main

import (
	"os"

	"cidrcalc/cmd/cidrcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
