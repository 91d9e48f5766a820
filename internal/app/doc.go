// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults, an optional .env file and CIDRCALC_*
// environment variables, then builds the calculator, renderer and logger,
// exposing them via App for commands to use.
package app
