// Package commands defines the cidrcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - analyze       Analyze a CIDR block (network, broadcast, mask, hosts)
//   - decompose     Cover an address range with the fewest CIDR blocks
//   - interactive   Menu-driven prompt for both of the above
//
// # Implementation
//
// The root command loads configuration (.env, CIDRCALC_* variables, then
// flags) and builds the app before any subcommand runs. Results go to stdout,
// diagnostics to stderr.
package commands
