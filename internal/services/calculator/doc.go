// Package calculator is the text-facing entry point to CIDR analysis and range
// decomposition.
//
// It parses dotted-quad and CIDR text, delegates to the addr and decompose
// packages, and returns structured results. It never prints or logs.
package calculator
