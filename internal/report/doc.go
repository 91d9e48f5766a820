// Package report renders analysis and decomposition results for the CLI.
//
// Results are written either as labelled text, optionally colored with
// lipgloss, or as indented JSON. Export writes a rendered report to disk
// atomically. Describe turns core error kinds into user-facing messages.
package report
