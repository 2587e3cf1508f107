// Package cli implements the command-line interface for league-leaderboard.
//
// The cli package provides the Cobra-based CLI: show prints the current leaderboard
// (text, JSON, HTML or an XLSX workbook), chart writes a PNG of player totals, and serve
// runs the leaderboard page. It wires the config, source, loader, render and web
// packages together; every command performs exactly one fresh load per invocation
// (serve: per request).
package cli
