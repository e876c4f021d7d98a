// Package cli implements the command-line interface for nba-database.
//
// The cli package provides the Cobra-based CLI with the scrape, rebuild and
// seasons subcommands, output formatting (text/JSON), and process exit codes.
// It coordinates the bref, ingest and store packages to fetch seasons,
// persist snapshots, and maintain the cumulative tables.
package cli
