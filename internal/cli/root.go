// Package cli implements the relog command tree. Each command lives in
// its own file and registers itself on rootCmd from init().
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relog",
	Short: "Generate a grouped changelog from conventional commits",
	Long: `relog turns the git commits since your last release tag into a grouped,
human-readable Markdown changelog.

Commit subjects following the conventional-commit grammar
("type(scope): description") are classified into a fixed set of
categories and rendered in priority order. Merge commits and
unrecognized subjects are skipped.

The Markdown goes to stdout; a single status line naming the reference
the range starts from goes to stderr, so the output can be piped
directly into a release-note field.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
