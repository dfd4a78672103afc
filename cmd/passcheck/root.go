// Package main provides the entry point for the passcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for passcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcheck",
		Short: "Password strength analyzer and generator",
		Long: `passcheck estimates how many guesses a password would survive,
checks it against breach corpora using k-anonymity range queries, and
generates cryptographically secure replacements.

Candidates are read from an interactive prompt or stdin; they are never
logged, stored, or sent anywhere beyond a five-character digest prefix.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewCorpusCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
