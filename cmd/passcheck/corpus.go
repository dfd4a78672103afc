package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/breach"
	"github.com/nao1215/passcheck/internal/config"
)

// NewCorpusCmd creates the corpus command with its subcommands.
func NewCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage the local breach corpus",
		Long: `Corpus manages the local SQLite breach corpus used by
'passcheck analyze --offline'.

The corpus is populated from a breach dump in the standard range
format: one SHA-1 digest and occurrence count per line, separated by a
colon (e.g. 5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8:9545824).`,
	}

	cmd.AddCommand(newCorpusImportCmd())
	cmd.AddCommand(newCorpusStatsCmd())

	return cmd
}

// newCorpusImportCmd creates the corpus import subcommand.
func newCorpusImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <dump-file>",
		Short: "Import a breach dump into the local corpus",
		Long: `Import loads a breach dump file into the local SQLite corpus.

Each line must contain an uppercase SHA-1 digest and an occurrence
count separated by a colon. Re-importing a dump replaces the counts of
digests it already contains.

Examples:
  # Import a dump into the default corpus location
  passcheck corpus import pwned-passwords-sha1.txt

  # Import into a custom directory
  passcheck corpus import --corpus-dir /srv/passcheck pwned-dump.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runCorpusImportCmd,
	}

	cmd.Flags().String("corpus-dir", config.XDGDataDir(),
		"Local breach corpus directory")

	return cmd
}

// runCorpusImportCmd executes the corpus import subcommand.
func runCorpusImportCmd(cmd *cobra.Command, args []string) error {
	corpusDir, err := cmd.Flags().GetString("corpus-dir")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	f, err := os.Open(args[0]) //nolint:gosec // User-provided dump path is intentional
	if err != nil {
		return fmt.Errorf("failed to open dump file: %w", err)
	}
	defer f.Close()

	corpus, err := breach.OpenLocal(corpusDir, breach.DefaultLocalOptions())
	if err != nil {
		return fmt.Errorf("failed to open local corpus: %w", err)
	}
	defer corpus.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Importing %s into %s...\n", args[0], corpus.Path())
	startTime := time.Now()

	imported, err := corpus.ImportDump(ctx, f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d hashes in %s\n",
		imported, time.Since(startTime).Round(time.Millisecond))
	return nil
}

// newCorpusStatsCmd creates the corpus stats subcommand.
func newCorpusStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show local corpus statistics",
		Long:  `Stats reports the size and import history of the local breach corpus.`,
		Args:  cobra.NoArgs,
		RunE:  runCorpusStatsCmd,
	}

	cmd.Flags().String("corpus-dir", config.XDGDataDir(),
		"Local breach corpus directory")

	return cmd
}

// runCorpusStatsCmd executes the corpus stats subcommand.
func runCorpusStatsCmd(cmd *cobra.Command, _ []string) error {
	corpusDir, err := cmd.Flags().GetString("corpus-dir")
	if err != nil {
		return err
	}

	corpus, err := breach.OpenLocal(corpusDir, breach.LocalOptions{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf(
			"failed to open local corpus in %s (run 'passcheck corpus import' first): %w",
			corpusDir, err)
	}
	defer corpus.Close()

	stats, err := corpus.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read corpus stats: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Corpus:   %s\n", corpus.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "Hashes:   %d\n", stats.Hashes)
	fmt.Fprintf(cmd.OutOrStdout(), "Prefixes: %d\n", stats.Prefixes)
	fmt.Fprintf(cmd.OutOrStdout(), "Imports:  %d\n", stats.Imports)
	return nil
}
