package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nao1215/passcheck/internal/analyzer"
	"github.com/nao1215/passcheck/internal/breach"
	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/estimator"
	"github.com/nao1215/passcheck/internal/log"
	"github.com/nao1215/passcheck/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze password strength and breach exposure",
		Long: `Analyze estimates how many guesses a password would survive and checks
it against a breach corpus using a k-anonymity range query.

The candidate is read from an interactive no-echo prompt, or from stdin
when piped. Passwords are never accepted as command-line arguments
because arguments end up in shell history and process listings.

The breach check discloses only the first five characters of the
candidate's SHA-1 digest. When the check cannot run, the report says
"unknown" rather than pretending the password is clean.

Examples:
  # Analyze one password (interactive prompt)
  passcheck analyze

  # Analyze a password piped from another tool
  pass show example.com | passcheck analyze

  # Analyze a list of candidates, one per line
  passcheck analyze --list candidates.txt

  # Query a locally imported breach corpus instead of the remote oracle
  passcheck analyze --offline

  # Fail instead of degrading when the breach oracle is unreachable
  passcheck analyze --strict

  # Output JSON report to a file
  passcheck analyze --json --output report.json`,
		Args: cobra.NoArgs,
		RunE: runAnalyzeCmd,
	}

	// Input flags
	cmd.Flags().StringP("list", "l", "",
		"Read candidates from the specified file, one per line")

	// Breach oracle flags
	cmd.Flags().String("oracle-url", config.DefaultOracleBaseURL,
		"Breach oracle base URL")
	cmd.Flags().DurationP("oracle-timeout", "T", config.DefaultOracleTimeout,
		"Timeout for each breach oracle lookup")
	cmd.Flags().Bool("offline", false,
		"Query the local breach corpus instead of the remote oracle")
	cmd.Flags().Bool("no-breach-check", false,
		"Skip breach checking entirely (status reported as unknown)")
	cmd.Flags().Bool("strict", false,
		"Treat an unavailable breach oracle as a hard failure")
	cmd.Flags().String("corpus-dir", "",
		"Local breach corpus directory (default: XDG data directory)")

	// Estimation flags
	cmd.Flags().Float64("attack-rate", config.DefaultAttackRate,
		"Assumed offline attack speed in guesses per second")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses when using --list")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .passcheck in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	// Build config from flags
	cfg, listFile, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with candidate redaction
	verbose := getVerboseFlag(cmd)
	logger := log.NewSecureLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	candidates, err := readCandidates(listFile)
	if err != nil {
		return err
	}

	return runAnalyze(ctx, cfg, candidates, verbose, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra command
// flags. Precedence is flags > config file > defaults, so file values
// are applied first and explicitly set flags override them.
func buildConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.NewConfig()

	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", err
	}
	cfg.ConfigFilePath = configFilePath

	// Load settings from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep defaults when no file exists.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, "", fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags override file values only when the user set them.
	if cmd.Flags().Changed("oracle-url") {
		if cfg.OracleBaseURL, err = cmd.Flags().GetString("oracle-url"); err != nil {
			return nil, "", err
		}
	}
	if cmd.Flags().Changed("oracle-timeout") {
		if cfg.OracleTimeout, err = cmd.Flags().GetDuration("oracle-timeout"); err != nil {
			return nil, "", err
		}
	}
	if cmd.Flags().Changed("attack-rate") {
		if cfg.AttackRate, err = cmd.Flags().GetFloat64("attack-rate"); err != nil {
			return nil, "", err
		}
	}
	if cmd.Flags().Changed("batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return nil, "", err
		}
	}
	if cmd.Flags().Changed("corpus-dir") {
		if cfg.CorpusDir, err = cmd.Flags().GetString("corpus-dir"); err != nil {
			return nil, "", err
		}
	}

	cfg.Offline, err = cmd.Flags().GetBool("offline")
	if err != nil {
		return nil, "", err
	}

	cfg.NoBreachCheck, err = cmd.Flags().GetBool("no-breach-check")
	if err != nil {
		return nil, "", err
	}

	cfg.Strict, err = cmd.Flags().GetBool("strict")
	if err != nil {
		return nil, "", err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, "", err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, "", err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, "", err
	}

	listFile, err := cmd.Flags().GetString("list")
	if err != nil {
		return nil, "", err
	}

	return cfg, listFile, nil
}

// readCandidates collects the candidates to analyze. With --list, each
// non-empty line of the file is a candidate. Otherwise a single
// candidate comes from an interactive no-echo prompt, or from stdin when
// piped.
func readCandidates(listFile string) ([]string, error) {
	if listFile != "" {
		return readCandidateList(listFile)
	}

	candidate, err := readCandidate(os.Stdin)
	if err != nil {
		return nil, err
	}
	return []string{candidate}, nil
}

// readCandidateList reads candidates from a file, one per line.
// Blank lines are skipped; leading and trailing whitespace is preserved
// because it is part of the password.
func readCandidateList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open candidate list: %w", err)
	}
	defer f.Close()

	var candidates []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate list: %w", err)
	}
	if len(candidates) == 0 {
		return nil, errors.New("candidate list is empty")
	}
	return candidates, nil
}

// readCandidate reads one candidate from input. On a terminal the
// prompt disables echo so the password never appears on screen; piped
// input is read as a single line.
func readCandidate(input *os.File) (string, error) {
	fd := int(input.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if len(raw) == 0 {
			return "", errors.New("no password entered")
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(input)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no password provided on stdin")
	}
	return line, nil
}

// runAnalyze executes the analysis and outputs the report.
func runAnalyze(ctx context.Context, cfg *config.Config, candidates []string, verbose bool, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"candidates", len(candidates),
		"offline", cfg.Offline,
		"noBreachCheck", cfg.NoBreachCheck,
		"strict", cfg.Strict,
		"batchSize", cfg.BatchSize,
	)

	corpus, cleanup, err := openCorpus(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	a := analyzer.New(
		analyzer.WithEstimator(estimator.New(estimator.WithAttackRate(cfg.AttackRate))),
		analyzer.WithCorpus(corpus),
		analyzer.WithOracleTimeout(cfg.OracleTimeout),
		analyzer.WithStrict(cfg.Strict),
		analyzer.WithConcurrency(cfg.BatchSize),
		analyzer.WithLogger(logger),
	)

	startTime := time.Now()

	if len(candidates) == 1 {
		analysis, err := a.Analyze(ctx, candidates[0])
		if err != nil {
			return err
		}
		logger.Debug("analysis complete", "elapsed", time.Since(startTime))
		return outputReport(cfg, verbose, func(w report.Writer) error {
			_, err := w.Write(analysis)
			return err
		})
	}

	analyses, err := a.AnalyzeBatch(ctx, candidates)
	if err != nil {
		return err
	}
	return outputReport(cfg, verbose, func(w report.Writer) error {
		_, err := w.WriteAll(analyses)
		return err
	})
}

// openCorpus builds the breach corpus from the configuration. The
// returned cleanup function closes the local corpus when one was opened;
// it is a no-op otherwise.
func openCorpus(cfg *config.Config, logger *slog.Logger) (breach.Corpus, func(), error) {
	noop := func() {}

	if cfg.NoBreachCheck {
		logger.Debug("breach checking disabled")
		return nil, noop, nil
	}

	if cfg.Offline {
		local, err := breach.OpenLocal(cfg.CorpusDir, breach.LocalOptions{
			CreateIfNotExists: false,
			EnableWAL:         true,
		})
		if err != nil {
			return nil, noop, fmt.Errorf(
				"failed to open local corpus in %s (run 'passcheck corpus import' first): %w",
				cfg.CorpusDir, err)
		}
		logger.Debug("local corpus opened", "path", local.Path())
		return local, func() {
			if err := local.Close(); err != nil {
				logger.Error("failed to close local corpus", "error", err)
			}
		}, nil
	}

	client := breach.NewClient(
		breach.WithBaseURL(cfg.OracleBaseURL),
		breach.WithTimeout(cfg.OracleTimeout),
	)
	return client, noop, nil
}

// outputReport writes the report in the requested format through the
// given render function.
func outputReport(cfg *config.Config, verbose bool, render func(report.Writer) error) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file with secure permissions (0600)
		// Reports reveal which passwords are weak or breached and should
		// only be readable by the owner
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(verbose))
	}

	return render(writer)
}
