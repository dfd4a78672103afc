package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values mirror the public Pwned Passwords service characteristics
// and common password-policy defaults.
const (
	// DefaultOracleBaseURL is the public Pwned Passwords range endpoint.
	// Only five-character digest prefixes are ever sent to it.
	DefaultOracleBaseURL = "https://api.pwnedpasswords.com"

	// DefaultOracleTimeout bounds each range lookup. The endpoint
	// normally answers within a second; ten seconds leaves room for slow
	// links without hanging interactive use.
	DefaultOracleTimeout = 10 * time.Second

	// DefaultAttackRate is the assumed offline attack speed in guesses
	// per second used for crack-time estimates. 1e10 models a
	// well-resourced GPU rig against a fast unsalted hash.
	DefaultAttackRate = 1e10

	// DefaultBatchSize of 10 concurrent checks balances throughput with
	// oracle rate limits when analyzing password lists.
	DefaultBatchSize = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "passcheck"
)

// Config holds all configuration options for passcheck.
// This struct is designed to be populated from CLI flags and passed
// through the application via dependency injection rather than global
// state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., OracleConfig, ReportConfig) for simplicity. The number of
// options is manageable, and nesting would add complexity without
// significant benefit.
type Config struct {
	// OracleBaseURL is the breach oracle root URL. Range queries go to
	// OracleBaseURL/range/<prefix>.
	OracleBaseURL string

	// OracleTimeout is the per-lookup timeout for the breach oracle.
	OracleTimeout time.Duration

	// AttackRate is the assumed attack speed in guesses per second used
	// to convert guess counts into crack-time estimates.
	AttackRate float64

	// NoBreachCheck disables breach lookups entirely. Analyses report
	// the breach status as unknown.
	NoBreachCheck bool

	// Offline switches breach lookups from the remote oracle to the
	// local SQLite corpus. Requires a previously imported dump.
	Offline bool

	// Strict makes an unavailable breach oracle a hard failure instead
	// of degrading to an unknown breach status.
	Strict bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent analyses when processing a
	// candidate list.
	BatchSize int

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// The file is created with owner-only permissions.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .passcheck in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// CorpusDir is the directory holding the local breach corpus.
	// Defaults to the XDG data directory.
	CorpusDir string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, attack
// rate). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		OracleBaseURL: DefaultOracleBaseURL,
		OracleTimeout: DefaultOracleTimeout,
		AttackRate:    DefaultAttackRate,
		BatchSize:     DefaultBatchSize,
		CorpusDir:     XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for passcheck.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/passcheck
// On macOS: ~/Library/Application Support/passcheck
// On Windows: %LOCALAPPDATA%\passcheck
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passcheck.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any analysis begins.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.OracleTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.AttackRate <= 0 {
		return ErrInvalidAttackRate
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// Strict demands a breach answer; NoBreachCheck forbids asking
	if c.Strict && c.NoBreachCheck {
		return ErrConflictingBreachModes
	}

	return nil
}
