package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidTimeout is returned when the oracle timeout is not positive.
	// A timeout of zero or negative would cause immediate lookup failures.
	ErrInvalidTimeout = errors.New("invalid oracle timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent checks, effectively
	// stopping batch processing.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidAttackRate is returned when the assumed attack rate is not
	// positive. Crack-time estimates divide by this value.
	ErrInvalidAttackRate = errors.New("invalid attack rate: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConflictingBreachModes is returned when --strict is combined with
	// --no-breach-check. Strict mode demands a breach answer, which the
	// other flag disables.
	ErrConflictingBreachModes = errors.New("conflicting breach modes: --strict and --no-breach-check cannot be used together")
)
