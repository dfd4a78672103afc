package breach

import "errors"

var (
	// ErrOracleUnavailable is returned when the breach oracle cannot be
	// reached or answers with an unexpected status. Callers should treat
	// breach status as unknown, never as "not breached".
	ErrOracleUnavailable = errors.New("breach oracle unavailable")

	// ErrInvalidPrefix is returned when a range lookup is attempted with
	// a prefix that is not exactly five hexadecimal characters.
	ErrInvalidPrefix = errors.New("range prefix must be five hexadecimal characters")

	// ErrCorpusClosed is returned when a lookup is attempted on a closed
	// local corpus.
	ErrCorpusClosed = errors.New("breach corpus is closed")

	// ErrMalformedRange is returned when a range response line does not
	// follow the SUFFIX:COUNT format.
	ErrMalformedRange = errors.New("malformed range response")
)
