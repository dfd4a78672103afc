// Package model defines the core data structures shared across passcheck.
// It contains the strength scale, pattern match descriptions, score and
// breach results, and the final Analysis artifact returned to callers.
//
// Types in this package are plain data carriers with no I/O. They are
// created per request and discarded after rendering; nothing here is
// persisted.
package model
