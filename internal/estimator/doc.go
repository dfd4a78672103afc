// Package estimator scores password guessability using pattern-based
// decomposition rather than rule counting.
//
// The estimator scans a candidate for dictionary words, breached
// passwords, sequences, repeats, keyboard walks, and dates, assigns each
// match a guess estimate, and then finds the minimum-total-guesses
// partition of the candidate into adjacent non-overlapping matches plus
// per-character bruteforce fallback tokens. The minimum over all
// partitions is the candidate's estimated guess count.
//
// Estimation is a pure function: no I/O, no failures. The ranked
// frequency lists and the keyboard adjacency graph are process-wide
// immutable state built once at package initialization and safe for
// unsynchronized concurrent reads.
package estimator
