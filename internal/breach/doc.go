// Package breach checks password candidates against corpora of breached
// password hashes using the k-anonymity range protocol.
//
// The candidate itself never leaves the process: only the first five hex
// characters of its SHA-1 digest are sent to a remote oracle (or used as
// a lookup key in the local corpus), and the returned suffix set is
// compared in memory. Neither the candidate, its digest, nor the digest
// suffix is ever logged, cached, or transmitted.
package breach
