// Package main provides the entry point for the passcheck CLI.
//
// passcheck analyzes password strength with pattern-aware guess
// estimation and checks candidates against breach corpora without ever
// disclosing the password itself.
//
// Usage:
//
//	passcheck analyze
//	passcheck analyze --list candidates.txt
//	passcheck generate --length 20
//	passcheck corpus import pwned-dump.txt
//
// See --help for all available options.
package main

// main is the entry point for passcheck.
func main() {
	Execute()
}
