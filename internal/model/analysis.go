package model

import (
	"encoding/json"
	"time"
)

// ScoreResult is the output of the strength estimator for one candidate.
// Guesses is always at least 1, and CrackTimeSeconds is derived from
// Guesses by dividing by a fixed attack rate, so the two are always in
// exact algebraic agreement.
type ScoreResult struct {
	// Guesses is the estimated number of attempts an optimal attacker
	// needs before trying the candidate.
	Guesses float64 `json:"guesses"`

	// CrackTimeSeconds is Guesses divided by the configured offline
	// attack rate (guesses per second).
	CrackTimeSeconds float64 `json:"crack_time_seconds"`

	// Strength is the three-level verdict derived from Guesses.
	Strength Strength `json:"strength"`

	// EntropyBits is the naive pool-size entropy, length * log2(pool).
	// It is reported for context only; the verdict comes from Guesses.
	EntropyBits float64 `json:"entropy_bits"`

	// ShannonBits is the Shannon entropy of the candidate's actual
	// character distribution, in bits per character.
	ShannonBits float64 `json:"shannon_bits"`

	// Matches is the winning minimum-guesses decomposition. Reports use
	// it to explain why a candidate scored the way it did.
	Matches []PatternMatch `json:"matches,omitempty"`
}

// BreachResult is the outcome of a breach-corpus lookup.
//
// The zero value means "not checked": not exposed, count unknown.
// CountKnown distinguishes "the corpus answered and the candidate was not
// in it" (Count 0, CountKnown true) from "the lookup failed" (CountKnown
// false). Callers must surface the latter as unknown, never as clean.
type BreachResult struct {
	// Exposed reports whether the candidate appeared in the corpus.
	// Invariant: Exposed is never true while Count is zero.
	Exposed bool

	// Count is the number of times the candidate was observed in
	// breaches. Only meaningful when CountKnown is true.
	Count int

	// CountKnown reports whether the lookup completed. False means the
	// oracle was unreachable or timed out and the analysis degraded.
	CountKnown bool
}

// MarshalJSON renders the occurrence count as the string "unknown" when
// the lookup failed, so downstream consumers can never mistake a failed
// lookup for a clean result.
func (b BreachResult) MarshalJSON() ([]byte, error) {
	type known struct {
		Exposed bool `json:"exposed"`
		Count   int  `json:"count"`
	}
	type unknown struct {
		Exposed bool   `json:"exposed"`
		Count   string `json:"count"`
	}
	if b.CountKnown {
		return json.Marshal(known{Exposed: b.Exposed, Count: b.Count})
	}
	return json.Marshal(unknown{Exposed: b.Exposed, Count: "unknown"})
}

// CountString returns the occurrence count for display, or "unknown"
// when the lookup did not complete.
func (b BreachResult) CountString() string {
	if !b.CountKnown {
		return "unknown"
	}
	return itoa(b.Count)
}

// itoa avoids importing strconv in every render path that only needs
// small non-negative counts formatted.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Analysis is the final artifact of one strength request. It combines the
// estimator verdict with the breach signal and basic composition facts.
// An Analysis is created per request and never persisted.
type Analysis struct {
	// Length is the candidate length in runes.
	Length int `json:"length"`

	// Character-class presence flags, computed in a single scan.
	HasUpper  bool `json:"has_upper"`
	HasLower  bool `json:"has_lower"`
	HasDigit  bool `json:"has_digit"`
	HasSymbol bool `json:"has_symbol"`

	// Character-class counts backing the flags. Reports use these for
	// composition breakdowns.
	UpperCount  int `json:"upper_count"`
	LowerCount  int `json:"lower_count"`
	DigitCount  int `json:"digit_count"`
	SymbolCount int `json:"symbol_count"`

	// Score is the strength estimator result. Always present.
	Score ScoreResult `json:"score"`

	// Breach is the breach-corpus signal. Best effort: when the oracle
	// is unavailable the result carries CountKnown false.
	Breach BreachResult `json:"breach"`

	// Warnings are human-readable notes derived from the winning pattern
	// decomposition (keyboard walks, dates, breached words, ...).
	Warnings []string `json:"warnings,omitempty"`

	// AnalyzedAt records when the analysis ran.
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// NewAnalysis creates an Analysis for a candidate with its composition
// fields filled in. Score, Breach, and Warnings are set by the analyzer.
func NewAnalysis(candidate string) *Analysis {
	a := &Analysis{AnalyzedAt: time.Now()}
	for _, r := range candidate {
		a.Length++
		switch {
		case r >= 'A' && r <= 'Z':
			a.UpperCount++
		case r >= 'a' && r <= 'z':
			a.LowerCount++
		case r >= '0' && r <= '9':
			a.DigitCount++
		default:
			a.SymbolCount++
		}
	}
	a.HasUpper = a.UpperCount > 0
	a.HasLower = a.LowerCount > 0
	a.HasDigit = a.DigitCount > 0
	a.HasSymbol = a.SymbolCount > 0
	return a
}

// GeneratedPassword is a password produced by the secure generator.
// It is immutable once produced and carries no metadata; callers render
// it exactly once and discard it.
type GeneratedPassword string

// String returns the password text.
func (g GeneratedPassword) String() string {
	return string(g)
}
