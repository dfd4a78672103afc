package model

// Strength represents the guess-difficulty verdict for a candidate password.
// It is derived from the estimated guess count alone; breach exposure is
// reported separately and never changes the strength label.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Strength int

const (
	// StrengthWeak indicates the candidate falls to a small dictionary or
	// pattern attack. Examples: common passwords, short sequences, single
	// dictionary words with trivial decoration.
	StrengthWeak Strength = iota

	// StrengthMedium indicates the candidate resists casual online guessing
	// but not a determined offline attack against a fast hash.
	StrengthMedium

	// StrengthStrong indicates the candidate is expected to survive an
	// offline attack at commodity-GPU guess rates for a long time.
	StrengthStrong
)

// String returns a human-readable representation of the strength level.
func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so Strength renders as its
// label in JSON and YAML output rather than a bare integer.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PatternKind identifies the kind of pattern a match represents.
// The set is closed: every token of a candidate is explained by exactly
// one of these kinds in the winning decomposition.
//
// Design decision: We use a tagged constant rather than an interface
// hierarchy because the set of kinds is fixed and the dynamic-programming
// search over positions only needs the per-match guess estimate, not
// virtual dispatch.
type PatternKind int

const (
	// PatternBruteforce is the fallback for spans no matcher explains.
	// Cost is alphabet-size exponentiation over the span.
	PatternBruteforce PatternKind = iota

	// PatternDictionary is a word from a ranked frequency list, matched
	// case-insensitively and through common character substitutions.
	PatternDictionary

	// PatternBreachedPassword is an entry from the ranked list of
	// passwords observed in public breach corpora.
	PatternBreachedPassword

	// PatternSequence is an ascending or descending alphabetic or numeric
	// run of at least three characters (abc, 987, ...).
	PatternSequence

	// PatternRepeat is a repeated unit spanning at least three characters
	// (aaa, abab, ...).
	PatternRepeat

	// PatternKeyboard is a walk across physically adjacent keys on a
	// US QWERTY layout (qwerty, zxcvbn, 1qaz, ...).
	PatternKeyboard

	// PatternDate is a year or a full date in a common layout.
	PatternDate
)

// String returns the pattern kind name used in reports and logs.
func (k PatternKind) String() string {
	switch k {
	case PatternBruteforce:
		return "bruteforce"
	case PatternDictionary:
		return "dictionary"
	case PatternBreachedPassword:
		return "breached-password"
	case PatternSequence:
		return "sequence"
	case PatternRepeat:
		return "repeat"
	case PatternKeyboard:
		return "keyboard-walk"
	case PatternDate:
		return "date"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (k PatternKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// PatternMatch describes one token of the winning minimum-guesses
// decomposition of a candidate. Offsets are rune indexes into the
// normalized candidate; Start is inclusive and End exclusive.
type PatternMatch struct {
	// Kind is the pattern kind that explains this span.
	Kind PatternKind `json:"kind"`

	// Start is the rune offset where the match begins.
	Start int `json:"start"`

	// End is the rune offset one past the last matched rune.
	End int `json:"end"`

	// Token is the matched substring. It is carried for report rendering
	// and must never be logged; the secure log handler masks it.
	Token string `json:"-"`

	// Guesses is the match-specific estimate of attempts an attacker
	// needs to produce this token.
	Guesses float64 `json:"guesses"`
}
