package estimator

import (
	"github.com/nao1215/passcheck/internal/model"
)

// Default tuning for strength classification. Thresholds are expressed
// in guesses; crack time follows from the attack rate.
const (
	// DefaultAttackRate is the assumed offline attack speed in guesses
	// per second. It models a well-resourced attacker with a GPU rig
	// against a fast hash.
	DefaultAttackRate = 1e10

	// DefaultWeakThreshold is the guess count below which a candidate is
	// classified weak.
	DefaultWeakThreshold = 1e6

	// DefaultStrongThreshold is the guess count at or above which a
	// candidate is classified strong.
	DefaultStrongThreshold = 1e10
)

// Estimator computes pattern-aware guess estimates for password
// candidates. The zero value is not usable; construct with New. An
// Estimator is immutable after construction and safe for concurrent use.
type Estimator struct {
	attackRate      float64
	weakThreshold   float64
	strongThreshold float64
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithAttackRate sets the assumed attack speed in guesses per second.
// Non-positive rates are ignored.
func WithAttackRate(rate float64) Option {
	return func(e *Estimator) {
		if rate > 0 {
			e.attackRate = rate
		}
	}
}

// WithThresholds sets the weak and strong guess-count boundaries.
// Invalid pairs (non-positive, or weak >= strong) are ignored.
func WithThresholds(weak, strong float64) Option {
	return func(e *Estimator) {
		if weak > 0 && strong > weak {
			e.weakThreshold = weak
			e.strongThreshold = strong
		}
	}
}

// New creates an Estimator with the default tuning, adjusted by opts.
func New(opts ...Option) *Estimator {
	e := &Estimator{
		attackRate:      DefaultAttackRate,
		weakThreshold:   DefaultWeakThreshold,
		strongThreshold: DefaultStrongThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate decomposes the candidate into patterns and returns the
// minimum-guesses score. The candidate is processed in memory only and
// never logged or retained. An empty candidate scores one guess and is
// classified weak.
func (e *Estimator) Estimate(candidate string) model.ScoreResult {
	runes := normalize(candidate)
	if len(runes) == 0 {
		return model.ScoreResult{
			Guesses:          1,
			CrackTimeSeconds: 1 / e.attackRate,
			Strength:         model.StrengthWeak,
		}
	}

	var matches []model.PatternMatch
	matches = append(matches, dictionaryMatches(runes)...)
	matches = append(matches, sequenceMatches(runes)...)
	matches = append(matches, repeatMatches(runes)...)
	matches = append(matches, keyboardMatches(runes)...)
	matches = append(matches, dateMatches(runes)...)

	guesses, decomposition := search(runes, matches)

	return model.ScoreResult{
		Guesses:          guesses,
		CrackTimeSeconds: guesses / e.attackRate,
		Strength:         e.classify(guesses),
		EntropyBits:      poolEntropyBits(candidate),
		ShannonBits:      shannonEntropyBits(candidate),
		Matches:          decomposition,
	}
}

// classify maps a guess count to a strength label. The label depends
// only on the guess count; breach exposure is reported separately and
// never alters it.
func (e *Estimator) classify(guesses float64) model.Strength {
	switch {
	case guesses < e.weakThreshold:
		return model.StrengthWeak
	case guesses < e.strongThreshold:
		return model.StrengthMedium
	default:
		return model.StrengthStrong
	}
}
