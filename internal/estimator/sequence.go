package estimator

import (
	"unicode"

	"github.com/nao1215/passcheck/internal/model"
)

// sequenceGuesses is the cost of any recognized sequence run.
// Sequences are so predictable that length barely matters to an attacker
// who enumerates them from common starting points, so the estimate is a
// small constant independent of run length. Tunable.
const sequenceGuesses = 50

// minSequenceLen is the shortest run treated as a sequence. Two adjacent
// characters are coincidence; three are a pattern.
const minSequenceLen = 3

// sequenceMatches finds ascending and descending alphabetic or numeric
// runs. Every sub-run of length >= minSequenceLen inside a maximal run is
// emitted so the position DP can splice sequences freely.
func sequenceMatches(runes []rune) []model.PatternMatch {
	n := len(runes)
	var out []model.PatternMatch

	i := 0
	for i < n-1 {
		dir := sequenceStep(runes[i], runes[i+1])
		if dir == 0 {
			i++
			continue
		}

		// Extend the maximal run in this direction.
		j := i + 1
		for j < n-1 && sequenceStep(runes[j], runes[j+1]) == dir {
			j++
		}
		runLen := j - i + 1
		if runLen >= minSequenceLen {
			out = append(out, subRunMatches(runes, i, j+1, model.PatternSequence, sequenceGuesses)...)
		}
		i = j
	}
	return out
}

// sequenceStep reports the sequence direction between two runes:
// +1 ascending, -1 descending, 0 not a step. Steps never cross between
// letters and digits, and case is ignored for letters.
func sequenceStep(a, b rune) int {
	la, lb := unicode.ToLower(a), unicode.ToLower(b)
	alpha := la >= 'a' && la <= 'z' && lb >= 'a' && lb <= 'z'
	digit := a >= '0' && a <= '9' && b >= '0' && b <= '9'
	if !alpha && !digit {
		return 0
	}
	switch lb - la {
	case 1:
		return 1
	case -1:
		return -1
	default:
		return 0
	}
}

// subRunMatches emits a match for every window of length >= minSequenceLen
// within [start, end). The guess estimate is the same constant for each
// window; the DP picks whichever span minimizes the total.
func subRunMatches(runes []rune, start, end int, kind model.PatternKind, guesses float64) []model.PatternMatch {
	var out []model.PatternMatch
	for i := start; i+minSequenceLen <= end; i++ {
		for j := i + minSequenceLen; j <= end; j++ {
			out = append(out, model.PatternMatch{
				Kind:    kind,
				Start:   i,
				End:     j,
				Token:   string(runes[i:j]),
				Guesses: guesses,
			})
		}
	}
	return out
}
