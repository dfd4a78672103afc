package estimator

import "github.com/nao1215/passcheck/internal/model"

// repeatGuesses is the cost of any recognized repeat span. Attackers try
// "repeat something short" as a single cheap rule, so the estimate is a
// small constant independent of how far the unit is stretched. Tunable.
const repeatGuesses = 24

// minRepeatSpan is the shortest total span treated as a repeat.
const minRepeatSpan = 3

// repeatMatches finds spans made of a repeated unit: a single character
// repeated three or more times, or a multi-character unit appearing at
// least twice across at least three characters. For each start position
// and unit width only the maximal span is emitted; shorter overlapping
// repeats add nothing the DP could prefer, since all repeats cost the
// same constant.
func repeatMatches(runes []rune) []model.PatternMatch {
	n := len(runes)
	var out []model.PatternMatch

	for i := 0; i < n; i++ {
		for width := 1; width <= (n-i)/2; width++ {
			// Count how far the unit at [i, i+width) repeats.
			end := i + width
			for end+width <= n && equalRunes(runes[i:i+width], runes[end:end+width]) {
				end += width
			}
			span := end - i
			if end == i+width || span < minRepeatSpan {
				continue
			}

			// Skip non-maximal starts: the same unit repeating one
			// position earlier already produced a covering match.
			if i >= width && equalRunes(runes[i-width:i], runes[i:i+width]) {
				continue
			}

			out = append(out, model.PatternMatch{
				Kind:    model.PatternRepeat,
				Start:   i,
				End:     end,
				Token:   string(runes[i:end]),
				Guesses: repeatGuesses,
			})
		}
	}
	return out
}

// equalRunes reports whether two rune slices have identical contents.
func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
