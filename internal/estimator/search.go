package estimator

import "github.com/nao1215/passcheck/internal/model"

// Bruteforce alphabet cardinalities per character class. A bruteforce
// token costs the product of the per-character cardinalities of the
// classes its characters belong to.
const (
	digitSpace  = 10
	letterSpace = 26
	symbolSpace = 33
)

// charSpace returns the bruteforce alphabet size for one character.
func charSpace(r rune) float64 {
	switch {
	case r >= '0' && r <= '9':
		return digitSpace
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return letterSpace
	default:
		return symbolSpace
	}
}

// search finds the minimum-total-guesses partition of the candidate into
// adjacent non-overlapping matches plus single-character bruteforce
// fallback tokens. It is a shortest-path computation over positions
// 0..len: best[i] is the cheapest way to produce the first i characters,
// reached either by a bruteforce step from i-1 or by any match ending at
// i. Returns the total guesses (always >= 1) and the winning
// decomposition with consecutive bruteforce characters merged.
func search(runes []rune, matches []model.PatternMatch) (float64, []model.PatternMatch) {
	n := len(runes)
	if n == 0 {
		return 1, nil
	}

	byEnd := make([][]model.PatternMatch, n+1)
	for _, m := range matches {
		if m.Start < 0 || m.End > n || m.Start >= m.End {
			continue
		}
		byEnd[m.End] = append(byEnd[m.End], m)
	}

	best := make([]float64, n+1)
	from := make([]int, n+1)
	via := make([]*model.PatternMatch, n+1)
	best[0] = 1

	for i := 1; i <= n; i++ {
		best[i] = best[i-1] * charSpace(runes[i-1])
		from[i] = i - 1
		via[i] = nil

		for _, m := range byEnd[i] {
			if cost := best[m.Start] * m.Guesses; cost < best[i] {
				mm := m
				best[i] = cost
				from[i] = m.Start
				via[i] = &mm
			}
		}
	}

	total := best[n]
	if total < 1 {
		total = 1
	}
	return total, reconstruct(runes, from, via, n)
}

// reconstruct walks the DP back-pointers from the end, merging runs of
// single-character bruteforce steps into one bruteforce token each.
func reconstruct(runes []rune, from []int, via []*model.PatternMatch, n int) []model.PatternMatch {
	var reversed []model.PatternMatch

	i := n
	for i > 0 {
		if m := via[i]; m != nil {
			reversed = append(reversed, *m)
			i = from[i]
			continue
		}

		// Merge the maximal run of bruteforce steps ending here.
		end := i
		guesses := 1.0
		for i > 0 && via[i] == nil {
			guesses *= charSpace(runes[i-1])
			i = from[i]
		}
		reversed = append(reversed, model.PatternMatch{
			Kind:    model.PatternBruteforce,
			Start:   i,
			End:     end,
			Token:   string(runes[i:end]),
			Guesses: guesses,
		})
	}

	// Reverse into candidate order.
	out := make([]model.PatternMatch, 0, len(reversed))
	for k := len(reversed) - 1; k >= 0; k-- {
		out = append(out, reversed[k])
	}
	return out
}
