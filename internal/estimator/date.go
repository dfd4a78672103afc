package estimator

import "github.com/nao1215/passcheck/internal/model"

// Date matching constants. People overwhelmingly pick years near the
// present, so guesses scale with distance from the reference year with a
// floor that keeps very recent years from looking implausibly cheap.
const (
	referenceYear = 2025
	minYearSpace  = 20
	minYear       = 1900
	maxYear       = referenceYear + 10
)

// dateMatches finds years and full dates inside digit runs. A bare year
// (1900..maxYear) costs its distance from the reference year; an eight
// digit MMDDYYYY or DDMMYYYY date costs the year space times the number
// of days in a year.
func dateMatches(runes []rune) []model.PatternMatch {
	n := len(runes)
	var out []model.PatternMatch

	for i := 0; i < n; i++ {
		// Four-digit year.
		if i+4 <= n {
			if year, ok := digitsValue(runes[i : i+4]); ok && year >= minYear && year <= maxYear {
				out = append(out, model.PatternMatch{
					Kind:    model.PatternDate,
					Start:   i,
					End:     i + 4,
					Token:   string(runes[i : i+4]),
					Guesses: yearSpace(year),
				})
			}
		}

		// Eight-digit full date, month-first or day-first.
		if i+8 <= n {
			if match, ok := fullDateMatch(runes, i); ok {
				out = append(out, match)
			}
		}
	}
	return out
}

// fullDateMatch checks the eight digits at offset i for a valid
// MMDDYYYY or DDMMYYYY reading.
func fullDateMatch(runes []rune, i int) (model.PatternMatch, bool) {
	first, ok1 := digitsValue(runes[i : i+2])
	second, ok2 := digitsValue(runes[i+2 : i+4])
	year, ok3 := digitsValue(runes[i+4 : i+8])
	if !ok1 || !ok2 || !ok3 || year < minYear || year > maxYear {
		return model.PatternMatch{}, false
	}

	monthFirst := first >= 1 && first <= 12 && second >= 1 && second <= 31
	dayFirst := first >= 1 && first <= 31 && second >= 1 && second <= 12
	if !monthFirst && !dayFirst {
		return model.PatternMatch{}, false
	}

	return model.PatternMatch{
		Kind:    model.PatternDate,
		Start:   i,
		End:     i + 8,
		Token:   string(runes[i : i+8]),
		Guesses: yearSpace(year) * 365,
	}, true
}

// digitsValue parses a run of ASCII digits; any non-digit fails.
func digitsValue(runes []rune) (int, bool) {
	v := 0
	for _, r := range runes {
		if r < '0' || r > '9' {
			return 0, false
		}
		v = v*10 + int(r-'0')
	}
	return v, true
}

// yearSpace is the guess estimate for a bare year.
func yearSpace(year int) float64 {
	span := referenceYear - year
	if span < 0 {
		span = -span
	}
	if span < minYearSpace {
		span = minYearSpace
	}
	return float64(span)
}
