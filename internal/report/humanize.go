package report

import "fmt"

// Time unit boundaries in seconds.
const (
	minute = 60
	hour   = 3600
	day    = 86400
	year   = 31536000
)

// FormatCrackTime converts a crack-time estimate into a human-readable
// duration. Precision is deliberately coarse: the input is an estimate,
// and "3.2 years" reads as more certain than the number deserves once it
// crosses into decades.
func FormatCrackTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.1f minutes", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%.1f hours", seconds/hour)
	case seconds < year:
		return fmt.Sprintf("%.1f days", seconds/day)
	case seconds < 100*year:
		return fmt.Sprintf("%.1f years", seconds/year)
	case seconds < 1e3*year:
		return fmt.Sprintf("%.0f years", seconds/year)
	case seconds < 1e6*year:
		return fmt.Sprintf("%.0f thousand years", seconds/year/1e3)
	case seconds < 1e9*year:
		return fmt.Sprintf("%.0f million years", seconds/year/1e6)
	case seconds < 1e12*year:
		return fmt.Sprintf("%.0f billion years", seconds/year/1e9)
	default:
		return "more than a trillion years"
	}
}

// FormatGuesses renders a guess count compactly. Small counts print
// exactly; large ones switch to scientific notation, since "1.04e+23"
// communicates scale better than 24 digits would.
func FormatGuesses(guesses float64) string {
	if guesses < 1e6 {
		return fmt.Sprintf("%.0f", guesses)
	}
	return fmt.Sprintf("%.2e", guesses)
}
