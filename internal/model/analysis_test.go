package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestNewAnalysisCharacterClasses tests character-class flags and counts.
func TestNewAnalysisCharacterClasses(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		candidate string
		upper     int
		lower     int
		digit     int
		symbol    int
	}{
		{"mixed", "Ab1!", 1, 1, 1, 1},
		{"lower only", "abcdef", 0, 6, 0, 0},
		{"digits only", "123456", 0, 0, 6, 0},
		{"empty", "", 0, 0, 0, 0},
		{"symbols and space", "a b!", 0, 2, 0, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := NewAnalysis(tc.candidate)

			if a.Length != len([]rune(tc.candidate)) {
				t.Errorf("Length = %d, expected %d", a.Length, len([]rune(tc.candidate)))
			}
			if a.UpperCount != tc.upper || a.LowerCount != tc.lower ||
				a.DigitCount != tc.digit || a.SymbolCount != tc.symbol {
				t.Errorf("counts = %d/%d/%d/%d, expected %d/%d/%d/%d",
					a.UpperCount, a.LowerCount, a.DigitCount, a.SymbolCount,
					tc.upper, tc.lower, tc.digit, tc.symbol)
			}
			if a.HasUpper != (tc.upper > 0) || a.HasLower != (tc.lower > 0) ||
				a.HasDigit != (tc.digit > 0) || a.HasSymbol != (tc.symbol > 0) {
				t.Error("flags do not agree with counts")
			}
		})
	}
}

// TestBreachResultMarshalJSON tests that a failed lookup renders the count
// as the string "unknown" rather than a number.
func TestBreachResultMarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("known count", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(BreachResult{Exposed: true, Count: 42, CountKnown: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `{"exposed":true,"count":42}` {
			t.Errorf("unexpected JSON: %s", b)
		}
	})

	t.Run("unknown count", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(BreachResult{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(b), `"count":"unknown"`) {
			t.Errorf("expected count marked unknown, got %s", b)
		}
	})
}

// TestBreachResultCountString tests the display form of the count.
func TestBreachResultCountString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		result   BreachResult
		expected string
	}{
		{"unknown", BreachResult{}, "unknown"},
		{"zero", BreachResult{CountKnown: true}, "0"},
		{"positive", BreachResult{Exposed: true, Count: 12345, CountKnown: true}, "12345"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.result.CountString(); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}
