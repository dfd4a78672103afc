package model

import "testing"

// TestStrengthString tests the String method of Strength.
func TestStrengthString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		strength Strength
		expected string
	}{
		{StrengthWeak, "Weak"},
		{StrengthMedium, "Medium"},
		{StrengthStrong, "Strong"},
		{Strength(999), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.strength.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.strength.String(), tc.expected)
			}
		})
	}
}

// TestStrengthOrdering tests that strength levels are ordered correctly.
// Weak < Medium < Strong
func TestStrengthOrdering(t *testing.T) {
	t.Parallel()

	if StrengthWeak >= StrengthMedium {
		t.Error("expected StrengthWeak < StrengthMedium")
	}
	if StrengthMedium >= StrengthStrong {
		t.Error("expected StrengthMedium < StrengthStrong")
	}
}

// TestStrengthMarshalText tests that Strength marshals as its label.
func TestStrengthMarshalText(t *testing.T) {
	t.Parallel()

	b, err := StrengthMedium.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "Medium" {
		t.Errorf("got %q, expected %q", string(b), "Medium")
	}
}

// TestPatternKindString tests the String method of PatternKind.
func TestPatternKindString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind     PatternKind
		expected string
	}{
		{PatternBruteforce, "bruteforce"},
		{PatternDictionary, "dictionary"},
		{PatternBreachedPassword, "breached-password"},
		{PatternSequence, "sequence"},
		{PatternRepeat, "repeat"},
		{PatternKeyboard, "keyboard-walk"},
		{PatternDate, "date"},
		{PatternKind(999), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.kind.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.kind.String(), tc.expected)
			}
		})
	}
}
