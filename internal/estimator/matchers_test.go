package estimator

import (
	"testing"

	"github.com/nao1215/passcheck/internal/model"
)

// hasMatch reports whether a match of the given kind spans [start, end).
func hasMatch(matches []model.PatternMatch, kind model.PatternKind, start, end int) bool {
	for _, m := range matches {
		if m.Kind == kind && m.Start == start && m.End == end {
			return true
		}
	}
	return false
}

func TestDictionaryMatches(t *testing.T) {
	t.Parallel()

	t.Run("finds embedded breached password", func(t *testing.T) {
		t.Parallel()

		got := dictionaryMatches([]rune("xxpasswordyy"))
		if !hasMatch(got, model.PatternBreachedPassword, 2, 10) {
			t.Errorf("no breached-password match for embedded token: %+v", got)
		}
	})

	t.Run("single leet substitution still matches", func(t *testing.T) {
		t.Parallel()

		got := dictionaryMatches([]rune("passw0rd"))
		if !hasMatch(got, model.PatternBreachedPassword, 0, 8) {
			t.Errorf("no match for single-substitution token: %+v", got)
		}
	})

	t.Run("heavily substituted token does not match", func(t *testing.T) {
		t.Parallel()

		for _, m := range dictionaryMatches([]rune("p@ssw0rd")) {
			if m.Start == 0 && m.End == 8 {
				t.Errorf("unexpected full-token match %+v for two substitutions", m)
			}
		}
	})

	t.Run("capitalization raises the guess estimate", func(t *testing.T) {
		t.Parallel()

		fullSpan := func(matches []model.PatternMatch) float64 {
			for _, m := range matches {
				if m.Start == 0 && m.End == 8 {
					return m.Guesses
				}
			}
			t.Fatalf("no full-span match in %+v", matches)
			return 0
		}
		lower := fullSpan(dictionaryMatches([]rune("password")))
		caps := fullSpan(dictionaryMatches([]rune("PaSsWoRd")))
		if caps <= lower {
			t.Errorf("scattered caps guesses %v, want > lowercase %v", caps, lower)
		}
	})

	t.Run("short tokens are ignored", func(t *testing.T) {
		t.Parallel()

		if got := dictionaryMatches([]rune("cat")); len(got) != 0 {
			t.Errorf("matches for 3-char token: %+v", got)
		}
	})
}

func TestSequenceMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		start int
		end   int
	}{
		{name: "ascending digits", input: "xx1234", start: 2, end: 6},
		{name: "descending digits", input: "9876xx", start: 0, end: 4},
		{name: "ascending letters", input: "abcd", start: 0, end: 4},
		{name: "case-folded letters", input: "aBcD", start: 0, end: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sequenceMatches([]rune(tt.input))
			if !hasMatch(got, model.PatternSequence, tt.start, tt.end) {
				t.Errorf("sequenceMatches(%q) = %+v, want span [%d,%d)", tt.input, got, tt.start, tt.end)
			}
		})
	}

	t.Run("runs never cross between letters and digits", func(t *testing.T) {
		t.Parallel()

		// '9' and 'a' are not a step even though adjacent runs exist.
		got := sequenceMatches([]rune("89ab"))
		for _, m := range got {
			if m.Start < 2 && m.End > 2 {
				t.Errorf("sequence crosses class boundary: %+v", m)
			}
		}
	})

	t.Run("two characters are not a sequence", func(t *testing.T) {
		t.Parallel()

		if got := sequenceMatches([]rune("ab")); len(got) != 0 {
			t.Errorf("matches for 2-char run: %+v", got)
		}
	})
}

func TestRepeatMatches(t *testing.T) {
	t.Parallel()

	t.Run("single character repeated", func(t *testing.T) {
		t.Parallel()

		got := repeatMatches([]rune("aaaa"))
		if !hasMatch(got, model.PatternRepeat, 0, 4) {
			t.Errorf("no maximal repeat match: %+v", got)
		}
	})

	t.Run("multi character unit", func(t *testing.T) {
		t.Parallel()

		got := repeatMatches([]rune("abcabcabc"))
		if !hasMatch(got, model.PatternRepeat, 0, 9) {
			t.Errorf("no maximal repeat match: %+v", got)
		}
	})

	t.Run("guess estimate is constant", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"aaa", "aaaaaaaaaa", "xyxyxyxy"} {
			for _, m := range repeatMatches([]rune(input)) {
				if m.Guesses != repeatGuesses {
					t.Errorf("repeatMatches(%q) guesses = %v, want %v", input, m.Guesses, float64(repeatGuesses))
				}
			}
		}
	})

	t.Run("double character is not a repeat", func(t *testing.T) {
		t.Parallel()

		if got := repeatMatches([]rune("aa")); len(got) != 0 {
			t.Errorf("matches for 2-char span: %+v", got)
		}
	})
}

func TestKeyboardMatches(t *testing.T) {
	t.Parallel()

	t.Run("row walk", func(t *testing.T) {
		t.Parallel()

		got := keyboardMatches([]rune("qwerty"))
		if !hasMatch(got, model.PatternKeyboard, 0, 6) {
			t.Errorf("no walk match for home-row run: %+v", got)
		}
	})

	t.Run("shifted characters walk the same keys", func(t *testing.T) {
		t.Parallel()

		got := keyboardMatches([]rune("!qaz"))
		if !hasMatch(got, model.PatternKeyboard, 0, 4) {
			t.Errorf("no walk match for shifted column run: %+v", got)
		}
	})

	t.Run("turns raise the guess estimate", func(t *testing.T) {
		t.Parallel()

		straight := keyboardWalkGuesses([]rune("qwert"))
		snaking := keyboardWalkGuesses([]rune("qwsxc"))
		if snaking <= straight {
			t.Errorf("snaking walk guesses %v, want > straight %v", snaking, straight)
		}
	})

	t.Run("non adjacent keys break the walk", func(t *testing.T) {
		t.Parallel()

		got := keyboardMatches([]rune("qp"))
		if len(got) != 0 {
			t.Errorf("matches for non-adjacent keys: %+v", got)
		}
	})
}

func TestDateMatches(t *testing.T) {
	t.Parallel()

	t.Run("bare year", func(t *testing.T) {
		t.Parallel()

		got := dateMatches([]rune("xx1987"))
		if !hasMatch(got, model.PatternDate, 2, 6) {
			t.Errorf("no year match: %+v", got)
		}
	})

	t.Run("recent year hits the floor", func(t *testing.T) {
		t.Parallel()

		got := dateMatches([]rune("2024"))
		if len(got) == 0 {
			t.Fatal("no year match for 2024")
		}
		if got[0].Guesses != minYearSpace {
			t.Errorf("Guesses = %v, want floor %v", got[0].Guesses, float64(minYearSpace))
		}
	})

	t.Run("full date costs year space times days", func(t *testing.T) {
		t.Parallel()

		got := dateMatches([]rune("06151990"))
		var full *model.PatternMatch
		for i := range got {
			if got[i].End-got[i].Start == 8 {
				full = &got[i]
			}
		}
		if full == nil {
			t.Fatalf("no full-date match: %+v", got)
		}
		if want := yearSpace(1990) * 365; full.Guesses != want {
			t.Errorf("Guesses = %v, want %v", full.Guesses, want)
		}
	})

	t.Run("out of range year is ignored", func(t *testing.T) {
		t.Parallel()

		got := dateMatches([]rune("1123"))
		for _, m := range got {
			if m.Token == "1123" {
				t.Errorf("unexpected match for implausible year: %+v", m)
			}
		}
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("prefers a cheap match over bruteforce", func(t *testing.T) {
		t.Parallel()

		runes := []rune("password")
		match := model.PatternMatch{
			Kind: model.PatternBreachedPassword, Start: 0, End: 8, Token: "password", Guesses: 1,
		}
		total, decomposition := search(runes, []model.PatternMatch{match})
		if total != 1 {
			t.Errorf("total = %v, want 1", total)
		}
		if len(decomposition) != 1 || decomposition[0].Kind != model.PatternBreachedPassword {
			t.Errorf("decomposition = %+v, want single dictionary match", decomposition)
		}
	})

	t.Run("merges trailing bruteforce characters", func(t *testing.T) {
		t.Parallel()

		runes := []rune("passwordZk")
		match := model.PatternMatch{
			Kind: model.PatternBreachedPassword, Start: 0, End: 8, Token: "password", Guesses: 1,
		}
		total, decomposition := search(runes, []model.PatternMatch{match})
		if want := float64(letterSpace * letterSpace); total != want {
			t.Errorf("total = %v, want %v", total, want)
		}
		if len(decomposition) != 2 {
			t.Fatalf("decomposition = %+v, want 2 tokens", decomposition)
		}
		tail := decomposition[1]
		if tail.Kind != model.PatternBruteforce || tail.Start != 8 || tail.End != 10 {
			t.Errorf("tail = %+v, want bruteforce [8,10)", tail)
		}
	})

	t.Run("ignores an expensive match", func(t *testing.T) {
		t.Parallel()

		runes := []rune("ab")
		match := model.PatternMatch{
			Kind: model.PatternDictionary, Start: 0, End: 2, Token: "ab", Guesses: 1e12,
		}
		total, _ := search(runes, []model.PatternMatch{match})
		if want := float64(letterSpace * letterSpace); total != want {
			t.Errorf("total = %v, want bruteforce %v", total, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		total, decomposition := search(nil, nil)
		if total != 1 || decomposition != nil {
			t.Errorf("search(nil) = %v, %+v, want 1, nil", total, decomposition)
		}
	})
}
