package estimator

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalize prepares a candidate for matching. NFKC folding maps
// fullwidth and other compatibility forms onto plain ASCII so that
// "ｐａｓｓｗｏｒｄ" matches the same dictionary entries as "password".
// The returned runes are what all matchers and the position DP operate on.
func normalize(candidate string) []rune {
	return []rune(norm.NFKC.String(candidate))
}

// leetTable maps common substitution characters back to the letter they
// stand in for. The table follows the substitutions attackers actually
// try; '1' is ambiguous between 'l' and 'i', so tokenVariants produces
// both readings.
var leetTable = map[rune]rune{
	'4': 'a',
	'@': 'a',
	'3': 'e',
	'!': 'i',
	'1': 'l',
	'0': 'o',
	'5': 's',
	'$': 's',
	'7': 't',
	'9': 'g',
	'8': 'b',
	'2': 'z',
}

// variant is one normalized reading of a token.
type variant struct {
	// text is the lowercased, possibly de-substituted token.
	text string

	// subs is how many characters were mapped through the leet table.
	subs int
}

// maxSubstitutions limits how many substituted characters a token may
// contain and still be treated as a dictionary word. One substituted
// character catches the common "passw0rd" style; allowing more makes the
// matcher claim heavily decorated strings that are genuinely harder to
// guess than their base word.
const maxSubstitutions = 1

// tokenVariants returns the candidate readings of a token for dictionary
// lookup: the plain lowercased form, and de-substituted forms when the
// token carries at most maxSubstitutions leet characters.
func tokenVariants(token []rune) []variant {
	lower := strings.ToLower(string(token))
	variants := []variant{{text: lower, subs: 0}}

	subs := 0
	for _, r := range lower {
		if _, ok := leetTable[r]; ok {
			subs++
		}
	}
	if subs == 0 || subs > maxSubstitutions {
		return variants
	}

	deleet := []rune(lower)
	for i, r := range deleet {
		if repl, ok := leetTable[r]; ok {
			deleet[i] = repl
		}
	}
	variants = append(variants, variant{text: string(deleet), subs: subs})

	// '1' reads as both 'l' and 'i'; emit the alternate reading too.
	if strings.ContainsRune(lower, '1') {
		alt := []rune(lower)
		for i, r := range alt {
			if r == '1' {
				alt[i] = 'i'
			} else if repl, ok := leetTable[r]; ok {
				alt[i] = repl
			}
		}
		variants = append(variants, variant{text: string(alt), subs: subs})
	}
	return variants
}

// caseMultiplier estimates how many capitalization variants an attacker
// tries before the token's actual one. All-lowercase costs nothing extra;
// the common first-letter or all-caps forms double the guesses; scattered
// capitals multiply per uppercase letter, capped so the multiplier stays
// a correction factor rather than the dominant term.
func caseMultiplier(token []rune) float64 {
	upper := 0
	letters := 0
	for _, r := range token {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	switch {
	case upper == 0:
		return 1
	case upper == letters, upper == 1 && unicode.IsUpper(token[0]):
		return 2
	default:
		mult := 1.0
		for i := 0; i < upper && i < 5; i++ {
			mult *= 2
		}
		return mult
	}
}

// substitutionMultiplier is the extra guess factor for a token matched
// through the leet table.
func substitutionMultiplier(subs int) float64 {
	if subs == 0 {
		return 1
	}
	return 2
}
