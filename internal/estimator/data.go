package estimator

import (
	_ "embed"
	"strings"
)

// Ranked frequency lists embedded at build time.
// passwords.txt is ordered by observed frequency in public breach
// corpora; words.txt is ordered by English word frequency with common
// given names appended. Line number (1-based) is the rank, and rank is
// the guess count for a match before variant multipliers.
//
//go:embed data/passwords.txt
var breachedPasswordsRaw string

//go:embed data/words.txt
var englishWordsRaw string

// rankedList maps a lowercased token to its 1-based frequency rank.
type rankedList map[string]int

// Process-wide immutable dictionaries, built once at init and never
// mutated afterwards. Concurrent readers need no locking.
var (
	breachedPasswords rankedList
	englishWords      rankedList
)

func init() {
	breachedPasswords = parseRankedList(breachedPasswordsRaw)
	englishWords = parseRankedList(englishWordsRaw)
}

// parseRankedList builds a rank lookup from newline-separated entries.
// Entries are lowercased; when a token appears twice the first (lowest,
// most frequent) rank wins.
func parseRankedList(raw string) rankedList {
	lines := strings.Split(raw, "\n")
	list := make(rankedList, len(lines))
	rank := 0
	for _, line := range lines {
		token := strings.ToLower(strings.TrimSpace(line))
		if token == "" {
			continue
		}
		rank++
		if _, ok := list[token]; ok {
			continue
		}
		list[token] = rank
	}
	return list
}
