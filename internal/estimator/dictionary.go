package estimator

import "github.com/nao1215/passcheck/internal/model"

// Dictionary matching bounds. Tokens shorter than four characters are
// cheaper to bruteforce than to look up, and nothing in the ranked lists
// is longer than maxDictTokenLen.
const (
	minDictTokenLen = 4
	maxDictTokenLen = 24
)

// dictionaryMatches scans every substring of the candidate against the
// ranked frequency lists. A match's guess estimate is the word's rank
// times the case and substitution variant multipliers, so "password"
// costs 1 guess while "Passw0rd" costs a small multiple of that.
func dictionaryMatches(runes []rune) []model.PatternMatch {
	n := len(runes)
	var out []model.PatternMatch

	for i := 0; i < n; i++ {
		for j := i + minDictTokenLen; j <= n && j-i <= maxDictTokenLen; j++ {
			token := runes[i:j]
			for _, v := range tokenVariants(token) {
				rank, kind, ok := lookupRanked(v.text)
				if !ok {
					continue
				}
				guesses := float64(rank) * caseMultiplier(token) * substitutionMultiplier(v.subs)
				out = append(out, model.PatternMatch{
					Kind:    kind,
					Start:   i,
					End:     j,
					Token:   string(token),
					Guesses: guesses,
				})
			}
		}
	}
	return out
}

// lookupRanked finds a token in the ranked lists. The breached-password
// list is authoritative when a token appears in both lists with the same
// rank order; otherwise the lower rank (fewer guesses) wins because an
// optimal attacker tries the more frequent source first.
func lookupRanked(token string) (int, model.PatternKind, bool) {
	pwRank, inPasswords := breachedPasswords[token]
	wordRank, inWords := englishWords[token]

	switch {
	case inPasswords && (!inWords || pwRank <= wordRank):
		return pwRank, model.PatternBreachedPassword, true
	case inWords:
		return wordRank, model.PatternDictionary, true
	default:
		return 0, model.PatternBruteforce, false
	}
}
