package estimator

import "math"

// poolEntropyBits is the classic pool-size entropy estimate:
// length * log2(pool), where the pool is the union of the character
// classes present in the candidate. It is reported alongside the
// pattern-aware guess count for comparison; it systematically
// overestimates structured passwords, which is exactly the gap the
// pattern decomposition closes.
func poolEntropyBits(candidate string) float64 {
	runes := []rune(candidate)
	if len(runes) == 0 {
		return 0
	}

	var lower, upper, digit, symbol bool
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	pool := 0
	if lower {
		pool += letterSpace
	}
	if upper {
		pool += letterSpace
	}
	if digit {
		pool += digitSpace
	}
	if symbol {
		pool += symbolSpace
	}
	if pool == 0 {
		return 0
	}
	return float64(len(runes)) * math.Log2(float64(pool))
}

// shannonEntropyBits is the empirical per-character entropy of the
// candidate times its length. It measures character diversity within the
// string itself: "aaaaaaaa" scores zero regardless of length.
func shannonEntropyBits(candidate string) float64 {
	runes := []rune(candidate)
	n := len(runes)
	if n == 0 {
		return 0
	}

	freq := make(map[rune]int, n)
	for _, r := range runes {
		freq[r]++
	}

	var perChar float64
	for _, count := range freq {
		p := float64(count) / float64(n)
		perChar -= p * math.Log2(p)
	}
	return perChar * float64(n)
}
