package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/passcheck/internal/model"
)

// prefixLen is the number of hex digest characters disclosed to a
// corpus. Five characters identify one of 16^5 buckets, each holding
// hundreds of suffixes, which is what makes the protocol k-anonymous.
const prefixLen = 5

// Corpus answers k-anonymity range queries. Implementations receive only
// a five-character digest prefix and return every known suffix in that
// bucket with its observed breach count.
//
// Design decision: The interface takes the prefix rather than the
// candidate or full digest because:
//  1. Implementations physically cannot leak what they never see
//  2. The remote and local corpora share one query shape
//  3. Tests can stub a bucket without hashing anything
type Corpus interface {
	// LookupRange returns the suffix-to-count bucket for a digest
	// prefix. Suffix keys are uppercase 35-character hex strings. An
	// empty map means no known breach in the bucket.
	LookupRange(ctx context.Context, prefix string) (map[string]int, error)
}

// Check hashes the candidate and queries the corpus for its digest
// bucket. The comparison against returned suffixes happens locally.
//
// A lookup failure returns the error alongside a result whose CountKnown
// is false; callers decide whether to degrade or abort, but must never
// present the failure as "not breached".
func Check(ctx context.Context, corpus Corpus, candidate string) (model.BreachResult, error) {
	sum := sha1.Sum([]byte(candidate))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := digest[:prefixLen], digest[prefixLen:]

	bucket, err := corpus.LookupRange(ctx, prefix)
	if err != nil {
		return model.BreachResult{}, fmt.Errorf("range lookup failed: %w", err)
	}

	for got, count := range bucket {
		if strings.EqualFold(got, suffix) {
			return model.BreachResult{Exposed: true, Count: count, CountKnown: true}, nil
		}
	}
	return model.BreachResult{Exposed: false, Count: 0, CountKnown: true}, nil
}

// validPrefix reports whether s is exactly prefixLen hex characters.
func validPrefix(s string) bool {
	if len(s) != prefixLen {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// parseRangeResponse reads SUFFIX:COUNT lines into a bucket map. An
// empty body parses to an empty bucket, which is a definitive "no
// breach" answer, not an error. Blank lines are tolerated; anything
// else malformed fails the whole response, since a partially parsed
// bucket could silently miss the suffix being checked.
func parseRangeResponse(r io.Reader) (map[string]int, error) {
	bucket := make(map[string]int)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		suffix, countStr, ok := strings.Cut(line, ":")
		if !ok || len(suffix) != 40-prefixLen {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRange, redactLine(line))
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("%w: bad count", ErrMalformedRange)
		}
		bucket[strings.ToUpper(suffix)] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read range response: %w", err)
	}
	return bucket, nil
}

// redactLine trims a malformed line for error messages so that errors
// never carry whole response bodies.
func redactLine(line string) string {
	const max = 16
	if len(line) > max {
		return line[:max] + "..."
	}
	return line
}
