// Package generator produces cryptographically secure random passwords.
//
// All randomness comes from crypto/rand. Characters are drawn by
// rejection sampling so every alphabet character is exactly equally
// likely; math/rand and modulo reduction are never used.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/nao1215/passcheck/internal/model"
)

// Length bounds for generated passwords. Anything below eight
// characters is guessable regardless of alphabet; anything above 128 is
// past the point where added length changes the security picture and
// mostly breaks downstream forms.
const (
	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16
)

// Count bounds for batch generation.
const (
	MinCount     = 1
	MaxCount     = 100
	DefaultCount = 5
)

// Character classes available to the generator. The symbol set is fixed
// to ASCII punctuation so generated passwords survive copy-paste into
// systems with restrictive charsets.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	// ErrInvalidLength is returned when the requested length is outside
	// [MinLength, MaxLength].
	ErrInvalidLength = errors.New("password length out of range")

	// ErrEmptyAlphabet is returned when every character class is
	// disabled.
	ErrEmptyAlphabet = errors.New("no character classes enabled")

	// ErrInvalidCount is returned when a batch size is outside
	// [MinCount, MaxCount].
	ErrInvalidCount = errors.New("password count out of range")
)

// Classes selects which character classes participate in generation.
// The zero value enables nothing; use DefaultClasses for the usual
// all-classes alphabet.
type Classes struct {
	// Lowercase includes a-z.
	Lowercase bool

	// Uppercase includes A-Z.
	Uppercase bool

	// Digits includes 0-9.
	Digits bool

	// Symbols includes ASCII punctuation.
	Symbols bool
}

// DefaultClasses enables every character class.
func DefaultClasses() Classes {
	return Classes{Lowercase: true, Uppercase: true, Digits: true, Symbols: true}
}

// alphabet builds the combined character pool for the selection.
func (c Classes) alphabet() []byte {
	var pool []byte
	if c.Lowercase {
		pool = append(pool, lowercaseChars...)
	}
	if c.Uppercase {
		pool = append(pool, uppercaseChars...)
	}
	if c.Digits {
		pool = append(pool, digitChars...)
	}
	if c.Symbols {
		pool = append(pool, symbolChars...)
	}
	return pool
}

// Generate produces one random password of the given length from the
// enabled classes.
func Generate(length int, classes Classes) (model.GeneratedPassword, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidLength, length, MinLength, MaxLength)
	}
	pool := classes.alphabet()
	if len(pool) == 0 {
		return "", ErrEmptyAlphabet
	}

	out := make([]byte, length)
	for i := range out {
		idx, err := uniformIndex(len(pool))
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = pool[idx]
	}
	return model.GeneratedPassword(out), nil
}

// GenerateN produces count independent passwords of the same length and
// class selection.
func GenerateN(count, length int, classes Classes) ([]model.GeneratedPassword, error) {
	if count < MinCount || count > MaxCount {
		return nil, fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidCount, count, MinCount, MaxCount)
	}

	passwords := make([]model.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		p, err := Generate(length, classes)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, p)
	}
	return passwords, nil
}

// uniformIndex returns a uniformly random index in [0, n) by rejection
// sampling single bytes. Bytes at or above the largest multiple of n
// below 256 are rejected, which removes the modulo bias a plain
// remainder would introduce.
func uniformIndex(n int) (int, error) {
	limit := 256 - 256%n
	var buf [1]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}
		if int(buf[0]) < limit {
			return int(buf[0]) % n, nil
		}
	}
}
