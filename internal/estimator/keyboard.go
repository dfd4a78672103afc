package estimator

import (
	"math"
	"unicode"

	"github.com/nao1215/passcheck/internal/model"
)

// US QWERTY layout used for adjacency. Each string is one physical row;
// column index is the key position within the row. The layout is the only
// keyboard modeled: it is what the overwhelming majority of breached
// keyboard-walk passwords were typed on.
var qwertyRows = []string{
	"`1234567890-=",
	"qwertyuiop[]\\",
	"asdfghjkl;'",
	"zxcvbnm,./",
}

// shiftedKeys maps shifted characters to the physical key that produces
// them, so "1qaz" and "!qaz" walk the same keys.
var shiftedKeys = map[rune]rune{
	'~': '`', '!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0', '_': '-',
	'+': '=', '{': '[', '}': ']', '|': '\\', ':': ';', '"': '\'',
	'<': ',', '>': '.', '?': '/',
}

// keyPosition is a key's physical location on the layout.
type keyPosition struct {
	row, col int
}

// keyboardPositions maps each unshifted key to its position.
// Built once at init; read-only afterwards.
var keyboardPositions map[rune]keyPosition

// keyboardAvgDegree is the average number of neighbors per key, used as
// the branching factor in walk guess estimates.
var keyboardAvgDegree float64

func init() {
	keyboardPositions = make(map[rune]keyPosition)
	for r, row := range qwertyRows {
		for c, key := range row {
			keyboardPositions[key] = keyPosition{row: r, col: c}
		}
	}

	edges := 0
	for _, p := range keyboardPositions {
		for _, q := range keyboardPositions {
			if p != q && keysAdjacent(p, q) {
				edges++
			}
		}
	}
	keyboardAvgDegree = float64(edges) / float64(len(keyboardPositions))
}

// keysAdjacent reports whether two key positions touch on the physical
// layout. Rows are staggered: the row below sits roughly half a key to
// the left, so a key touches the two keys below it at col and col-1, and
// the two above it at col and col+1.
func keysAdjacent(a, b keyPosition) bool {
	dr := b.row - a.row
	dc := b.col - a.col
	switch dr {
	case 0:
		return dc == 1 || dc == -1
	case 1:
		return dc == 0 || dc == -1
	case -1:
		return dc == 0 || dc == 1
	default:
		return false
	}
}

// keyboardKey resolves a candidate rune to its physical key, folding
// case and shifted symbols. Returns false for keys off the layout.
func keyboardKey(r rune) (keyPosition, bool) {
	r = unicode.ToLower(r)
	if base, ok := shiftedKeys[r]; ok {
		r = base
	}
	p, ok := keyboardPositions[r]
	return p, ok
}

// minKeyboardWalkLen is the shortest run treated as a keyboard walk.
const minKeyboardWalkLen = 3

// keyboardMatches finds runs of physically adjacent keys. Every sub-run
// of length >= minKeyboardWalkLen is emitted with a guess estimate that
// grows with the number of direction changes: straight walks like
// "qwerty" are the first thing attackers try, while walks that snake
// across the board take more enumeration.
func keyboardMatches(runes []rune) []model.PatternMatch {
	n := len(runes)
	var out []model.PatternMatch

	i := 0
	for i < n-1 {
		pi, ok := keyboardKey(runes[i])
		if !ok {
			i++
			continue
		}
		pj, ok := keyboardKey(runes[i+1])
		if !ok || !keysAdjacent(pi, pj) {
			i++
			continue
		}

		// Extend the maximal adjacent run.
		j := i + 1
		prev := pj
		for j < n-1 {
			next, ok := keyboardKey(runes[j+1])
			if !ok || !keysAdjacent(prev, next) {
				break
			}
			prev = next
			j++
		}

		if j-i+1 >= minKeyboardWalkLen {
			out = append(out, keyboardSubRuns(runes, i, j+1)...)
		}
		i = j
	}
	return out
}

// keyboardSubRuns emits matches for every window of the maximal run,
// recomputing the turn count per window.
func keyboardSubRuns(runes []rune, start, end int) []model.PatternMatch {
	var out []model.PatternMatch
	for i := start; i+minKeyboardWalkLen <= end; i++ {
		for j := i + minKeyboardWalkLen; j <= end; j++ {
			out = append(out, model.PatternMatch{
				Kind:    model.PatternKeyboard,
				Start:   i,
				End:     j,
				Token:   string(runes[i:j]),
				Guesses: keyboardWalkGuesses(runes[i:j]),
			})
		}
	}
	return out
}

// keyboardWalkGuesses estimates the attempts needed to produce a walk.
// The attacker picks a starting key, then a direction for each straight
// segment; the estimate is therefore the key count times the branching
// factor raised to the number of segments (one more than the number of
// direction changes).
func keyboardWalkGuesses(walk []rune) float64 {
	turns := 1
	var prevDelta keyPosition
	prev, _ := keyboardKey(walk[0])
	for i := 1; i < len(walk); i++ {
		cur, _ := keyboardKey(walk[i])
		delta := keyPosition{row: cur.row - prev.row, col: cur.col - prev.col}
		if i > 1 && delta != prevDelta {
			turns++
		}
		prevDelta = delta
		prev = cur
	}
	return float64(len(keyboardPositions)) * math.Pow(keyboardAvgDegree, float64(turns))
}
