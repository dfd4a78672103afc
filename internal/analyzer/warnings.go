package analyzer

import (
	"fmt"

	"github.com/nao1215/passcheck/internal/model"
)

// minRecommendedLength is the length below which a warning is emitted
// regardless of composition.
const minRecommendedLength = 8

// patternWarnings maps each non-bruteforce pattern kind to its
// human-readable warning. One warning per kind, however many matches of
// that kind the decomposition contains.
var patternWarnings = map[model.PatternKind]string{
	model.PatternBreachedPassword: "built on a commonly breached password",
	model.PatternDictionary:       "built on a common word or name",
	model.PatternSequence:         "contains sequential characters (abc, 123)",
	model.PatternRepeat:           "contains repeated characters or sequences",
	model.PatternKeyboard:         "contains a keyboard walk (qwerty, 1qaz)",
	model.PatternDate:             "contains a date or year",
}

// warningOrder fixes the output order so reports are stable.
var warningOrder = []model.PatternKind{
	model.PatternBreachedPassword,
	model.PatternDictionary,
	model.PatternSequence,
	model.PatternRepeat,
	model.PatternKeyboard,
	model.PatternDate,
}

// warningsFor derives human-readable warnings from a completed analysis:
// one per pattern kind in the winning decomposition, plus length and
// breach-exposure notes.
func warningsFor(a *model.Analysis) []string {
	var warnings []string

	if a.Length > 0 && a.Length < minRecommendedLength {
		warnings = append(warnings, fmt.Sprintf("shorter than %d characters", minRecommendedLength))
	}

	seen := make(map[model.PatternKind]bool)
	for _, m := range a.Score.Matches {
		seen[m.Kind] = true
	}
	for _, kind := range warningOrder {
		if seen[kind] {
			warnings = append(warnings, patternWarnings[kind])
		}
	}

	if a.Breach.Exposed {
		warnings = append(warnings, fmt.Sprintf(
			"appeared %s times in known breaches; do not use it", a.Breach.CountString()))
	}

	return warnings
}
