package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/passcheck/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables the pattern decomposition section. Pattern spans
	// are shown by position and kind only; matched tokens never appear
	// in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with the pattern decomposition.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs one analysis in human-readable format.
func (w *SimpleWriter) Write(analysis *model.Analysis) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, analysis)
	w.writeScore(&sb, analysis)
	w.writeBreach(&sb, analysis)
	w.writeWarnings(&sb, analysis)
	if w.verbose {
		w.writePatterns(&sb, analysis)
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteAll outputs a batch of analyses separated by rules.
func (w *SimpleWriter) WriteAll(analyses []*model.Analysis) (int, error) {
	var total int
	for i, analysis := range analyses {
		n, err := fmt.Fprintf(w.output, "--- candidate %d of %d ---\n", i+1, len(analyses))
		total += n
		if err != nil {
			return total, err
		}
		n, err = w.Write(analysis)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// writeHeader writes the composition summary.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, analysis *model.Analysis) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                  PASSWORD ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Length:     %d characters\n", analysis.Length))
	sb.WriteString(fmt.Sprintf("Classes:    %s\n", classSummary(analysis)))
	sb.WriteString(fmt.Sprintf("Analyzed:   %s\n", analysis.AnalyzedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString("\n")
}

// classSummary renders which character classes are present.
func classSummary(analysis *model.Analysis) string {
	var classes []string
	if analysis.HasLower {
		classes = append(classes, fmt.Sprintf("lower(%d)", analysis.LowerCount))
	}
	if analysis.HasUpper {
		classes = append(classes, fmt.Sprintf("upper(%d)", analysis.UpperCount))
	}
	if analysis.HasDigit {
		classes = append(classes, fmt.Sprintf("digit(%d)", analysis.DigitCount))
	}
	if analysis.HasSymbol {
		classes = append(classes, fmt.Sprintf("symbol(%d)", analysis.SymbolCount))
	}
	if len(classes) == 0 {
		return "none"
	}
	return strings.Join(classes, ", ")
}

// writeScore writes the strength verdict section.
func (w *SimpleWriter) writeScore(sb *strings.Builder, analysis *model.Analysis) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("STRENGTH\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	score := analysis.Score
	sb.WriteString(fmt.Sprintf("  Verdict:     %s\n", strings.ToUpper(score.Strength.String())))
	sb.WriteString(fmt.Sprintf("  Guesses:     %s\n", FormatGuesses(score.Guesses)))
	sb.WriteString(fmt.Sprintf("  Crack time:  %s\n", FormatCrackTime(score.CrackTimeSeconds)))
	sb.WriteString(fmt.Sprintf("  Entropy:     %.1f bits (pool), %.1f bits (shannon)\n",
		score.EntropyBits, score.ShannonBits))
	sb.WriteString("\n")
}

// writeBreach writes the breach-corpus section. An unavailable oracle is
// reported as unknown, never as clean.
func (w *SimpleWriter) writeBreach(sb *strings.Builder, analysis *model.Analysis) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("BREACH EXPOSURE\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	breach := analysis.Breach
	switch {
	case breach.Exposed:
		sb.WriteString(fmt.Sprintf("  [!] Found in known breaches %s times. Do not use it.\n", breach.CountString()))
	case breach.CountKnown:
		sb.WriteString("  [+] Not found in known breaches.\n")
	default:
		sb.WriteString("  [?] Breach status unknown (check unavailable or disabled).\n")
	}
	sb.WriteString("\n")
}

// writeWarnings writes the warning list.
func (w *SimpleWriter) writeWarnings(sb *strings.Builder, analysis *model.Analysis) {
	if len(analysis.Warnings) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("WARNINGS\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	for _, warning := range analysis.Warnings {
		sb.WriteString(fmt.Sprintf("  * %s\n", warning))
	}
	sb.WriteString("\n")
}

// writePatterns writes the winning decomposition by position and kind.
func (w *SimpleWriter) writePatterns(sb *strings.Builder, analysis *model.Analysis) {
	if len(analysis.Score.Matches) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("PATTERN DECOMPOSITION\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	for _, m := range analysis.Score.Matches {
		sb.WriteString(fmt.Sprintf("  [%2d-%2d] %-18s %s guesses\n",
			m.Start, m.End, m.Kind.String(), FormatGuesses(m.Guesses)))
	}
	sb.WriteString("\n")
}
