package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/passcheck/internal/model"
)

// MarkdownWriter outputs analyses in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs one analysis in Markdown format.
func (w *MarkdownWriter) Write(analysis *model.Analysis) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Analysis")
	md.PlainText("")
	w.writeSummary(md, analysis)
	w.writeBreach(md, analysis)
	w.writeComposition(md, analysis)
	w.writeWarnings(md, analysis)
	w.writePatterns(md, analysis)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteAll outputs a batch of analyses as one document with a section
// per candidate.
func (w *MarkdownWriter) WriteAll(analyses []*model.Analysis) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Analysis Report")
	md.PlainText("")
	md.PlainTextf("%d candidates analyzed.", len(analyses))
	md.PlainText("")

	for i, analysis := range analyses {
		md.H2(fmt.Sprintf("Candidate %d", i+1))
		md.PlainText("")
		w.writeSummary(md, analysis)
		w.writeBreach(md, analysis)
		w.writeWarnings(md, analysis)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeSummary writes the strength verdict table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, analysis *model.Analysis) {
	score := analysis.Score
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Strength", strengthBadge(score.Strength)},
			{"Length", strconv.Itoa(analysis.Length)},
			{"Estimated guesses", FormatGuesses(score.Guesses)},
			{"Crack time (offline)", FormatCrackTime(score.CrackTimeSeconds)},
			{"Pool entropy", fmt.Sprintf("%.1f bits", score.EntropyBits)},
			{"Shannon entropy", fmt.Sprintf("%.1f bits", score.ShannonBits)},
			{"Analyzed", analysis.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// strengthBadge renders the verdict with a colored indicator.
func strengthBadge(s model.Strength) string {
	switch s {
	case model.StrengthWeak:
		return "🔴 Weak"
	case model.StrengthMedium:
		return "🟡 Medium"
	case model.StrengthStrong:
		return "🟢 Strong"
	default:
		return s.String()
	}
}

// writeBreach writes an alert reflecting the breach signal. An
// unavailable oracle is surfaced as unknown, never as clean.
func (w *MarkdownWriter) writeBreach(md *markdown.Markdown, analysis *model.Analysis) {
	breach := analysis.Breach
	switch {
	case breach.Exposed:
		md.Cautionf(
			"This password appeared %s times in known data breaches. Do not use it.",
			breach.CountString(),
		)
	case breach.CountKnown:
		md.Tip("This password was not found in known data breaches.")
	default:
		md.Warningf("Breach status unknown: the breach check was unavailable or disabled.")
	}
	md.PlainText("")
}

// writeComposition writes a pie chart of the character-class breakdown.
func (w *MarkdownWriter) writeComposition(md *markdown.Markdown, analysis *model.Analysis) {
	if analysis.Length == 0 {
		return
	}

	md.H2("Composition")
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Character Class Distribution"),
		piechart.WithShowData(true),
	)

	if analysis.LowerCount > 0 {
		chart.LabelAndIntValue("Lowercase", uint64(analysis.LowerCount))
	}
	if analysis.UpperCount > 0 {
		chart.LabelAndIntValue("Uppercase", uint64(analysis.UpperCount))
	}
	if analysis.DigitCount > 0 {
		chart.LabelAndIntValue("Digits", uint64(analysis.DigitCount))
	}
	if analysis.SymbolCount > 0 {
		chart.LabelAndIntValue("Symbols", uint64(analysis.SymbolCount))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeWarnings writes the warning list.
func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, analysis *model.Analysis) {
	if len(analysis.Warnings) == 0 {
		return
	}

	md.H2("Warnings")
	md.PlainText("")
	md.BulletList(analysis.Warnings...)
	md.PlainText("")
}

// writePatterns writes the winning decomposition by position and kind.
// Matched tokens never appear in the output.
func (w *MarkdownWriter) writePatterns(md *markdown.Markdown, analysis *model.Analysis) {
	matches := analysis.Score.Matches
	if len(matches) == 0 {
		return
	}

	md.H2("Pattern Decomposition")
	md.PlainText("")

	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = []string{
			fmt.Sprintf("%d-%d", m.Start, m.End),
			m.Kind.String(),
			FormatGuesses(m.Guesses),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Span", "Pattern", "Guesses"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by passcheck*")
}
