package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding      = 2
	minFileWidth      = 16
	minLocWidth       = 7
	minMessageWidth   = 30
	minRuleWidth      = 8
	heavySeparator    = "="
	lightSeparator    = "-"
	defaultTermWidth  = 100
	truncationMarker  = "…"
	tableColumnsCount = 4
)

type columnWidths struct {
	file, loc, message, rule int
}

func (w columnWidths) total() int {
	return w.file + w.loc + w.message + w.rule + tablePadding*(tableColumnsCount-1)
}

// TableFormatter formats findings as an aligned table grouped by file.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a table formatter limited to termWidth columns.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// FormatTable formats findings. Rows keep report order; a light separator
// is written whenever the file changes.
func (t *TableFormatter) FormatTable(findings []runner.Finding) string {
	if len(findings) == 0 {
		return ""
	}

	widths := t.columnWidths(findings)

	var b strings.Builder
	b.WriteString(t.styles.TableHeader.Render(t.row(widths, "FILE", "LOC", "MESSAGE", "RULE")))
	b.WriteString("\n")
	b.WriteString(t.separator(widths, heavySeparator))

	prev := findings[0].Filename
	for _, f := range findings {
		if f.Filename != prev {
			b.WriteString(t.separator(widths, lightSeparator))
			prev = f.Filename
		}
		line := t.row(widths,
			truncatePath(f.Filename, widths.file),
			fmt.Sprintf("%d:%d", f.Line, f.Column),
			truncate(f.Message, widths.message),
			truncate(f.RuleID, widths.rule),
		)
		b.WriteString(t.styles.SeverityStyle(f.Severity)(line))
		b.WriteString("\n")
	}

	b.WriteString(t.separator(widths, heavySeparator))
	return b.String()
}

func (t *TableFormatter) row(w columnWidths, file, loc, message, rule string) string {
	gap := strings.Repeat(" ", tablePadding)
	return pad(file, w.file) + gap + pad(loc, w.loc) + gap + pad(message, w.message) + gap + rule
}

func (t *TableFormatter) separator(w columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, min(w.total(), t.termWidth))) + "\n"
}

// columnWidths sizes columns to content, shrinking the message column
// first and then the file column to fit the terminal.
func (t *TableFormatter) columnWidths(findings []runner.Finding) columnWidths {
	w := columnWidths{file: minFileWidth, loc: minLocWidth, message: minMessageWidth, rule: minRuleWidth}
	for _, f := range findings {
		w.file = max(w.file, len([]rune(f.Filename)))
		w.loc = max(w.loc, len(fmt.Sprintf("%d:%d", f.Line, f.Column)))
		w.message = max(w.message, len([]rune(f.Message)))
		w.rule = max(w.rule, len(f.RuleID))
	}

	if over := w.total() - t.termWidth; over > 0 {
		shrink := min(over, w.message-minMessageWidth)
		w.message -= shrink
		over -= shrink
		if over > 0 {
			w.file -= min(over, w.file-minFileWidth)
		}
	}
	return w
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// truncate shortens s to maxLen runes, marking the cut at the end.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen || maxLen < 1 {
		return s
	}
	return string(r[:maxLen-1]) + truncationMarker
}

// truncatePath shortens a path from the left so the file name stays visible.
func truncatePath(path string, maxLen int) string {
	r := []rune(path)
	if len(r) <= maxLen || maxLen < 1 {
		return path
	}
	return truncationMarker + string(r[len(r)-maxLen+1:])
}
