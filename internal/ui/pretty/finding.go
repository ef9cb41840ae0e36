package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

// FormatFinding formats a single finding for grouped terminal output.
// locWidth pads the "line:col" column so messages line up within a file.
func (s *Styles) FormatFinding(f runner.Finding, locWidth int) string {
	loc := fmt.Sprintf("%d:%d", f.Line, f.Column)
	if pad := locWidth - len(loc); pad > 0 {
		loc += strings.Repeat(" ", pad)
	}

	return fmt.Sprintf("  %s  %s  %s  %s\n",
		s.Location.Render(loc),
		s.FormatSeverity(f.Severity),
		s.Message.Render(f.Message),
		s.RuleID.Render(f.RuleID),
	)
}

// LocationWidth returns the widest "line:col" among findings.
func LocationWidth(findings []runner.Finding) int {
	width := 0
	for _, f := range findings {
		width = max(width, len(strconv.Itoa(f.Line))+1+len(strconv.Itoa(f.Column)))
	}
	return width
}

// FormatSeverity returns a styled, fixed-width severity label.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityError, "":
		return s.Error.Render("error  ")
	default:
		return string(sev)
	}
}

// tabWidth is the number of spaces a tab expands to in source context.
const tabWidth = 4

// FormatSourceContext formats a source line with its line number and a caret
// under column. Tabs are expanded so the caret lines up.
func (s *Styles) FormatSourceContext(lineNum int, line string, column int) string {
	var builder strings.Builder

	gutter := fmt.Sprintf("    %4d | ", lineNum)
	display := strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	builder.WriteString(s.LineNumber.Render(gutter) + s.SourceLine.Render(display) + "\n")

	if column > 0 {
		builder.WriteString(strings.Repeat(" ", len(gutter)) + caretPadding(line, column) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

func caretPadding(line string, column int) string {
	prefix := line
	if column-1 < len(prefix) {
		prefix = prefix[:column-1]
	}

	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", tabWidth))
		} else {
			b.WriteByte(' ')
		}
	}
	if extra := column - 1 - len(prefix); extra > 0 {
		b.WriteString(strings.Repeat(" ", extra))
	}
	return b.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	if count > 0 {
		header += s.Dim.Render(" (" + plural(count, "problem", "problems") + ")")
	}
	return header
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
