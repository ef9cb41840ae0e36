package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

const summaryDividerWidth = 40

// Totals aggregates a report for summary output.
type Totals struct {
	Problems     int
	Errors       int
	Warnings     int
	Files        int
	FilesChecked int
}

// ComputeTotals counts findings in report. checked is the number of files linted.
func ComputeTotals(report *runner.Report, checked int) Totals {
	totals := Totals{FilesChecked: checked}
	if report == nil {
		return totals
	}
	totals.Errors, totals.Warnings = report.Counts()
	totals.Problems = totals.Errors + totals.Warnings
	totals.Files = len(report.Files())
	return totals
}

// FormatSummaryOneLine formats totals as a single line.
// Example: "3 problems (2 errors, 1 warnings) in 2 files".
func (s *Styles) FormatSummaryOneLine(t Totals) string {
	if t.Problems == 0 {
		return s.Success.Render("No problems found") +
			s.Dim.Render(fmt.Sprintf(" (%s checked)", plural(t.FilesChecked, "file", "files"))) + "\n"
	}

	return fmt.Sprintf("%s (%s, %s) in %s\n",
		plural(t.Problems, "problem", "problems"),
		s.Error.Render(fmt.Sprintf("%d errors", t.Errors)),
		s.Warning.Render(fmt.Sprintf("%d warnings", t.Warnings)),
		plural(t.Files, "file", "files"),
	)
}

// FormatSummary formats totals as a block.
func (s *Styles) FormatSummary(t Totals) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:       " + strconv.Itoa(t.FilesChecked) + "\n")
	if t.Files > 0 {
		builder.WriteString("  Files with problems: " + s.Failure.Render(strconv.Itoa(t.Files)) + "\n")
	}
	builder.WriteString("  Problems:            " + strconv.Itoa(t.Problems) + "\n")
	if t.Errors > 0 {
		builder.WriteString("    Errors:            " + s.Error.Render(strconv.Itoa(t.Errors)) + "\n")
	}
	if t.Warnings > 0 {
		builder.WriteString("    Warnings:          " + s.Warning.Render(strconv.Itoa(t.Warnings)) + "\n")
	}
	builder.WriteString("\n")

	switch {
	case t.Errors > 0:
		builder.WriteString(s.Failure.Render("Lint failed with errors"))
	case t.Warnings > 0:
		builder.WriteString(s.Warning.Render("Lint failed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// SeverityStyle returns the row style for a severity.
func (s *Styles) SeverityStyle(sev config.Severity) func(...string) string {
	if sev == config.SeverityWarning {
		return s.TableWarnRow.Render
	}
	return s.TableErrorRow.Render
}
