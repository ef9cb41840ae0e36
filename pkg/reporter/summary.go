package reporter

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/gocsslint/internal/ui/pretty"
	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

// Table layout constants for summary output.
const (
	summaryTableWidth = 60
	ruleColWidth      = 40
	numColWidth       = 8
	maxRuleNameLength = 38
)

// RuleCount aggregates findings of one rule.
type RuleCount struct {
	RuleID   string
	Problems int
	Errors   int
	Warnings int
}

// CountByRule aggregates findings per rule, most frequent first, ties by rule id.
func CountByRule(findings []runner.Finding) []RuleCount {
	index := make(map[string]int)
	var counts []RuleCount
	for _, f := range findings {
		i, ok := index[f.RuleID]
		if !ok {
			i = len(counts)
			index[f.RuleID] = i
			counts = append(counts, RuleCount{RuleID: f.RuleID})
		}
		counts[i].Problems++
		if f.Severity == config.SeverityWarning {
			counts[i].Warnings++
		} else {
			counts[i].Errors++
		}
	}

	slices.SortFunc(counts, func(a, b RuleCount) int {
		if c := cmp.Compare(b.Problems, a.Problems); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})
	return counts
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryReporter formats per-rule counts followed by the totals line.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, report *runner.Report, filesChecked int) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	totals := pretty.ComputeTotals(report, filesChecked)
	if totals.Problems == 0 {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(totals))
		return 0, nil
	}

	var findings []runner.Finding
	for _, name := range report.Files() {
		findings = append(findings, report.ByFile(name)...)
	}
	r.renderRuleTable(CountByRule(findings))

	fmt.Fprintln(r.bw)
	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(totals))

	return totals.Problems, nil
}

func (r *SummaryReporter) renderRuleTable(counts []RuleCount) {
	separator := r.styles.TableSeparator.Render(strings.Repeat("─", summaryTableWidth))

	fmt.Fprintln(r.bw, r.styles.Bold.Render("Rules Summary"))
	fmt.Fprintln(r.bw, separator)
	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth-2)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth-2)),
		r.styles.TableHeader.Render(padLeft("Warnings", numColWidth)),
	)
	fmt.Fprintln(r.bw, separator)

	for _, rc := range counts {
		name := rc.RuleID
		if len(name) > maxRuleNameLength {
			name = name[:maxRuleNameLength] + "…"
		}

		padded := padRight(name, ruleColWidth)
		switch {
		case rc.Errors > 0:
			padded = r.styles.TableErrorRow.Render(padded)
		case rc.Warnings > 0:
			padded = r.styles.TableWarnRow.Render(padded)
		}

		fmt.Fprintf(r.bw, "%s %s %s %s\n",
			padded,
			padLeft(strconv.Itoa(rc.Problems), numColWidth-2),
			padLeft(strconv.Itoa(rc.Errors), numColWidth-2),
			padLeft(strconv.Itoa(rc.Warnings), numColWidth),
		)
	}
}
