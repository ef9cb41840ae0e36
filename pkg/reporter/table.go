package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gocsslint/internal/ui/pretty"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

// TableReporter formats findings as a single aligned table.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter sized to the output terminal.
func NewTableReporter(opts Options) *TableReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, pretty.TerminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, report *runner.Report, filesChecked int) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var findings []runner.Finding
	if report != nil {
		for _, name := range report.Files() {
			findings = append(findings, report.ByFile(name)...)
		}
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(findings))
	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(pretty.ComputeTotals(report, filesChecked)))
	}

	return len(findings), nil
}
