package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gocsslint/internal/ui/pretty"
	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

// TextReporter formats findings grouped by file, optionally with source context.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, report *runner.Report, filesChecked int) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var total int
	if report != nil {
		for _, name := range report.Files() {
			findings := report.ByFile(name)
			total += len(findings)
			r.writeFile(report, name, findings)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(pretty.ComputeTotals(report, filesChecked)))
	}

	return total, nil
}

func (r *TextReporter) writeFile(report *runner.Report, name string, findings []runner.Finding) {
	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(name, len(findings)))

	var sheet *css.Stylesheet
	if r.opts.ShowContext {
		if src, ok := report.Source(name); ok {
			sheet = &css.Stylesheet{Path: name, Source: src, Lines: css.BuildLines(src)}
		}
	}

	width := pretty.LocationWidth(findings)
	for _, f := range findings {
		fmt.Fprint(r.bw, r.styles.FormatFinding(f, width))
		if sheet != nil {
			if line := sheet.LineContent(f.Line); line != "" {
				fmt.Fprint(r.bw, r.styles.FormatSourceContext(f.Line, line, f.Column))
			}
		}
	}

	fmt.Fprintln(r.bw)
}
