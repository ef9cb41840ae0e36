// Package reporter renders lint reports in the supported output formats.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gocsslint/pkg/runner"
)

// Reporter formats and writes a lint report.
type Reporter interface {
	// Report writes formatted output for report. filesChecked is the number
	// of files that were linted, including those without findings.
	// It returns the number of findings written.
	Report(ctx context.Context, report *runner.Report, filesChecked int) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
