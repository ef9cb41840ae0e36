package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/gocsslint/pkg/lint"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output: "auto" (default), "always", "never".
	Color string

	// ShowContext prints the offending source line under each finding.
	ShowContext bool

	// ShowSummary prints the one-line totals after text and table output.
	ShowSummary bool

	// Compact disables indentation of JSON and SARIF output.
	Compact bool

	// ToolVersion is recorded in SARIF output.
	ToolVersion string

	// Registry supplies rule descriptions for SARIF output. Optional.
	Registry *lint.Registry
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
		ToolVersion: "dev",
	}
}
