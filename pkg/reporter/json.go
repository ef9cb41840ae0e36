package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

// jsonSchemaVersion is the version of the JSON output layout.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult holds the findings of one file.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Findings []JSONFinding `json:"findings"`
}

// JSONFinding is a single finding.
type JSONFinding struct {
	Ctx      string `json:"ctx"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	RuleID   string `json:"ruleId"`
	RuleProc string `json:"ruleProc"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int `json:"filesChecked"`
	FilesWithProblems int `json:"filesWithProblems"`
	Problems          int `json:"problems"`
	Errors            int `json:"errors"`
	Warnings          int `json:"warnings"`
}

// JSONReporter formats reports as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, report *runner.Report, filesChecked int) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(report, filesChecked)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Problems, nil
}

func buildJSONOutput(report *runner.Report, filesChecked int) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{FilesChecked: filesChecked},
	}
	if report == nil {
		return output
	}

	for _, name := range report.Files() {
		file := JSONFileResult{Path: name, Findings: make([]JSONFinding, 0)}
		for _, f := range report.ByFile(name) {
			file.Findings = append(file.Findings, JSONFinding{
				Ctx:      f.Ctx,
				Line:     f.Line,
				Column:   f.Column,
				Severity: string(f.Severity),
				Message:  f.Message,
				RuleID:   f.RuleID,
				RuleProc: f.RuleProc,
			})
			if f.Severity == config.SeverityWarning {
				output.Summary.Warnings++
			} else {
				output.Summary.Errors++
			}
		}
		output.Summary.Problems += len(file.Findings)
		output.Files = append(output.Files, file)
	}
	output.Summary.FilesWithProblems = len(output.Files)

	return output
}
