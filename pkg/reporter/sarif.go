package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

const (
	toolName           = "gocsslint"
	toolInformationURI = "https://github.com/yaklabco/gocsslint"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool              SARIFTool               `json:"tool"`
	AutomationDetails *SARIFAutomationDetails `json:"automationDetails,omitempty"`
	Results           []SARIFResult           `json:"results"`
}

// SARIFAutomationDetails identifies the run.
type SARIFAutomationDetails struct {
	ID string `json:"id"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a rule.
type SARIFRule struct {
	ID               string                `json:"id"`
	ShortDescription *SARIFMultiformatText `json:"shortDescription,omitempty"`
	Properties       map[string]any        `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// SARIFReporter formats reports as SARIF.
type SARIFReporter struct {
	opts  Options
	out   io.Writer
	runID func() string
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts, out: opts.Writer, runID: uuid.NewString}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, report *runner.Report, _ int) (int, error) {
	output := r.buildOutput(report)

	encoder := json.NewEncoder(r.out)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(report *runner.Report) *SARIFOutput {
	version := r.opts.ToolVersion
	if version == "" {
		version = "dev"
	}

	run := SARIFRun{
		Tool: SARIFTool{Driver: SARIFDriver{
			Name:           toolName,
			Version:        version,
			InformationURI: toolInformationURI,
			Rules:          make([]SARIFRule, 0),
		}},
		AutomationDetails: &SARIFAutomationDetails{ID: toolName + "/" + r.runID()},
		Results:           make([]SARIFResult, 0),
	}

	if report != nil {
		ruleIndex := make(map[string]int)
		for _, name := range report.Files() {
			for _, f := range report.ByFile(name) {
				idx, ok := ruleIndex[f.RuleID]
				if !ok {
					idx = len(run.Tool.Driver.Rules)
					ruleIndex[f.RuleID] = idx
					run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, r.describeRule(f))
				}

				run.Results = append(run.Results, SARIFResult{
					RuleID:    f.RuleID,
					RuleIndex: idx,
					Level:     severityToSARIFLevel(f.Severity),
					Message:   SARIFMessage{Text: f.Message},
					Locations: []SARIFLocation{{
						PhysicalLocation: SARIFPhysicalLocation{
							ArtifactLocation: SARIFArtifactLocation{URI: f.Filename},
							Region:           SARIFRegion{StartLine: f.Line, StartColumn: f.Column},
						},
					}},
				})
			}
		}
	}

	return &SARIFOutput{Schema: sarifSchemaURI, Version: sarifVersion, Runs: []SARIFRun{run}}
}

func (r *SARIFReporter) describeRule(f runner.Finding) SARIFRule {
	rule := SARIFRule{ID: f.RuleID, Properties: map[string]any{"ruleProc": f.RuleProc}}
	if r.opts.Registry != nil {
		if registered, ok := r.opts.Registry.Get(f.RuleID); ok {
			rule.ShortDescription = &SARIFMultiformatText{Text: registered.Description()}
			rule.Properties["tags"] = registered.Tags()
		}
	}
	return rule
}

// severityToSARIFLevel converts a severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	if severity == config.SeverityWarning {
		return "warning"
	}
	return "error"
}
