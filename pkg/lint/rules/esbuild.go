package rules

import (
	"github.com/evanw/esbuild/pkg/api"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// EsbuildCompatRule relays the errors and warnings of the esbuild CSS parser.
type EsbuildCompatRule struct {
	lint.BaseRule
}

// NewEsbuildCompatRule creates a new plugin/esbuild-compat rule.
func NewEsbuildCompatRule() *EsbuildCompatRule {
	return &EsbuildCompatRule{
		BaseRule: lint.NewBaseRule(
			"plugin/esbuild-compat",
			"Report problems found by the esbuild CSS parser",
			[]string{"plugin", "compat"},
		),
	}
}

// AppliesTo limits the rule to plain CSS.
func (r *EsbuildCompatRule) AppliesTo(syntax config.Syntax) bool {
	return syntax == config.SyntaxCSS
}

// Apply transforms the source with esbuild and reports every message it logs.
func (r *EsbuildCompatRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Sheet == nil {
		return nil, nil
	}

	result := api.Transform(ctx.Sheet.Source, api.TransformOptions{
		Loader:     api.LoaderCSS,
		Sourcefile: ctx.Sheet.Path,
		LogLevel:   api.LogLevelSilent,
	})

	messages := make([]api.Message, 0, len(result.Errors)+len(result.Warnings))
	messages = append(messages, result.Errors...)
	messages = append(messages, result.Warnings...)

	diags := make([]lint.Diagnostic, 0, len(messages))
	for _, msg := range messages {
		pos := css.Position{Line: 1, Column: 1}
		if loc := msg.Location; loc != nil {
			// esbuild columns are 0-based byte offsets.
			pos = css.Position{Line: max(loc.Line, 1), Column: loc.Column + 1}
		}
		diags = append(diags, lint.NewDiagnosticAt(r.Name(), pos, msg.Text).Build())
	}
	return diags, nil
}
