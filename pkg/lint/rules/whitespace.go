package rules

import (
	"strings"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// NoEOLWhitespaceRule disallows end-of-line whitespace.
type NoEOLWhitespaceRule struct {
	lint.BaseRule
}

// NewNoEOLWhitespaceRule creates a new no-eol-whitespace rule.
func NewNoEOLWhitespaceRule() *NoEOLWhitespaceRule {
	return &NoEOLWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"no-eol-whitespace",
			"Disallow end-of-line whitespace",
			[]string{"whitespace"},
		),
	}
}

// AppliesTo excludes Markdown, whose masked lines are blank padding.
func (r *NoEOLWhitespaceRule) AppliesTo(syntax config.Syntax) bool {
	return syntax != config.SyntaxMarkdown
}

// Apply reports every line ending in spaces or tabs.
func (r *NoEOLWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Sheet == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for line := 1; line <= ctx.Sheet.LineCount(); line++ {
		content := ctx.Sheet.LineContent(line)
		trimmed := strings.TrimRight(content, " \t")
		if len(trimmed) == len(content) {
			continue
		}
		pos := css.Position{Line: line, Column: len(trimmed) + 1}
		diags = append(diags, lint.NewDiagnosticAt(r.Name(), pos, "Unexpected whitespace at end of line").
			WithEnd(css.Position{Line: line, Column: len(content)}).
			Build())
	}
	return diags, nil
}

// NoMissingEndOfSourceNewlineRule requires a newline at the end of the source.
type NoMissingEndOfSourceNewlineRule struct {
	lint.BaseRule
}

// NewNoMissingEndOfSourceNewlineRule creates a new no-missing-end-of-source-newline rule.
func NewNoMissingEndOfSourceNewlineRule() *NoMissingEndOfSourceNewlineRule {
	return &NoMissingEndOfSourceNewlineRule{
		BaseRule: lint.NewBaseRule(
			"no-missing-end-of-source-newline",
			"Disallow missing end-of-source newlines",
			[]string{"whitespace"},
		),
	}
}

// AppliesTo excludes Markdown.
func (r *NoMissingEndOfSourceNewlineRule) AppliesTo(syntax config.Syntax) bool {
	return syntax != config.SyntaxMarkdown
}

// Apply reports a non-empty source whose last character is not a newline.
func (r *NoMissingEndOfSourceNewlineRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Sheet == nil || ctx.Sheet.Source == "" || strings.HasSuffix(ctx.Sheet.Source, "\n") {
		return nil, nil
	}

	line := ctx.Sheet.LineCount()
	pos := css.Position{Line: line, Column: max(len(ctx.Sheet.LineContent(line)), 1)}
	return []lint.Diagnostic{
		lint.NewDiagnosticAt(r.Name(), pos, "Unexpected missing end-of-source newline").Build(),
	}, nil
}
