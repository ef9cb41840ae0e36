package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// DollarVariablePatternRule requires SCSS $-variable names to match a pattern.
type DollarVariablePatternRule struct {
	lint.BaseRule
}

// NewDollarVariablePatternRule creates a new scss/dollar-variable-pattern rule.
func NewDollarVariablePatternRule() *DollarVariablePatternRule {
	return &DollarVariablePatternRule{
		BaseRule: lint.NewBaseRule(
			"scss/dollar-variable-pattern",
			"Specify a pattern for $-variables",
			[]string{"scss", "naming"},
		),
	}
}

// AppliesTo limits the rule to SCSS sources, including Markdown code blocks.
func (r *DollarVariablePatternRule) AppliesTo(syntax config.Syntax) bool {
	return syntax == config.SyntaxSCSS || syntax == config.SyntaxMarkdown
}

// ValidateOption accepts a string holding a valid regular expression.
func (r *DollarVariablePatternRule) ValidateOption(primary any) error {
	pattern, ok := primary.(string)
	if !ok {
		return fmt.Errorf("%w: %v", lint.ErrInvalidOption, primary)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("%w: %w", lint.ErrInvalidOption, err)
	}
	return nil
}

// Apply reports variable declarations whose name (without "$") does not match.
// The "ignore" option accepts "local" and "global".
func (r *DollarVariablePatternRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	pattern, err := regexp.Compile(ctx.PrimaryString(""))
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	ignoreLocal := ctx.HasOption("ignore", "local")
	ignoreGlobal := ctx.HasOption("ignore", "global")

	var diags []lint.Diagnostic
	for _, decl := range ctx.Nodes().Declarations() {
		name, isVariable := strings.CutPrefix(decl.Prop, "$")
		if !isVariable {
			continue
		}
		global := decl.Parent == nil || decl.Parent.Kind == css.NodeRoot
		if (global && ignoreGlobal) || (!global && ignoreLocal) {
			continue
		}
		if pattern.MatchString(name) {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(
			r.Name(),
			decl,
			fmt.Sprintf("Expected $%s to match specified pattern", name),
		).Build())
	}
	return diags, nil
}
