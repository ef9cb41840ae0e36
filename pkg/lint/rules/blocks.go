package rules

import (
	"fmt"

	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// BlockNoEmptyRule disallows empty blocks.
type BlockNoEmptyRule struct {
	lint.BaseRule
}

// NewBlockNoEmptyRule creates a new block-no-empty rule.
func NewBlockNoEmptyRule() *BlockNoEmptyRule {
	return &BlockNoEmptyRule{
		BaseRule: lint.NewBaseRule(
			"block-no-empty",
			"Disallow empty blocks",
			[]string{"blocks"},
		),
	}
}

// Apply reports blocks without content. Comments count as content unless
// the "ignore" option contains "comments".
func (r *BlockNoEmptyRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	ignoreComments := ctx.HasOption("ignore", "comments")

	var diags []lint.Diagnostic
	for _, block := range ctx.Nodes().Blocks() {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if hasContent(block, ignoreComments) {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(r.Name(), block, "Unexpected empty block").Build())
	}
	return diags, nil
}

func hasContent(block *css.Node, ignoreComments bool) bool {
	for _, child := range block.Children {
		if child.Kind != css.NodeComment || !ignoreComments {
			return true
		}
	}
	return false
}

// MaxNestingDepthRule limits the depth of nested blocks.
type MaxNestingDepthRule struct {
	lint.BaseRule
}

// NewMaxNestingDepthRule creates a new max-nesting-depth rule.
func NewMaxNestingDepthRule() *MaxNestingDepthRule {
	return &MaxNestingDepthRule{
		BaseRule: lint.NewBaseRule(
			"max-nesting-depth",
			"Limit the depth of nested blocks",
			[]string{"blocks", "limits"},
		),
	}
}

// ValidateOption accepts a non-negative integer.
func (r *MaxNestingDepthRule) ValidateOption(primary any) error {
	return validateNonNegativeInt(primary)
}

// Apply reports blocks nested deeper than the configured maximum.
func (r *MaxNestingDepthRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	limit := ctx.PrimaryInt(0)

	var diags []lint.Diagnostic
	for _, block := range ctx.Nodes().Blocks() {
		if block.Depth() <= limit {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(
			r.Name(),
			block,
			fmt.Sprintf("Expected nesting depth to be no more than %d", limit),
		).Build())
	}
	return diags, nil
}
