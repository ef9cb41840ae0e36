package rules

import "github.com/yaklabco/gocsslint/pkg/lint"

// CommentNoEmptyRule disallows empty comments.
type CommentNoEmptyRule struct {
	lint.BaseRule
}

// NewCommentNoEmptyRule creates a new comment-no-empty rule.
func NewCommentNoEmptyRule() *CommentNoEmptyRule {
	return &CommentNoEmptyRule{
		BaseRule: lint.NewBaseRule(
			"comment-no-empty",
			"Disallow empty comments",
			[]string{"comments"},
		),
	}
}

// Apply reports block comments with only whitespace. SCSS line comments are ignored.
func (r *CommentNoEmptyRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, comment := range ctx.Nodes().Comments() {
		if comment.Inline || comment.Text != "" {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(r.Name(), comment, "Unexpected empty comment").Build())
	}
	return diags, nil
}
