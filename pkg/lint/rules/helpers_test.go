package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// applyRule parses source and runs a single rule against it.
func applyRule(
	t *testing.T,
	rule lint.Rule,
	syntax config.Syntax,
	source string,
	primary any,
	secondary map[string]any,
) []lint.Diagnostic {
	t.Helper()

	sheet, err := css.Parse("test."+string(syntax), source, syntax)
	require.NoError(t, err)
	require.NoError(t, rule.ValidateOption(primary))

	diags, err := rule.Apply(lint.NewRuleContext(context.Background(), sheet, primary, secondary))
	require.NoError(t, err)
	return diags
}

// messages returns the diagnostic messages in order.
func messages(diags []lint.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

// positions returns "line:column" pairs of the diagnostics.
func positions(diags []lint.Diagnostic) []css.Position {
	out := make([]css.Position, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Position())
	}
	return out
}
