package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocsslint/pkg/config"
)

func TestEsbuildCompatRule(t *testing.T) {
	t.Run("clean css", func(t *testing.T) {
		diags := applyRule(t, NewEsbuildCompatRule(), config.SyntaxCSS, "a {\n  color: red;\n}\n", true, nil)
		assert.Empty(t, diags)
	})

	t.Run("import after rules", func(t *testing.T) {
		diags := applyRule(t, NewEsbuildCompatRule(), config.SyntaxCSS, "a { color: red; }\n@import \"b.css\";\n", true, nil)
		if assert.NotEmpty(t, diags) {
			assert.Equal(t, 2, diags[0].StartLine)
			assert.Equal(t, 1, diags[0].StartColumn)
			assert.Equal(t, "plugin/esbuild-compat", diags[0].RuleName)
		}
	})
}

func TestEsbuildCompatRule_AppliesToPlainCSSOnly(t *testing.T) {
	rule := NewEsbuildCompatRule()
	assert.True(t, rule.AppliesTo(config.SyntaxCSS))
	assert.False(t, rule.AppliesTo(config.SyntaxSCSS))
	assert.False(t, rule.AppliesTo(config.SyntaxMarkdown))
}
