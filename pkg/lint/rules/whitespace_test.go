package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
)

func TestNoEOLWhitespaceRule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []css.Position
	}{
		{name: "clean", input: "a {\n  color: red;\n}\n", want: []css.Position{}},
		{name: "trailing spaces", input: "a {  \n  color: red;\t\n}\n", want: []css.Position{{Line: 1, Column: 4}, {Line: 2, Column: 14}}},
		{name: "whitespace-only line", input: "a {\n   \n}\n", want: []css.Position{{Line: 2, Column: 1}}},
		{name: "crlf", input: "a { } \r\n", want: []css.Position{{Line: 1, Column: 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, NewNoEOLWhitespaceRule(), config.SyntaxCSS, tt.input, true, nil)
			assert.Equal(t, tt.want, positions(diags))
		})
	}
}

func TestNoMissingEndOfSourceNewlineRule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []css.Position
	}{
		{name: "newline", input: "a {}\n", want: []css.Position{}},
		{name: "empty", input: "", want: []css.Position{}},
		{name: "missing", input: "a {}\nb {}", want: []css.Position{{Line: 2, Column: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, NewNoMissingEndOfSourceNewlineRule(), config.SyntaxCSS, tt.input, true, nil)
			assert.Equal(t, tt.want, positions(diags))
		})
	}
}

func TestWhitespaceRules_SkipMarkdown(t *testing.T) {
	assert.False(t, NewNoEOLWhitespaceRule().AppliesTo(config.SyntaxMarkdown))
	assert.False(t, NewNoMissingEndOfSourceNewlineRule().AppliesTo(config.SyntaxMarkdown))
	assert.True(t, NewNoEOLWhitespaceRule().AppliesTo(config.SyntaxSCSS))
}
