package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
)

func TestCommentNoEmptyRule(t *testing.T) {
	diags := applyRule(t, NewCommentNoEmptyRule(), config.SyntaxSCSS,
		"/**/\n/*  */\n/* text */\n//\na {}\n", true, nil)

	assert.Equal(t, []css.Position{{Line: 1, Column: 1}, {Line: 2, Column: 1}}, positions(diags))
	assert.Equal(t, []string{"Unexpected empty comment", "Unexpected empty comment"}, messages(diags))
}

func TestDeclarationBlockNoDuplicatePropertiesRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		secondary map[string]any
		want      []string
	}{
		{name: "unique", input: "a { color: red; background: blue; }", want: []string{}},
		{name: "duplicate", input: "a { color: red; color: blue; }", want: []string{`Unexpected duplicate "color"`}},
		{name: "case insensitive", input: "a { color: red; COLOR: blue; }", want: []string{`Unexpected duplicate "COLOR"`}},
		{name: "separate blocks", input: "a { color: red; } b { color: red; }", want: []string{}},
		{name: "nested block", input: "a { color: red; b { color: red; } }", want: []string{}},
		{name: "scss variables", input: "$a: 1; $a: 2;", want: []string{}},
		{
			name:      "consecutive different values ignored",
			input:     "a { display: flex; display: grid; }",
			secondary: map[string]any{"ignore": []any{"consecutive-duplicates-with-different-values"}},
			want:      []string{},
		},
		{
			name:      "non consecutive still reported",
			input:     "a { display: flex; color: red; display: grid; }",
			secondary: map[string]any{"ignore": []any{"consecutive-duplicates-with-different-values"}},
			want:      []string{`Unexpected duplicate "display"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, NewDeclarationBlockNoDuplicatePropertiesRule(), config.SyntaxSCSS, tt.input, true, tt.secondary)
			assert.Equal(t, tt.want, messages(diags))
		})
	}
}

func TestDeclarationNoImportantRule(t *testing.T) {
	diags := applyRule(t, NewDeclarationNoImportantRule(), config.SyntaxCSS,
		"a {\n  color: red !important;\n  top: 0;\n}\n", true, nil)

	assert.Equal(t, []string{"Unexpected !important"}, messages(diags))
	assert.Equal(t, []css.Position{{Line: 2, Column: 3}}, positions(diags))
}
