package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
)

func TestColorNoInvalidHexRule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "valid short", input: "a { color: #fff; }", want: []string{}},
		{name: "valid with alpha", input: "a { color: #ffffff80; }", want: []string{}},
		{name: "invalid digits", input: "a { color: #ggg; }", want: []string{`Unexpected invalid hex color "#ggg"`}},
		{name: "invalid length", input: "a { border: 1px solid #12345; }", want: []string{`Unexpected invalid hex color "#12345"`}},
		{name: "inside url ignored", input: "a { background: url(#ggg); }", want: []string{}},
		{name: "interpolation ignored", input: "a { color: #{$c}; }", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, NewColorNoInvalidHexRule(), config.SyntaxSCSS, tt.input, true, nil)
			assert.Equal(t, tt.want, messages(diags))
		})
	}
}

func TestColorNoInvalidHexRule_Position(t *testing.T) {
	diags := applyRule(t, NewColorNoInvalidHexRule(), config.SyntaxCSS, "a {\n  color: red #abcde;\n}\n", true, nil)
	assert.Equal(t, []css.Position{{Line: 2, Column: 14}}, positions(diags))
	assert.Equal(t, 19, diags[0].EndColumn)
}

func TestColorHexCaseRule(t *testing.T) {
	tests := []struct {
		name   string
		option string
		input  string
		want   []string
	}{
		{name: "lower ok", option: "lower", input: "a { color: #abc; }", want: []string{}},
		{name: "lower violation", option: "lower", input: "a { color: #ABC; }", want: []string{`Expected "#ABC" to be "#abc"`}},
		{name: "upper violation", option: "upper", input: "a { color: #aBc; }", want: []string{`Expected "#aBc" to be "#ABC"`}},
		{name: "digits only", option: "upper", input: "a { color: #123; }", want: []string{}},
		{name: "invalid hex skipped", option: "lower", input: "a { color: #GGG; }", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, NewColorHexCaseRule(), config.SyntaxCSS, tt.input, tt.option, nil)
			assert.Equal(t, tt.want, messages(diags))
		})
	}
}

func TestColorHexCaseRule_ValidateOption(t *testing.T) {
	rule := NewColorHexCaseRule()
	assert.NoError(t, rule.ValidateOption("lower"))
	assert.NoError(t, rule.ValidateOption("upper"))
	assert.Error(t, rule.ValidateOption("mixed"))
	assert.Error(t, rule.ValidateOption(true))
}
