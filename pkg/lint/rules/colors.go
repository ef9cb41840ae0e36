package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

const (
	caseLower = "lower"
	caseUpper = "upper"
)

// hexWord is a "#..." word of a declaration value.
type hexWord struct {
	decl *css.Node
	word lint.ValueWord
}

// hexWords returns every word starting with "#" in declaration values.
func hexWords(ctx *lint.RuleContext) []hexWord {
	var out []hexWord
	for _, decl := range ctx.Nodes().Declarations() {
		for _, word := range lint.ValueWords(decl.Value) {
			if strings.HasPrefix(word.Text, "#") && !word.IsFunction {
				out = append(out, hexWord{decl: decl, word: word})
			}
		}
	}
	return out
}

// isValidHex reports whether s (including "#") is a 3, 4, 6 or 8 digit hex color.
func isValidHex(s string) bool {
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for idx := 0; idx < len(digits); idx++ {
		c := digits[idx]
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return false
		}
	}
	return true
}

func wordDiagnostic(ctx *lint.RuleContext, rule string, hw hexWord, message string) lint.Diagnostic {
	start := lint.ValuePosition(ctx.Sheet, hw.decl, hw.word.Offset)
	end := lint.ValuePosition(ctx.Sheet, hw.decl, hw.word.Offset+len(hw.word.Text)-1)
	return lint.NewDiagnosticAt(rule, start, message).WithEnd(end).Build()
}

// ColorNoInvalidHexRule disallows invalid hex colors.
type ColorNoInvalidHexRule struct {
	lint.BaseRule
}

// NewColorNoInvalidHexRule creates a new color-no-invalid-hex rule.
func NewColorNoInvalidHexRule() *ColorNoInvalidHexRule {
	return &ColorNoInvalidHexRule{
		BaseRule: lint.NewBaseRule(
			"color-no-invalid-hex",
			"Disallow invalid hex colors",
			[]string{"color"},
		),
	}
}

// Apply reports hex colors with the wrong length or non-hex digits.
func (r *ColorNoInvalidHexRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, hw := range hexWords(ctx) {
		if isValidHex(hw.word.Text) {
			continue
		}
		diags = append(diags, wordDiagnostic(ctx, r.Name(), hw,
			fmt.Sprintf("Unexpected invalid hex color %q", hw.word.Text)))
	}
	return diags, nil
}

// ColorHexCaseRule requires lower or upper case hex colors.
type ColorHexCaseRule struct {
	lint.BaseRule
}

// NewColorHexCaseRule creates a new color-hex-case rule.
func NewColorHexCaseRule() *ColorHexCaseRule {
	return &ColorHexCaseRule{
		BaseRule: lint.NewBaseRule(
			"color-hex-case",
			"Require lower or upper case hex colors",
			[]string{"color", "style"},
		),
	}
}

// ValidateOption accepts "lower" or "upper".
func (r *ColorHexCaseRule) ValidateOption(primary any) error {
	return validateOneOf(primary, caseLower, caseUpper)
}

// Apply reports valid hex colors written in the other case.
func (r *ColorHexCaseRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	style := ctx.PrimaryString(caseLower)

	var diags []lint.Diagnostic
	for _, hw := range hexWords(ctx) {
		if !isValidHex(hw.word.Text) {
			continue
		}
		expected := strings.ToLower(hw.word.Text)
		if style == caseUpper {
			expected = strings.ToUpper(hw.word.Text)
		}
		if expected == hw.word.Text {
			continue
		}
		diags = append(diags, wordDiagnostic(ctx, r.Name(), hw,
			fmt.Sprintf("Expected %q to be %q", hw.word.Text, expected)))
	}
	return diags, nil
}
