package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/lint"
)

// SelectorMaxIDRule limits the number of ID selectors in a selector.
type SelectorMaxIDRule struct {
	lint.BaseRule
}

// NewSelectorMaxIDRule creates a new selector-max-id rule.
func NewSelectorMaxIDRule() *SelectorMaxIDRule {
	return &SelectorMaxIDRule{
		BaseRule: lint.NewBaseRule(
			"selector-max-id",
			"Limit the number of ID selectors in a selector",
			[]string{"selectors", "limits"},
		),
	}
}

// ValidateOption accepts a non-negative integer.
func (r *SelectorMaxIDRule) ValidateOption(primary any) error {
	return validateNonNegativeInt(primary)
}

// Apply reports each selector of a selector list with too many ID selectors.
func (r *SelectorMaxIDRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	limit := ctx.PrimaryInt(0)
	noun := "ID selectors"
	if limit == 1 {
		noun = "ID selector"
	}

	var diags []lint.Diagnostic
	for _, rule := range ctx.Nodes().Rules() {
		for _, selector := range splitSelectorList(rule.Selector) {
			if countIDs(selector) <= limit {
				continue
			}
			diags = append(diags, lint.NewDiagnostic(
				r.Name(),
				rule,
				fmt.Sprintf("Expected %q to have no more than %d %s", selector, limit, noun),
			).Build())
		}
	}
	return diags, nil
}

// splitSelectorList splits a selector list at top-level commas.
func splitSelectorList(selector string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for idx := 0; idx < len(selector); idx++ {
		switch selector[idx] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(selector[start:idx]))
				start = idx + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(selector[start:]))
}

// countIDs counts "#name" ID selectors outside attribute brackets and interpolation.
func countIDs(selector string) int {
	count := 0
	brackets := 0
	for idx := 0; idx < len(selector); idx++ {
		c := selector[idx]
		switch {
		case c == '\\':
			idx++
		case c == '[':
			brackets++
		case c == ']':
			brackets--
		case c == '#' && brackets == 0 && idx+1 < len(selector):
			next := selector[idx+1]
			if next == '{' {
				idx = skipBraces(selector, idx+1)
				continue
			}
			if isIdentStart(next) {
				count++
			}
		}
	}
	return count
}

func skipBraces(s string, open int) int {
	depth := 0
	for idx := open; idx < len(s); idx++ {
		switch s[idx] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return idx
			}
		}
	}
	return len(s)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '-' || c == '\\' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
