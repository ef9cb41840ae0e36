package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// ignoreConsecutiveDifferentValues keeps fallback pairs such as
// "display: flex; display: grid;" legal.
const ignoreConsecutiveDifferentValues = "consecutive-duplicates-with-different-values"

// DeclarationBlockNoDuplicatePropertiesRule disallows duplicate properties within a block.
type DeclarationBlockNoDuplicatePropertiesRule struct {
	lint.BaseRule
}

// NewDeclarationBlockNoDuplicatePropertiesRule creates a new
// declaration-block-no-duplicate-properties rule.
func NewDeclarationBlockNoDuplicatePropertiesRule() *DeclarationBlockNoDuplicatePropertiesRule {
	return &DeclarationBlockNoDuplicatePropertiesRule{
		BaseRule: lint.NewBaseRule(
			"declaration-block-no-duplicate-properties",
			"Disallow duplicate properties within declaration blocks",
			[]string{"declarations"},
		),
	}
}

// Apply reports every repeated property after its first occurrence in a block.
// SCSS variables are skipped since reassignment is legal.
func (r *DeclarationBlockNoDuplicatePropertiesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	ignoreConsecutive := ctx.HasOption("ignore", ignoreConsecutiveDifferentValues)

	var diags []lint.Diagnostic
	err := css.Walk(ctx.Root, func(node *css.Node) error {
		if !node.IsContainer() {
			return nil
		}
		if ctx.Cancelled() {
			return cancelled(ctx)
		}

		seen := make(map[string]bool)
		var previous *css.Node
		for _, decl := range lint.DirectDeclarations(node) {
			if strings.HasPrefix(decl.Prop, "$") {
				continue
			}
			key := decl.Prop
			if !lint.IsCustomProperty(key) {
				key = strings.ToLower(key)
			}

			consecutive := previous != nil && previous.Prop == decl.Prop && previous.Value != decl.Value
			switch {
			case !seen[key]:
				seen[key] = true
			case ignoreConsecutive && consecutive:
			default:
				diags = append(diags, lint.NewDiagnostic(
					r.Name(),
					decl,
					fmt.Sprintf("Unexpected duplicate %q", decl.Prop),
				).Build())
			}
			previous = decl
		}
		return nil
	})
	return diags, err
}

// DeclarationNoImportantRule disallows !important within declarations.
type DeclarationNoImportantRule struct {
	lint.BaseRule
}

// NewDeclarationNoImportantRule creates a new declaration-no-important rule.
func NewDeclarationNoImportantRule() *DeclarationNoImportantRule {
	return &DeclarationNoImportantRule{
		BaseRule: lint.NewBaseRule(
			"declaration-no-important",
			"Disallow !important within declarations",
			[]string{"declarations"},
		),
	}
}

// Apply reports declarations flagged !important.
func (r *DeclarationNoImportantRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, decl := range ctx.Nodes().Declarations() {
		if !decl.Important {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(r.Name(), decl, "Unexpected !important").Build())
	}
	return diags, nil
}
