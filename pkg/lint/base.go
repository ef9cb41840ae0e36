package lint

import (
	"fmt"

	"github.com/yaklabco/gocsslint/pkg/config"
)

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid name collisions with interface methods.
type BaseRule struct {
	name string
	desc string
	tags []string
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(name, desc string, tags []string) BaseRule {
	return BaseRule{
		name: name,
		desc: desc,
		tags: tags,
	}
}

// Name returns the rule name.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a short description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// AppliesTo returns true for every syntax.
// Override this method for dialect-specific rules.
func (r *BaseRule) AppliesTo(_ config.Syntax) bool {
	return true
}

// ValidateOption accepts only true, the option value of rules without a primary option.
func (r *BaseRule) ValidateOption(primary any) error {
	if b, ok := primary.(bool); ok && b {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidOption, primary)
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}
