package rules

import (
	"fmt"
	"slices"

	"github.com/yaklabco/gocsslint/pkg/lint"
)

// validateNonNegativeInt accepts integer options >= 0.
func validateNonNegativeInt(primary any) error {
	n, ok := lint.AsInt(primary)
	if !ok || n < 0 {
		return fmt.Errorf("%w: %v", lint.ErrInvalidOption, primary)
	}
	return nil
}

// validateOneOf accepts one of the listed string options.
func validateOneOf(primary any, allowed ...string) error {
	if s, ok := primary.(string); ok && slices.Contains(allowed, s) {
		return nil
	}
	return fmt.Errorf("%w: %v", lint.ErrInvalidOption, primary)
}

// cancelled wraps the rule context's cancellation error.
func cancelled(ctx *lint.RuleContext) error {
	return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
}
