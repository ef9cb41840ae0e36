// Package lint provides the style-check engine, diagnostics, and rule registry for gocsslint.
package lint

import (
	"errors"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
)

// ErrInvalidOption is returned by Rule.ValidateOption for unsupported option values.
var ErrInvalidOption = errors.New("invalid option value")

// Diagnostic represents a single issue reported by a rule.
type Diagnostic struct {
	// RuleName is the name of the rule that produced this diagnostic.
	RuleName string

	// Message is the human-readable description, without the rule suffix.
	Message string

	// Severity is filled in by the engine from the resolved rule configuration.
	Severity config.Severity

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int
}

// Position returns the start position of the diagnostic.
func (d *Diagnostic) Position() css.Position {
	return css.Position{Line: d.StartLine, Column: d.StartColumn}
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// Name returns the unique rule name (e.g., "block-no-empty").
	Name() string

	// Description returns a short description of what the rule checks.
	Description() string

	// Tags returns categorization tags for this rule.
	Tags() []string

	// AppliesTo reports whether the rule runs for sources of the given syntax.
	AppliesTo(syntax config.Syntax) bool

	// ValidateOption checks the primary option value before the rule runs.
	// It returns an error wrapping ErrInvalidOption for unsupported values.
	ValidateOption(primary any) error

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules return an error only for internal failures, never for violations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
