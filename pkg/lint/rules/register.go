package rules

import "github.com/yaklabco/gocsslint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Block rules
	registry.Register(NewBlockNoEmptyRule())
	registry.Register(NewMaxNestingDepthRule())

	// Color rules
	registry.Register(NewColorNoInvalidHexRule())
	registry.Register(NewColorHexCaseRule())

	// Comment rules
	registry.Register(NewCommentNoEmptyRule())

	// Declaration rules
	registry.Register(NewDeclarationBlockNoDuplicatePropertiesRule())
	registry.Register(NewDeclarationNoImportantRule())

	// Unit rules
	registry.Register(NewLengthZeroNoUnitRule())
	registry.Register(NewUnitNoUnknownRule())

	// Selector rules
	registry.Register(NewSelectorMaxIDRule())

	// Whitespace rules
	registry.Register(NewNoEOLWhitespaceRule())
	registry.Register(NewNoMissingEndOfSourceNewlineRule())

	// SCSS rules
	registry.Register(NewDollarVariablePatternRule())

	// Plugin rules
	registry.Register(NewEsbuildCompatRule())
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
