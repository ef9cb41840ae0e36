package configloader

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// ErrInvalidConfig is wrapped by every fatal validation error.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a configuration validation finding.
type ValidationError struct {
	// Field is the config key (e.g., "syntax" or "rules.block-no-empty").
	Field string

	// Value is the offending value.
	Value any

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap lets callers match ErrInvalidConfig with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors prevent the configuration from being used.
	Errors []ValidationError

	// Warnings are non-fatal issues such as unknown rule names.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the first error, or nil.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return &r.Errors[0]
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = []string{"auto", "always", "never"}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = []config.OutputFormat{
	config.FormatText, config.FormatTable, config.FormatJSON, config.FormatSARIF, config.FormatSummary,
}

// Validate checks cfg. Rule names unknown to registry are reported as
// warnings; a nil registry skips that check.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		result.Errors = append(result.Errors, ValidationError{Message: "configuration is nil"})
		return result
	}

	if !cfg.Syntax.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Value:   cfg.Syntax,
			Message: fmt.Sprintf("unknown syntax %q; valid values: %s", cfg.Syntax, joinSyntaxes()),
		})
	}

	if !slices.Contains(knownFormats, cfg.Format) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("unknown format %q", cfg.Format),
		})
	}

	if !slices.Contains(knownColorModes, cfg.Color) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("unknown color mode %q; valid values: %s", cfg.Color, strings.Join(knownColorModes, ", ")),
		})
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "extensions",
				Value:   ext,
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}

	if registry != nil {
		names := make([]string, 0, len(cfg.Rules))
		for name := range cfg.Rules {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if !registry.Has(name) {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   "rules." + name,
					Message: "unknown rule",
				})
			}
		}
	}

	return result
}

func joinSyntaxes() string {
	names := make([]string, 0, len(config.Syntaxes()))
	for _, s := range config.Syntaxes() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
