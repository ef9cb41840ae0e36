// Package config defines core configuration types for gocsslint.
// These types are pure data structures; loading and layering live in internal/configloader.
package config

import "slices"

// Severity represents the severity level of a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	return s == SeverityError || s == SeverityWarning
}

// Syntax selects the stylesheet dialect used by the parser stage.
type Syntax string

const (
	// SyntaxSCSS parses the extended SCSS dialect (line comments, variables, nesting).
	SyntaxSCSS Syntax = "scss"
	// SyntaxCSS parses plain CSS.
	SyntaxCSS Syntax = "css"
	// SyntaxMarkdown lints css/scss fenced code blocks embedded in Markdown.
	SyntaxMarkdown Syntax = "markdown"
	// SyntaxAuto detects the dialect per file.
	SyntaxAuto Syntax = "auto"
)

// Syntaxes returns all accepted syntax values.
func Syntaxes() []Syntax {
	return []Syntax{SyntaxSCSS, SyntaxCSS, SyntaxMarkdown, SyntaxAuto}
}

// IsValid returns true if the syntax is a known dialect or "auto".
func (s Syntax) IsValid() bool {
	return slices.Contains(Syntaxes(), s)
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// Config is the root configuration structure for a gocsslint invocation.
type Config struct {
	// Syntax is the dialect passed to the parser stage.
	Syntax Syntax `koanf:"syntax" yaml:"syntax"`

	// Format is the report output format.
	Format OutputFormat `koanf:"format" yaml:"format"`

	// Color controls colorized output: auto, always, never.
	Color string `koanf:"color" yaml:"color"`

	// Extensions are the file extensions picked up when a directory is linted.
	Extensions []string `koanf:"extensions" yaml:"extensions"`

	// Ignore contains glob patterns for files to skip during directory expansion.
	Ignore []string `koanf:"ignore" yaml:"ignore"`

	// Rules are overrides merged into the default rule set's rules mapping.
	Rules map[string]any `koanf:"rules" yaml:"rules"`

	// CLI-level options (not persisted to config files).

	// Output is the report destination path; empty means stdout.
	Output string `koanf:"output" yaml:"-"`

	// NoProgress disables progress rendering.
	NoProgress bool `koanf:"no_progress" yaml:"-"`
}

// DefaultExtensions returns the extensions linted when a directory is given.
func DefaultExtensions() []string {
	return []string{".css", ".scss"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Syntax:     SyntaxSCSS,
		Format:     FormatText,
		Color:      "auto",
		Extensions: DefaultExtensions(),
		Rules:      make(map[string]any),
	}
}

// DefaultsMap returns the defaults of NewConfig as a flat key map
// suitable for a layered loader.
func DefaultsMap() map[string]any {
	cfg := NewConfig()
	return map[string]any{
		"syntax":     string(cfg.Syntax),
		"format":     string(cfg.Format),
		"color":      cfg.Color,
		"extensions": cfg.Extensions,
	}
}
