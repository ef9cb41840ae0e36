package runner

import (
	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"

	// Register built-in rules with lint.DefaultRegistry.
	_ "github.com/yaklabco/gocsslint/pkg/lint/rules"
)

// NewDefaultEngine returns the built-in engine: the stylesheet parser
// followed by every registered rule.
func NewDefaultEngine() *lint.Engine {
	return lint.NewEngine(css.NewParser(), lint.DefaultRegistry)
}

// NewDefault returns a Runner using the built-in engine and reading from disk.
func NewDefault() *Runner {
	return New(NewDefaultEngine(), FileLoader{})
}
