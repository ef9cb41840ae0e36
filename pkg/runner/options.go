// Package runner orchestrates linting of a batch of stylesheet files.
package runner

import "github.com/yaklabco/gocsslint/pkg/config"

// ProgressFunc receives progress notifications during a run.
// fraction is in [0, 1]; message is a human-readable status line.
type ProgressFunc func(fraction float64, message string)

// Options controls a single Run.
type Options struct {
	// Progress is notified before the loop, before each file and after the
	// loop. Nil disables progress reporting. It may read the report but
	// must not start another run on it.
	Progress ProgressFunc

	// Rules are shallow-merged into the default rule set's rules mapping.
	// The map is never mutated.
	Rules map[string]any

	// Syntax is the dialect handed to the engine. Empty means scss;
	// config.SyntaxAuto detects the dialect per file.
	Syntax config.Syntax
}

func (o Options) notify(fraction float64, message string) {
	if o.Progress != nil {
		o.Progress(fraction, message)
	}
}
