package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/yaklabco/gocsslint/internal/logging"
	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/langdetect"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

var (
	// ErrReadFailure indicates that a file could not be read; the run is aborted.
	ErrReadFailure = errors.New("read failure")

	// ErrEnginePanic indicates that the engine panicked while processing a file.
	ErrEnginePanic = errors.New("engine panic")
)

// ProcessOptions is what the runner passes to the engine for each file.
type ProcessOptions = lint.ProcessOptions

// Engine lints one source text against a rule set.
type Engine interface {
	Process(ctx context.Context, source string, ruleSet *config.RuleSet, opts ProcessOptions) (*lint.Result, error)
}

// Runner lints files sequentially and accumulates normalized findings.
type Runner struct {
	// Engine runs the parser and style-check stages.
	Engine Engine

	// Loader reads file contents. Defaults to FileLoader.
	Loader Loader

	// WorkingDir is the base for relative filenames. Empty means the
	// process working directory at the time of the call.
	WorkingDir string

	// Defaults is the rule set template overrides are merged into.
	// Nil means config.DefaultRuleSet(). It is never mutated.
	Defaults *config.RuleSet
}

// New creates a Runner with the given engine and loader.
// A nil loader reads files from disk.
func New(engine Engine, loader Loader) *Runner {
	if loader == nil {
		loader = FileLoader{}
	}
	return &Runner{Engine: engine, Loader: loader}
}

// Lint runs a batch into a fresh report and returns it.
func (r *Runner) Lint(ctx context.Context, filenames []string, opts Options) (*Report, bool, error) {
	report := NewReport()
	passed, err := r.Run(ctx, filenames, opts, report)
	return report, passed, err
}

// Run lints filenames in order and appends findings to report.
// A nil report is replaced by a fresh one that the caller cannot observe;
// use Lint to get it back.
//
// Run returns true iff no finding was recorded. A read failure aborts the
// run, returning false and an error wrapping ErrReadFailure; findings
// recorded before it stay in the report. Runs sharing a report are
// serialized; each file's findings are appended atomically, so the report's
// read helpers stay usable from Progress and Loader. Cancellation of ctx is
// ignored.
func (r *Runner) Run(ctx context.Context, filenames []string, opts Options, report *Report) (bool, error) {
	if report == nil {
		report = NewReport()
	}
	if r.Engine == nil {
		return false, errors.New("runner: no engine configured")
	}

	ctx = context.WithoutCancel(ctx)
	ctx = logging.WithFields(ctx, logging.FieldRunID, uuid.NewString())
	logger := logging.FromContext(ctx)

	workDir, err := r.workDir()
	if err != nil {
		return false, err
	}

	report.runMu.Lock()
	defer report.runMu.Unlock()

	logger.Debug("lint run starting", logging.FieldFiles, len(filenames))
	opts.notify(0, "linting CSS: starting")

	passed := true
	total := float64(len(filenames))

	for i, path := range filenames {
		name := relativeName(workDir, path)
		opts.notify(float64(i)/total, "linting CSS: "+name)

		source, err := r.loader().Load(ctx, path)
		if err != nil {
			logger.Debug("read failed, aborting run", logging.FieldPath, name, logging.FieldError, err)
			return false, fmt.Errorf("%w: %s: %w", ErrReadFailure, name, err)
		}

		outcome := r.lintOne(ctx, name, source, opts)
		findings := outcome.Findings(name)
		logger.Debug("file linted",
			logging.FieldPath, name,
			logging.FieldOutcome, outcome.Kind.String(),
			logging.FieldFindings, len(findings),
		)

		if len(findings) > 0 {
			report.record(name, source, findings)
			passed = false
		}
	}

	opts.notify(1, "linting CSS: done")
	logger.Debug("lint run finished", logging.FieldPassed, passed)

	return passed, nil
}

// lintOne invokes the engine for one file and classifies the result.
func (r *Runner) lintOne(ctx context.Context, name, source string, opts Options) Outcome {
	ruleSet := r.defaults().WithRules(opts.Rules)

	syntax := opts.Syntax
	switch syntax {
	case "":
		syntax = config.SyntaxSCSS
	case config.SyntaxAuto:
		syntax = langdetect.Resolve(syntax, name, []byte(source))
		logging.FromContext(ctx).Debug("syntax detected", logging.FieldPath, name, logging.FieldSyntax, syntax)
	}

	result, err := r.process(ctx, source, ruleSet, ProcessOptions{From: name, To: name, Syntax: syntax})
	return Classify(result, err)
}

// process calls the engine, converting a panic into an error.
func (r *Runner) process(
	ctx context.Context,
	source string,
	ruleSet *config.RuleSet,
	opts ProcessOptions,
) (result *lint.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrEnginePanic, rec)
		}
	}()
	return r.Engine.Process(ctx, source, ruleSet, opts)
}

func (r *Runner) loader() Loader {
	if r.Loader == nil {
		return FileLoader{}
	}
	return r.Loader
}

// defaults returns a fresh copy of the rule set template.
func (r *Runner) defaults() *config.RuleSet {
	if r.Defaults == nil {
		return config.DefaultRuleSet()
	}
	return r.Defaults.Clone()
}

func (r *Runner) workDir() (string, error) {
	if r.WorkingDir != "" {
		abs, err := filepath.Abs(r.WorkingDir)
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}

// relativeName returns path relative to workDir, or path itself when no
// relative form exists.
func relativeName(workDir, path string) string {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(workDir, abs)
	}
	rel, err := filepath.Rel(workDir, abs)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
