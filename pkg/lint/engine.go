package lint

import (
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
)

// ProcessOptions names the source being processed and selects its dialect.
type ProcessOptions struct {
	// From is the input file name used in syntax errors.
	From string

	// To is the output file name. It is informational only.
	To string

	// Syntax selects the parser dialect; empty and "auto" mean scss.
	Syntax config.Syntax
}

// Message is a single style-check message.
type Message struct {
	// Text is the message followed by " (<rule>)" when the message belongs to a rule.
	Text string

	// Rule is the rule name, empty for configuration problems such as unknown rules.
	Rule string

	// Severity is the resolved severity.
	Severity config.Severity

	// Line and Column are the 1-based start position.
	Line   int
	Column int

	// EndLine and EndColumn are the 1-based end position.
	EndLine   int
	EndColumn int
}

// Result is the outcome of a successful Process call.
type Result struct {
	// Messages are ordered by position, configuration problems first.
	Messages []Message

	// Stylesheet is the parsed source.
	Stylesheet *css.Stylesheet
}

// ErrorCount returns the number of error-severity messages.
func (r *Result) ErrorCount() int {
	return r.countSeverity(config.SeverityError)
}

// WarningCount returns the number of warning-severity messages.
func (r *Result) WarningCount() int {
	return r.countSeverity(config.SeverityWarning)
}

func (r *Result) countSeverity(sev config.Severity) int {
	count := 0
	for _, msg := range r.Messages {
		if msg.Severity == sev {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses source text into stylesheets.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// Process parses and lints a single source.
//
// A malformed source yields an error wrapping *css.SyntaxError. A rule
// failure yields any other error. Otherwise the rule messages, with
// disable comments applied, are returned.
func (e *Engine) Process(
	ctx context.Context,
	source string,
	ruleSet *config.RuleSet,
	opts ProcessOptions,
) (*Result, error) {
	sheet, err := e.Parser.Parse(ctx, opts.From, source, opts.Syntax)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	resolved, problems := ResolveRules(e.Registry, ruleSet)
	disables := collectDisables(sheet.Root)

	result := &Result{Stylesheet: sheet}
	var messages []Message

	for _, rr := range resolved {
		if !rr.Rule.AppliesTo(sheet.Syntax) {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, sheet, rr.Primary, rr.Secondary)
		ruleCtx.Registry = e.Registry

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rr.Rule.Name(), err)
		}

		for _, diag := range diags {
			name := rr.Rule.Name()
			if disables.suppressed(name, diag.StartLine) {
				continue
			}
			text := diag.Message
			if rr.Message != "" {
				text = rr.Message
			}
			messages = append(messages, Message{
				Text:      fmt.Sprintf("%s (%s)", text, name),
				Rule:      name,
				Severity:  rr.Severity,
				Line:      max(diag.StartLine, 1),
				Column:    max(diag.StartColumn, 1),
				EndLine:   diag.EndLine,
				EndColumn: diag.EndColumn,
			})
		}
	}

	slices.SortStableFunc(messages, func(a, b Message) int {
		if a.Line != b.Line {
			return a.Line - b.Line
		}
		return a.Column - b.Column
	})

	result.Messages = append(problems, messages...)
	return result, nil
}
