package runner

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// OutcomeKind tags the result of one engine invocation.
type OutcomeKind int

const (
	// OutcomeMessages means the engine completed and returned zero or more messages.
	OutcomeMessages OutcomeKind = iota
	// OutcomeParseError means the parser stage rejected the source.
	OutcomeParseError
	// OutcomeUnknownError means the engine failed in an unrecognized way.
	OutcomeUnknownError
)

// String returns the outcome name used in logs.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMessages:
		return "messages"
	case OutcomeParseError:
		return "parse-error"
	case OutcomeUnknownError:
		return "unknown-error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the classified result of linting one file.
type Outcome struct {
	Kind OutcomeKind

	// Parse is set for OutcomeParseError.
	Parse ParsedSyntaxError

	// Err is set for OutcomeParseError and OutcomeUnknownError.
	Err error

	// Messages is set for OutcomeMessages.
	Messages []lint.Message
}

// Classify turns an engine invocation into an Outcome.
// A syntax error whose text does not parse is treated as unknown.
func Classify(result *lint.Result, err error) Outcome {
	if err == nil {
		var msgs []lint.Message
		if result != nil {
			msgs = result.Messages
		}
		return Outcome{Kind: OutcomeMessages, Messages: msgs}
	}

	var syntaxErr *css.SyntaxError
	if errors.As(err, &syntaxErr) {
		if parsed, ok := ParseSyntaxErrorText(syntaxErr.Error()); ok {
			return Outcome{Kind: OutcomeParseError, Parse: parsed, Err: err}
		}
	}

	return Outcome{Kind: OutcomeUnknownError, Err: err}
}

// Findings converts the outcome into report findings for filename.
func (o Outcome) Findings(filename string) []Finding {
	switch o.Kind {
	case OutcomeParseError:
		return []Finding{{
			Ctx:      CtxCSS,
			Filename: filename,
			Line:     o.Parse.Line,
			Column:   o.Parse.Column,
			Message:  o.Parse.Message,
			RuleProc: RuleProcParser,
			RuleID:   RuleIDWildcard,
			Severity: config.SeverityError,
		}}

	case OutcomeUnknownError:
		return []Finding{{
			Ctx:      CtxCSS,
			Filename: filename,
			Line:     1,
			Column:   1,
			Message:  "UNKNOWN PARSING ERROR: " + errorText(o.Err),
			RuleProc: RuleProcParser,
			RuleID:   RuleIDWildcard,
			Severity: config.SeverityError,
		}}

	default:
		if len(o.Messages) == 0 {
			return nil
		}
		findings := make([]Finding, 0, len(o.Messages))
		for _, msg := range o.Messages {
			text, ruleID := SplitRuleID(msg.Text)
			findings = append(findings, Finding{
				Ctx:      CtxCSS,
				Filename: filename,
				Line:     atLeastOne(msg.Line),
				Column:   atLeastOne(msg.Column),
				Message:  text,
				RuleProc: RuleProcStyle,
				RuleID:   ruleID,
				Severity: severityOrError(msg.Severity),
			})
		}
		return findings
	}
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func severityOrError(s config.Severity) config.Severity {
	if s.IsValid() {
		return s
	}
	return config.SeverityError
}
