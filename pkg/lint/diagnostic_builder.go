package lint

import "github.com/yaklabco/gocsslint/pkg/css"

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic spanning the given node.
func NewDiagnostic(ruleName string, node *css.Node, message string) *DiagnosticBuilder {
	var start, end css.Position
	if node != nil {
		start, end = node.Start, node.End
	}
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleName:    ruleName,
			Message:     message,
			StartLine:   start.Line,
			StartColumn: start.Column,
			EndLine:     end.Line,
			EndColumn:   end.Column,
		},
	}
}

// NewDiagnosticAt starts building a diagnostic at a specific position.
func NewDiagnosticAt(ruleName string, pos css.Position, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleName:    ruleName,
			Message:     message,
			StartLine:   pos.Line,
			StartColumn: pos.Column,
			EndLine:     pos.Line,
			EndColumn:   pos.Column,
		},
	}
}

// WithEnd sets the end position.
func (b *DiagnosticBuilder) WithEnd(pos css.Position) *DiagnosticBuilder {
	b.diag.EndLine = pos.Line
	b.diag.EndColumn = pos.Column
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
