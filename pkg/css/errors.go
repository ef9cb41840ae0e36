package css

import (
	"errors"
	"fmt"
)

// Syntax error reasons reported by the parser.
const (
	ReasonUnclosedBlock   = "Unclosed block"
	ReasonUnclosedString  = "Unclosed string"
	ReasonUnclosedComment = "Unclosed comment"
	ReasonUnclosedBracket = "Unclosed bracket"
	ReasonUnexpectedClose = "Unexpected }"
	ReasonUnknownWord     = "Unknown word"
)

// SyntaxError is a structured parse failure.
// Its text has the form "<file>:<line>:<column>: <reason>".
type SyntaxError struct {
	File   string
	Line   int
	Column int
	Reason string
}

// Error implements error.
func (e *SyntaxError) Error() string {
	file := e.File
	if file == "" {
		file = "<input css>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", file, e.Line, e.Column, e.Reason)
}

// IsSyntaxError reports whether err is or wraps a *SyntaxError.
func IsSyntaxError(err error) bool {
	var syntaxErr *SyntaxError
	return errors.As(err, &syntaxErr)
}
