package runner

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// syntaxErrorPattern matches "<ignored>:<line>:<column>: <message>".
	// The leading group is greedy so colons inside a file path are absorbed.
	syntaxErrorPattern = regexp.MustCompile(`^(.+):(\d+):(\d+):\s*(.+)$`)

	// ruleSuffixPattern matches "<text> (<ruleId>)" with rule ids free of parentheses.
	ruleSuffixPattern = regexp.MustCompile(`^(.+?)\s*\(([^()]+)\)$`)
)

// ParsedSyntaxError is the structured form of a parser failure text.
type ParsedSyntaxError struct {
	Line    int
	Column  int
	Message string
}

// ParseSyntaxErrorText parses "<ignored>:<line>:<column>: <message>".
// It reports false when text does not follow that grammar.
func ParseSyntaxErrorText(text string) (ParsedSyntaxError, bool) {
	m := syntaxErrorPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return ParsedSyntaxError{}, false
	}

	line, err := strconv.Atoi(m[2])
	if err != nil {
		return ParsedSyntaxError{}, false
	}
	col, err := strconv.Atoi(m[3])
	if err != nil {
		return ParsedSyntaxError{}, false
	}

	return ParsedSyntaxError{Line: line, Column: col, Message: m[4]}, true
}

// SplitRuleID separates a trailing "(ruleId)" suffix from a message text.
// Without a suffix the full text is returned along with RuleIDUnknown.
func SplitRuleID(text string) (message, ruleID string) {
	m := ruleSuffixPattern.FindStringSubmatch(text)
	if m == nil {
		return text, RuleIDUnknown
	}
	return m[1], strings.TrimSpace(m[2])
}
