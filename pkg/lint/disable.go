package lint

import (
	"slices"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/css"
)

// Disable comment directives, longest first.
const (
	directiveDisableNextLine = "stylelint-disable-next-line"
	directiveDisableLine     = "stylelint-disable-line"
	directiveDisable         = "stylelint-disable"
	directiveEnable          = "stylelint-enable"
)

// disableRange suppresses messages of the listed rules (all rules when
// empty) on lines start through end inclusive; end 0 means end of file.
type disableRange struct {
	rules []string
	start int
	end   int
}

func (r disableRange) covers(rule string, line int) bool {
	if line < r.start || (r.end > 0 && line > r.end) {
		return false
	}
	if len(r.rules) == 0 {
		return true
	}
	return slices.Contains(r.rules, rule)
}

type disableSet []disableRange

func (s disableSet) suppressed(rule string, line int) bool {
	for _, r := range s {
		if r.covers(rule, line) {
			return true
		}
	}
	return false
}

// collectDisables scans comments for stylelint-disable directives.
func collectDisables(root *css.Node) disableSet {
	var (
		ranges disableSet
		open   []int
	)

	for _, comment := range css.Collect(root, css.NodeComment) {
		directive, rules, ok := parseDirective(comment.Text)
		if !ok {
			continue
		}

		switch directive {
		case directiveDisableNextLine:
			line := comment.End.Line + 1
			ranges = append(ranges, disableRange{rules: rules, start: line, end: line})
		case directiveDisableLine:
			line := comment.Start.Line
			ranges = append(ranges, disableRange{rules: rules, start: line, end: line})
		case directiveDisable:
			ranges = append(ranges, disableRange{rules: rules, start: comment.Start.Line})
			open = append(open, len(ranges)-1)
		case directiveEnable:
			remaining := open[:0]
			for _, idx := range open {
				if len(rules) == 0 || slices.Equal(ranges[idx].rules, rules) {
					ranges[idx].end = comment.Start.Line
					continue
				}
				remaining = append(remaining, idx)
			}
			open = remaining
		}
	}

	return ranges
}

// parseDirective splits "stylelint-disable a, b -- reason" into its directive and rule list.
func parseDirective(text string) (string, []string, bool) {
	if before, _, found := strings.Cut(text, " -- "); found {
		text = before
	}
	text = strings.TrimSpace(text)

	for _, directive := range []string{directiveDisableNextLine, directiveDisableLine, directiveDisable, directiveEnable} {
		rest, found := strings.CutPrefix(text, directive)
		if !found {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			return "", nil, false
		}
		var rules []string
		for _, name := range strings.Split(rest, ",") {
			if name = strings.TrimSpace(name); name != "" {
				rules = append(rules, name)
			}
		}
		return directive, rules, true
	}
	return "", nil, false
}
