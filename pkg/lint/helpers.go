package lint

import (
	"strings"

	"github.com/yaklabco/gocsslint/pkg/css"
)

// ValueWord is a word of a declaration value.
type ValueWord struct {
	// Text is the word as written.
	Text string

	// Offset is the byte offset of the word within the value.
	Offset int

	// Function is the name of the innermost enclosing function, or "".
	Function string

	// IsFunction is true when the word is a function name followed by "(".
	IsFunction bool
}

// ValueWords splits a declaration value into words. Quoted strings,
// comments, url() arguments and SCSS interpolation are skipped.
func ValueWords(value string) []ValueWord {
	var (
		words []ValueWord
		funcs []string
	)

	current := func() string {
		if len(funcs) == 0 {
			return ""
		}
		return funcs[len(funcs)-1]
	}

	idx := 0
	for idx < len(value) {
		c := value[idx]
		switch {
		case c == '"' || c == '\'':
			idx = skipQuoted(value, idx)
			continue
		case c == '/' && idx+1 < len(value) && value[idx+1] == '*':
			end := strings.Index(value[idx+2:], "*/")
			if end < 0 {
				return words
			}
			idx += end + 4
			continue
		case c == '#' && idx+1 < len(value) && value[idx+1] == '{':
			idx = skipInterpolation(value, idx)
			continue
		case c == ')':
			if len(funcs) > 0 {
				funcs = funcs[:len(funcs)-1]
			}
			idx++
			continue
		case c == '(':
			funcs = append(funcs, "")
			idx++
			continue
		case isValueSeparator(c):
			idx++
			continue
		}

		start := idx
		for idx < len(value) && !isValueSeparator(value[idx]) && value[idx] != '(' && value[idx] != ')' &&
			value[idx] != '"' && value[idx] != '\'' && !(value[idx] == '#' && idx+1 < len(value) && value[idx+1] == '{' && idx > start) {
			idx++
		}
		word := ValueWord{Text: value[start:idx], Offset: start, Function: current()}

		if idx < len(value) && value[idx] == '(' {
			word.IsFunction = true
			name := strings.ToLower(word.Text)
			if name == "url" {
				end := strings.IndexByte(value[idx:], ')')
				if end < 0 {
					idx = len(value)
				} else {
					idx += end + 1
				}
				words = append(words, word)
				continue
			}
			funcs = append(funcs, name)
			idx++
		}
		words = append(words, word)
	}
	return words
}

func isValueSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', ',', '/', '*':
		return true
	}
	return false
}

func skipQuoted(value string, start int) int {
	quote := value[start]
	for idx := start + 1; idx < len(value); idx++ {
		switch value[idx] {
		case '\\':
			idx++
		case quote:
			return idx + 1
		}
	}
	return len(value)
}

func skipInterpolation(value string, start int) int {
	depth := 0
	for idx := start + 1; idx < len(value); idx++ {
		switch value[idx] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return idx + 1
			}
		}
	}
	return len(value)
}

// IsVariable reports whether a declaration property is an SCSS variable,
// a Less-style variable, or a custom property.
func IsVariable(prop string) bool {
	return strings.HasPrefix(prop, "$") || strings.HasPrefix(prop, "@") || IsCustomProperty(prop)
}

// IsCustomProperty reports whether prop is a CSS custom property.
func IsCustomProperty(prop string) bool {
	return strings.HasPrefix(prop, "--")
}

// ValuePosition returns the position of an offset within a declaration value.
func ValuePosition(sheet *css.Stylesheet, decl *css.Node, offset int) css.Position {
	return sheet.PositionAt(decl.ValueOffset + offset)
}

// DirectDeclarations returns the declarations that are direct children of node.
func DirectDeclarations(node *css.Node) []*css.Node {
	var out []*css.Node
	for _, child := range node.Children {
		if child.Kind == css.NodeDecl {
			out = append(out, child)
		}
	}
	return out
}
