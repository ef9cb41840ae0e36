package css

import "github.com/yaklabco/gocsslint/pkg/config"

// Stylesheet is an immutable parsed source file.
type Stylesheet struct {
	// Path is the logical file name used in diagnostics.
	Path string

	// Source is the text that was parsed. For Markdown input it is the
	// masked text holding only the embedded style blocks.
	Source string

	// Syntax is the dialect the source was parsed with.
	Syntax config.Syntax

	// Lines is the line index of Source.
	Lines []LineInfo

	// Root is the tree root; never nil for a successfully parsed sheet.
	Root *Node
}

// PositionAt converts a byte offset in Source to a 1-based position.
func (s *Stylesheet) PositionAt(offset int) Position {
	return locate(s.Lines, offset)
}

// LineCount returns the number of lines in the source.
func (s *Stylesheet) LineCount() int {
	return len(s.Lines)
}

// LineContent returns a 1-based line without its terminator, or "" if out of range.
func (s *Stylesheet) LineContent(line int) string {
	if line < 1 || line > len(s.Lines) {
		return ""
	}
	info := s.Lines[line-1]
	return s.Source[info.StartOffset:info.NewlineStart]
}
