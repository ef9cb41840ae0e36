package css

import "sort"

// Position represents a 1-based line and column in a file.
// Columns count bytes, not runes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Before reports whether p sorts before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// LineInfo records the byte layout of a single source line.
type LineInfo struct {
	// StartOffset is the byte index of the first character of the line.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins
	// (equal to EndOffset for a final line without terminator).
	NewlineStart int

	// EndOffset is the byte index just past the line terminator.
	EndOffset int
}

// BuildLines constructs line metadata from source text.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(source string) []LineInfo {
	if len(source) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(source); idx++ {
		if source[idx] != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && source[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// The last line may not have a trailing newline.
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(source),
		EndOffset:    len(source),
	})

	return lines
}

// locate converts a byte offset into a 1-based position using a line index.
// Offsets past the end map to the position just after the last byte.
func locate(lines []LineInfo, offset int) Position {
	if len(lines) == 0 || offset < 0 {
		return Position{Line: 1, Column: 1}
	}

	idx := sort.Search(len(lines), func(i int) bool {
		return lines[i].EndOffset > offset
	})
	if idx >= len(lines) {
		idx = len(lines) - 1
	}

	return Position{Line: idx + 1, Column: offset - lines[idx].StartOffset + 1}
}
