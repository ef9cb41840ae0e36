package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocsslint/pkg/css"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []css.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []css.LineInfo{},
		},
		{
			name:    "no trailing newline",
			content: "a{}",
			expected: []css.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 3},
			},
		},
		{
			name:    "trailing LF",
			content: "a{}\n",
			expected: []css.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 4},
				{StartOffset: 4, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "CRLF",
			content: "a\r\nb",
			expected: []css.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, css.BuildLines(tt.content))
		})
	}
}

func TestStylesheet_PositionAt(t *testing.T) {
	t.Parallel()

	source := "ab\ncd\n"
	sheet := &css.Stylesheet{Source: source, Lines: css.BuildLines(source)}

	assert.Equal(t, css.Position{Line: 1, Column: 1}, sheet.PositionAt(0))
	assert.Equal(t, css.Position{Line: 1, Column: 3}, sheet.PositionAt(2))
	assert.Equal(t, css.Position{Line: 2, Column: 2}, sheet.PositionAt(4))
	assert.Equal(t, css.Position{Line: 3, Column: 1}, sheet.PositionAt(6))
	assert.Equal(t, "cd", sheet.LineContent(2))
	assert.Empty(t, sheet.LineContent(9))
}

func TestPosition_Before(t *testing.T) {
	t.Parallel()

	assert.True(t, css.Position{Line: 1, Column: 9}.Before(css.Position{Line: 2, Column: 1}))
	assert.True(t, css.Position{Line: 2, Column: 1}.Before(css.Position{Line: 2, Column: 3}))
	assert.False(t, css.Position{Line: 2, Column: 3}.Before(css.Position{Line: 2, Column: 3}))
	assert.False(t, css.Position{}.IsValid())
}
