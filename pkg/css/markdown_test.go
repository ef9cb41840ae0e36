package css_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
)

func TestExtractMarkdown(t *testing.T) {
	t.Parallel()

	source := "# Title\n\n```css\na { }\n```\n\n```js\nlet x = 1;\n```\n"
	masked := css.ExtractMarkdown(source)

	require.Len(t, masked, len(source))
	assert.Equal(t, strings.Count(source, "\n"), strings.Count(masked, "\n"))

	lines := strings.Split(masked, "\n")
	assert.Equal(t, "a { }", lines[3])
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.Empty(t, strings.TrimSpace(lines[2]))
	assert.Empty(t, strings.TrimSpace(lines[7]))
}

func TestParse_Markdown(t *testing.T) {
	t.Parallel()

	source := "Intro\n\n```scss\n.a {\n  color: red;\n}\n```\n"
	sheet, err := css.Parse("README.md", source, config.SyntaxMarkdown)
	require.NoError(t, err)
	assert.Equal(t, config.SyntaxMarkdown, sheet.Syntax)

	decls := css.Collect(sheet.Root, css.NodeDecl)
	require.Len(t, decls, 1)
	assert.Equal(t, css.Position{Line: 5, Column: 3}, decls[0].Start)
}

func TestParse_MarkdownSyntaxErrorUsesFilePositions(t *testing.T) {
	t.Parallel()

	source := "Text\n\n```css\na {\n```\n"
	_, err := css.Parse("doc.md", source, config.SyntaxMarkdown)

	var syntaxErr *css.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 4, syntaxErr.Line)
	assert.Equal(t, 1, syntaxErr.Column)
	assert.Equal(t, css.ReasonUnclosedBlock, syntaxErr.Reason)
}

func TestParse_MarkdownBlocksParsedSeparately(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		line   int
		reason string
	}{
		{
			name:   "open brace does not pair with a later block",
			source: "```css\na {\n```\n\nText\n\n```css\n}\n```\n",
			line:   2,
			reason: css.ReasonUnclosedBlock,
		},
		{
			name:   "string does not run into a later block",
			source: "```scss\n$a: \"open;\n```\n\n```scss\n\";\n```\n",
			line:   2,
			reason: css.ReasonUnclosedString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := css.Parse("doc.md", tt.source, config.SyntaxMarkdown)

			var syntaxErr *css.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.line, syntaxErr.Line)
			assert.Equal(t, tt.reason, syntaxErr.Reason)
		})
	}
}

func TestParse_MarkdownMergesBlocks(t *testing.T) {
	t.Parallel()

	source := "```css\n.a { color: red; }\n```\n\nMiddle\n\n```scss\n.b {\n  margin: 0;\n}\n```\n"
	sheet, err := css.Parse("doc.md", source, config.SyntaxMarkdown)
	require.NoError(t, err)

	rules := css.Collect(sheet.Root, css.NodeRule)
	require.Len(t, rules, 2)
	assert.Equal(t, ".a", rules[0].Selector)
	assert.Equal(t, ".b", rules[1].Selector)
	assert.Equal(t, 8, rules[1].Start.Line)

	decls := css.Collect(sheet.Root, css.NodeDecl)
	require.Len(t, decls, 2)
	assert.Equal(t, css.Position{Line: 9, Column: 3}, decls[1].Start)
}
