package css

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// styleFenceLanguages lists the info strings of fenced blocks that are linted.
var styleFenceLanguages = map[string]bool{
	"css":  true,
	"scss": true,
	"sass": true,
}

// span is a half-open byte range of a source.
type span struct {
	start, end int
}

// ExtractMarkdown returns source with every byte outside css, scss and sass
// fenced code blocks replaced by a space. Line terminators are preserved so
// positions in the result are positions in the Markdown file.
func ExtractMarkdown(source string) string {
	masked, _ := extractMarkdownBlocks(source)
	return masked
}

// extractMarkdownBlocks masks source like ExtractMarkdown and also returns
// the byte range of each style block, in document order.
func extractMarkdownBlocks(source string) (string, []span) {
	content := []byte(source)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	keep := make([]bool, len(content))
	var blocks []span
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := strings.ToLower(string(block.Language(content)))
		if !styleFenceLanguages[lang] {
			return ast.WalkSkipChildren, nil
		}
		lines := block.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		for idx := 0; idx < lines.Len(); idx++ {
			seg := lines.At(idx)
			for off := seg.Start; off < seg.Stop && off < len(keep); off++ {
				keep[off] = true
			}
		}
		blocks = append(blocks, span{
			start: lines.At(0).Start,
			end:   min(lines.At(lines.Len()-1).Stop, len(content)),
		})
		return ast.WalkSkipChildren, nil
	})

	out := make([]byte, len(content))
	for idx, c := range content {
		switch {
		case keep[idx], c == '\n', c == '\r':
			out[idx] = c
		default:
			out[idx] = ' '
		}
	}
	return string(out), blocks
}
