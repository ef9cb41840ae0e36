package css

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/config"
)

// Parser turns stylesheet source into a Stylesheet.
type Parser struct{}

// NewParser creates a new stylesheet parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses source with the given syntax. Markdown sources are reduced
// to their embedded style blocks before parsing. Any syntax other than css
// and markdown is parsed as scss.
//
// Parse failures are returned as *SyntaxError.
func (p *Parser) Parse(ctx context.Context, path, source string, syntax config.Syntax) (*Stylesheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	dialect := syntax
	text := source
	segments := []span{{start: 0, end: len(source)}}
	switch syntax {
	case config.SyntaxCSS:
	case config.SyntaxMarkdown:
		text, segments = extractMarkdownBlocks(source)
	default:
		dialect = config.SyntaxSCSS
	}

	sheet := &Stylesheet{
		Path:   path,
		Source: text,
		Syntax: dialect,
		Lines:  BuildLines(text),
	}

	state := &parseState{
		sheet:    sheet,
		scss:     dialect != config.SyntaxCSS,
		segments: segments,
	}
	if err := state.run(); err != nil {
		return nil, err
	}
	return sheet, nil
}

// Parse is a convenience wrapper around NewParser().Parse with a background context.
func Parse(path, source string, syntax config.Syntax) (*Stylesheet, error) {
	return NewParser().Parse(context.Background(), path, source, syntax)
}

// parseState carries the mutable state of a single parse.
type parseState struct {
	sheet *Stylesheet
	scss  bool
	// segments are parsed independently; a block or string never spans two.
	segments []span
	current  *Node
	buffer   []token
	opens    []int
}

func (s *parseState) errorAt(offset int, reason string) error {
	pos := s.sheet.PositionAt(offset)
	return &SyntaxError{
		File:   s.sheet.Path,
		Line:   pos.Line,
		Column: pos.Column,
		Reason: reason,
	}
}

func (s *parseState) run() error {
	root := &Node{Kind: NodeRoot, HasBlock: true, EndOffset: len(s.sheet.Source)}
	root.Start = Position{Line: 1, Column: 1}
	root.End = s.sheet.PositionAt(max(len(s.sheet.Source)-1, 0))
	s.sheet.Root = root
	s.current = root

	for _, seg := range s.segments {
		if err := s.runSegment(seg); err != nil {
			return err
		}
	}
	return nil
}

// runSegment tokenizes and parses one byte range of the source. Offsets
// stay absolute so positions are those of the whole file.
func (s *parseState) runSegment(seg span) error {
	lexer := &tokenizer{src: s.sheet.Source[:seg.end], pos: seg.start, scss: s.scss, fail: s.errorAt}
	tokens, err := lexer.tokenize()
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		if err := s.consume(tok); err != nil {
			return err
		}
	}
	return s.finish()
}

func (s *parseState) consume(tok token) error {
	switch tok.kind {
	case tokSpace:
		if len(s.buffer) > 0 {
			s.buffer = append(s.buffer, tok)
		}
		return nil

	case tokComment:
		if !s.hasContent() {
			s.buffer = s.buffer[:0]
			s.addComment(tok)
			return nil
		}
		s.buffer = append(s.buffer, tok)
		return nil

	case tokOpenParen, tokOpenBracket:
		s.opens = append(s.opens, tok.start)
	case tokCloseParen, tokCloseBracket:
		if len(s.opens) > 0 {
			s.opens = s.opens[:len(s.opens)-1]
		}
	case tokSemicolon:
		if len(s.opens) == 0 {
			return s.endStatement()
		}
	case tokOpenBrace:
		if len(s.opens) == 0 {
			return s.openBlock(tok)
		}
	case tokCloseBrace:
		if len(s.opens) > 0 {
			return s.errorAt(s.opens[len(s.opens)-1], ReasonUnclosedBracket)
		}
		return s.closeBlock(tok)
	}

	s.buffer = append(s.buffer, tok)
	return nil
}

func (s *parseState) finish() error {
	if len(s.opens) > 0 {
		return s.errorAt(s.opens[len(s.opens)-1], ReasonUnclosedBracket)
	}
	if err := s.endStatement(); err != nil {
		return err
	}
	if s.current.Kind != NodeRoot {
		return s.errorAt(s.current.StartOffset, ReasonUnclosedBlock)
	}
	return nil
}

// hasContent reports whether the buffer holds a significant token.
func (s *parseState) hasContent() bool {
	for _, tok := range s.buffer {
		if tok.significant() {
			return true
		}
	}
	return false
}

// trimmed returns the buffer without leading and trailing insignificant tokens.
func (s *parseState) trimmed() []token {
	return trimTokens(s.buffer)
}

func (s *parseState) text(start, end int) string {
	return s.sheet.Source[start:end]
}

func (s *parseState) place(node *Node, start, end int) {
	node.StartOffset = start
	node.EndOffset = end
	node.Start = s.sheet.PositionAt(start)
	node.End = s.sheet.PositionAt(max(end-1, start))
}

func (s *parseState) addComment(tok token) {
	raw := s.text(tok.start, tok.end)
	body := strings.TrimPrefix(raw, "//")
	if !tok.inline {
		body = strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
	}
	node := &Node{Kind: NodeComment, Text: strings.TrimSpace(body), Inline: tok.inline}
	s.place(node, tok.start, tok.end)
	s.current.append(node)
}

// endStatement flushes the buffer as a block-less statement.
func (s *parseState) endStatement() error {
	defer func() { s.buffer = s.buffer[:0] }()

	tokens := s.trimmed()
	if len(tokens) == 0 {
		return nil
	}

	if tokens[0].kind == tokAtWord {
		s.current.append(s.atRule(tokens, false))
		return nil
	}

	node, err := s.declaration(tokens)
	if err != nil {
		return err
	}
	s.current.append(node)
	return nil
}

func (s *parseState) atRule(tokens []token, hasBlock bool) *Node {
	head := tokens[0]
	last := tokens[len(tokens)-1]
	node := &Node{
		Kind:     NodeAtRule,
		Name:     s.text(head.start+1, head.end),
		Params:   strings.TrimSpace(s.text(head.end, last.end)),
		HasBlock: hasBlock,
	}
	s.place(node, head.start, last.end)
	return node
}

func (s *parseState) declaration(tokens []token) (*Node, error) {
	colon := -1
	depth := 0
	for idx, tok := range tokens {
		switch tok.kind {
		case tokOpenParen, tokOpenBracket:
			depth++
		case tokCloseParen, tokCloseBracket:
			depth--
		case tokColon:
			if depth == 0 && colon < 0 {
				colon = idx
			}
		}
	}
	if colon < 0 {
		return nil, s.errorAt(tokens[0].start, ReasonUnknownWord)
	}
	if colon == 0 || !s.isPropName(tokens[:colon]) {
		return nil, s.errorAt(tokens[0].start, ReasonUnknownWord)
	}

	node := &Node{
		Kind: NodeDecl,
		Prop: s.text(tokens[0].start, tokens[colon-1].end),
	}

	node.ValueOffset = tokens[colon].end
	values := trimTokens(tokens[colon+1:])
	valueEnd := -1
	if len(values) > 0 {
		tail := values[len(values)-1]
		valueEnd = tail.end
		if tail.kind == tokWord {
			word := strings.ToLower(s.text(tail.start, tail.end))
			if strings.HasSuffix(word, "!important") {
				node.Important = true
				valueEnd = tail.end - len("!important")
				if valueEnd == tail.start {
					values = trimTokens(values[:len(values)-1])
					valueEnd = -1
					if len(values) > 0 {
						valueEnd = values[len(values)-1].end
					}
				}
			}
		}
	}
	if len(values) > 0 && valueEnd > values[0].start {
		node.ValueOffset = values[0].start
		node.Value = strings.TrimRight(s.text(values[0].start, valueEnd), " \t\r\n\f")
	}

	s.place(node, tokens[0].start, tokens[len(tokens)-1].end)
	return node, nil
}

// trimTokens drops leading and trailing insignificant tokens.
func trimTokens(tokens []token) []token {
	first, last := -1, -1
	for idx, tok := range tokens {
		if tok.significant() {
			if first < 0 {
				first = idx
			}
			last = idx
		}
	}
	if first < 0 {
		return nil
	}
	return tokens[first : last+1]
}

// isPropName reports whether the tokens before a colon form a property name:
// a single run of word tokens with no whitespace between them.
func (s *parseState) isPropName(tokens []token) bool {
	for _, tok := range tokens {
		if tok.kind != tokWord {
			return false
		}
	}
	for idx := 1; idx < len(tokens); idx++ {
		if tokens[idx].start != tokens[idx-1].end {
			return false
		}
	}
	return true
}

func (s *parseState) openBlock(brace token) error {
	tokens := s.trimmed()
	s.buffer = s.buffer[:0]

	var node *Node
	switch {
	case len(tokens) == 0:
		node = &Node{Kind: NodeRule, HasBlock: true}
		s.place(node, brace.start, brace.end)
	case tokens[0].kind == tokAtWord:
		node = s.atRule(tokens, true)
	case s.scss && tokens[len(tokens)-1].kind == tokColon && s.isPropName(tokens[:len(tokens)-1]):
		node = &Node{
			Kind:        NodeDecl,
			Prop:        s.text(tokens[0].start, tokens[len(tokens)-2].end),
			HasBlock:    true,
			ValueOffset: brace.start,
		}
		s.place(node, tokens[0].start, brace.end)
	default:
		last := tokens[len(tokens)-1]
		node = &Node{
			Kind:     NodeRule,
			Selector: strings.TrimSpace(s.text(tokens[0].start, last.end)),
			HasBlock: true,
		}
		s.place(node, tokens[0].start, brace.end)
	}

	s.current.append(node)
	s.current = node
	return nil
}

func (s *parseState) closeBlock(brace token) error {
	if err := s.endStatement(); err != nil {
		return err
	}
	if s.current.Kind == NodeRoot {
		return s.errorAt(brace.start, ReasonUnexpectedClose)
	}
	s.place(s.current, s.current.StartOffset, brace.end)
	s.current = s.current.Parent
	return nil
}
