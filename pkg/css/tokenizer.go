package css

import "strings"

// tokenKind classifies lexical tokens.
type tokenKind uint8

const (
	tokSpace tokenKind = iota
	tokWord
	tokAtWord
	tokString
	tokComment
	tokOpenBrace
	tokCloseBrace
	tokSemicolon
	tokColon
	tokOpenParen
	tokCloseParen
	tokOpenBracket
	tokCloseBracket
)

// token is a lexical token identified by its byte range in the source.
type token struct {
	kind   tokenKind
	start  int
	end    int
	inline bool
}

// significant reports whether the token carries content for a statement.
func (t token) significant() bool {
	return t.kind != tokSpace && t.kind != tokComment
}

// tokenizer splits stylesheet source into tokens.
type tokenizer struct {
	src   string
	scss  bool
	pos   int
	depth int
	fail  func(offset int, reason string) error
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// isWordStop reports whether c terminates a word token.
func isWordStop(c byte) bool {
	if isSpace(c) {
		return true
	}
	switch c {
	case '{', '}', ';', ':', '(', ')', '[', ']', '"', '\'':
		return true
	}
	return false
}

// tokenize returns every token in the source or the first lexical error.
func (t *tokenizer) tokenize() ([]token, error) {
	var tokens []token
	for t.pos < len(t.src) {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (t *tokenizer) next() (token, error) {
	start := t.pos
	c := t.src[start]

	switch {
	case isSpace(c):
		for t.pos < len(t.src) && isSpace(t.src[t.pos]) {
			t.pos++
		}
		return token{kind: tokSpace, start: start, end: t.pos}, nil

	case c == '/' && t.peek(1) == '*':
		end := strings.Index(t.src[start+2:], "*/")
		if end < 0 {
			return token{}, t.fail(start, ReasonUnclosedComment)
		}
		t.pos = start + 2 + end + 2
		return token{kind: tokComment, start: start, end: t.pos}, nil

	case c == '/' && t.peek(1) == '/' && t.scss && t.depth == 0:
		end := strings.IndexByte(t.src[start:], '\n')
		if end < 0 {
			t.pos = len(t.src)
		} else {
			t.pos = start + end
		}
		if t.pos > start && t.src[t.pos-1] == '\r' {
			t.pos--
		}
		return token{kind: tokComment, start: start, end: t.pos, inline: true}, nil

	case c == '"' || c == '\'':
		return t.readString(c)

	case c == '@':
		t.pos++
		if err := t.readWordChars(); err != nil {
			return token{}, err
		}
		return token{kind: tokAtWord, start: start, end: t.pos}, nil
	}

	if kind, ok := punctuation(c); ok {
		t.pos++
		switch kind {
		case tokOpenParen, tokOpenBracket:
			t.depth++
		case tokCloseParen, tokCloseBracket:
			if t.depth > 0 {
				t.depth--
			}
		}
		return token{kind: kind, start: start, end: t.pos}, nil
	}

	if err := t.readWordChars(); err != nil {
		return token{}, err
	}
	if strings.EqualFold(t.src[start:t.pos], "url") && t.peek(0) == '(' && !t.quotedURL() {
		closing := strings.IndexByte(t.src[t.pos:], ')')
		if closing < 0 {
			return token{}, t.fail(t.pos, ReasonUnclosedBracket)
		}
		t.pos += closing + 1
	}
	return token{kind: tokWord, start: start, end: t.pos}, nil
}

func punctuation(c byte) (tokenKind, bool) {
	switch c {
	case '{':
		return tokOpenBrace, true
	case '}':
		return tokCloseBrace, true
	case ';':
		return tokSemicolon, true
	case ':':
		return tokColon, true
	case '(':
		return tokOpenParen, true
	case ')':
		return tokCloseParen, true
	case '[':
		return tokOpenBracket, true
	case ']':
		return tokCloseBracket, true
	}
	return 0, false
}

func (t *tokenizer) peek(ahead int) byte {
	if t.pos+ahead >= len(t.src) {
		return 0
	}
	return t.src[t.pos+ahead]
}

// quotedURL reports whether the url( at the cursor holds a quoted string.
func (t *tokenizer) quotedURL() bool {
	idx := t.pos + 1
	for idx < len(t.src) && isSpace(t.src[idx]) {
		idx++
	}
	return idx < len(t.src) && (t.src[idx] == '"' || t.src[idx] == '\'')
}

// readWordChars advances over word characters, folding escapes and SCSS
// interpolation into the word.
func (t *tokenizer) readWordChars() error {
	for t.pos < len(t.src) {
		c := t.src[t.pos]
		switch {
		case c == '\\':
			t.pos += 2
			if t.pos > len(t.src) {
				t.pos = len(t.src)
			}
			continue
		case t.scss && c == '#' && t.peek(1) == '{':
			if err := t.readInterpolation(); err != nil {
				return err
			}
			continue
		case c == '/' && t.peek(1) == '*':
			return nil
		case c == '/' && t.peek(1) == '/' && t.scss && t.depth == 0:
			return nil
		case isWordStop(c):
			return nil
		}
		t.pos++
	}
	return nil
}

func (t *tokenizer) readInterpolation() error {
	start := t.pos
	nesting := 0
	for t.pos < len(t.src) {
		switch t.src[t.pos] {
		case '{':
			nesting++
		case '}':
			nesting--
			if nesting == 0 {
				t.pos++
				return nil
			}
		}
		t.pos++
	}
	return t.fail(start, ReasonUnclosedBracket)
}

func (t *tokenizer) readString(quote byte) (token, error) {
	start := t.pos
	idx := start + 1
	for idx < len(t.src) {
		switch t.src[idx] {
		case '\\':
			idx += 2
			continue
		case quote:
			t.pos = idx + 1
			return token{kind: tokString, start: start, end: t.pos}, nil
		}
		idx++
	}
	return token{}, t.fail(start, ReasonUnclosedString)
}
