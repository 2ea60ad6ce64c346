package zomlang

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Tokenizer struct {
	source  *strings.Reader
	current *Token
	done    bool

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		source: strings.NewReader(source),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize returns every token of source, terminated by a TokenEOF.
func Tokenize(source string) ([]Token, error) {
	t := NewTokenizer(source)
	var tokens []Token
	for {
		tok, err := t.Current()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, *tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		t.Consume()
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, size, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	t.currPos.Offset += size
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

// Consume advances past the current token. The EOF token is never consumed.
func (t *Tokenizer) Consume() {
	if t.current != nil && t.current.Kind == TokenEOF {
		return
	}
	t.current = nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	switch {
	case r == utf8.RuneError:
		return nil, &LexError{Char: r, Pos: startPos}
	case isDigit(r):
		t.unreadRune()
		return t.parseNumber()
	case unicode.IsLetter(r):
		t.unreadRune()
		return t.parseIdentifier()
	}

	if kind, ok := symbolKinds[r]; ok {
		return &Token{
			Kind: kind,
			Text: string(r),
			Pos:  startPos,
		}, nil
	}

	return nil, &LexError{Char: r, Pos: startPos}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) parseIdentifier() (*Token, error) {
	startPos := t.currPos
	var sb strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsLetter(r) && !isDigit(r) && r != '_' {
			t.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	text := sb.String()
	kind := TokenIdentifier
	if k, ok := keywords[text]; ok {
		kind = k
	}
	return &Token{
		Kind: kind,
		Text: text,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseNumber() (*Token, error) {
	startPos := t.currPos
	var sb strings.Builder
	hasDot := false
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isDigit(r) {
			sb.WriteRune(r)
		} else if r == '.' && !hasDot {
			hasDot = true
			sb.WriteRune(r)
		} else {
			t.unreadRune()
			break
		}
	}
	return &Token{
		Kind: TokenNumber,
		Text: sb.String(),
		Pos:  startPos,
	}, nil
}
