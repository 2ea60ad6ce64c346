package zomlang

import (
	"errors"
	"strconv"
	"strings"
)

type parser struct {
	tokens []Token
	idx    int
	curr   Token
}

// Parse tokenizes and parses source as a whole program.
func Parse(source string) (Program, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a token sequence produced by Tokenize.
// The sequence must end with a TokenEOF.
func ParseTokens(tokens []Token) (Program, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		var pos Pos
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].Pos
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: TokenEOF, Pos: pos})
	}
	p := &parser{
		tokens: tokens,
		curr:   tokens[0],
	}

	var program Program
	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

func (p *parser) isAtEnd() bool {
	return p.curr.Kind == TokenEOF
}

func (p *parser) advance() Token {
	prev := p.curr
	if p.idx < len(p.tokens)-1 {
		p.idx++
		p.curr = p.tokens[p.idx]
	}
	return prev
}

func (p *parser) peek() Token {
	if p.idx < len(p.tokens)-1 {
		return p.tokens[p.idx+1]
	}
	return p.curr
}

func (p *parser) match(kind TokenKind) bool {
	if p.curr.Kind == kind {
		p.advance()
		return true
	}
	return false
}

func (p *parser) consume(kind TokenKind, expected string) (Token, error) {
	if p.curr.Kind == kind {
		return p.advance(), nil
	}
	return Token{}, p.fail(expected)
}

func (p *parser) fail(expected string) error {
	return &ParseError{
		Expected: expected,
		Found:    p.curr,
	}
}

func (p *parser) parseStatement() (Node, error) {
	if p.curr.Kind == TokenVar {
		return p.parseAssignment()
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, `";" after expression`); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) parseAssignment() (Node, error) {
	varTok := p.advance()
	name, err := p.consume(TokenIdentifier, "variable name after var")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenAssign, `"=" after variable name`); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, `";" after variable declaration`); err != nil {
		return nil, err
	}
	return &Assignment{
		Name:  name.Text,
		Value: value,
		Pos:   varTok.Pos,
	}, nil
}

func (p *parser) parseExpression() (Node, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curr.Kind == TokenPlus || p.curr.Kind == TokenMinus {
		opTok := p.advance()
		op := OpAdd
		if opTok.Kind == TokenMinus {
			op = OpSub
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{
			Op:    op,
			Left:  expr,
			Right: right,
			Pos:   opTok.Pos,
		}
	}
	return expr, nil
}

func (p *parser) parseTerm() (Node, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curr.Kind == TokenStar || p.curr.Kind == TokenSlash {
		opTok := p.advance()
		op := OpMul
		if opTok.Kind == TokenSlash {
			op = OpDiv
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{
			Op:    op,
			Left:  expr,
			Right: right,
			Pos:   opTok.Pos,
		}
	}
	return expr, nil
}

func (p *parser) parseFactor() (Node, error) {
	switch p.curr.Kind {

	case TokenNumber:
		tok := p.advance()
		value, err := parseNumber(tok.Text)
		if err != nil {
			return nil, &ParseError{
				Expected: "number",
				Found:    tok,
			}
		}
		return &NumberLiteral{
			Value: value,
			Pos:   tok.Pos,
		}, nil

	case TokenIdentifier:
		if p.peek().Kind == TokenLParen {
			if node, ok, err := p.parseCall(); ok {
				return node, err
			}
		}
		tok := p.advance()
		return &Identifier{
			Name: tok.Text,
			Pos:  tok.Pos,
		}, nil

	case TokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRParen, `")" after expression`); err != nil {
			return nil, err
		}
		return expr, nil

	}

	return nil, p.fail("expression")
}

// parseCall handles the builtin call forms. ok is false when the identifier names no builtin.
func (p *parser) parseCall() (node Node, ok bool, err error) {
	name := p.curr.Text
	pos := p.curr.Pos

	switch {

	case name == "Tensor":
		p.advance()
		p.advance()
		data, err := p.parseNumberList("tensor data")
		if err != nil {
			return nil, true, err
		}
		if _, err := p.consume(TokenComma, `"," between tensor data and shape`); err != nil {
			return nil, true, err
		}
		shape, err := p.parseShape()
		if err != nil {
			return nil, true, err
		}
		if _, err := p.consume(TokenRParen, `")" after tensor shape`); err != nil {
			return nil, true, err
		}
		return &TensorLiteral{
			Data:  data,
			Shape: shape,
			Pos:   pos,
		}, true, nil

	case name == "zeros":
		p.advance()
		p.advance()
		shape, err := p.parseShape()
		if err != nil {
			return nil, true, err
		}
		if _, err := p.consume(TokenRParen, `")" after shape`); err != nil {
			return nil, true, err
		}
		return &Zeros{
			Shape: shape,
			Pos:   pos,
		}, true, nil

	case tensorOperators[name] != 0:
		p.advance()
		p.advance()
		left, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		if _, err := p.consume(TokenComma, `"," between `+name+" operands"); err != nil {
			return nil, true, err
		}
		right, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		if _, err := p.consume(TokenRParen, `")" after `+name+" operands"); err != nil {
			return nil, true, err
		}
		return &TensorOp{
			Op:    tensorOperators[name],
			Left:  left,
			Right: right,
			Pos:   pos,
		}, true, nil

	case tensorFunctions[name] != 0:
		p.advance()
		p.advance()
		arg, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		if _, err := p.consume(TokenRParen, `")" after `+name+" argument"); err != nil {
			return nil, true, err
		}
		return &TensorFunc{
			Func: tensorFunctions[name],
			Arg:  arg,
			Pos:  pos,
		}, true, nil

	}

	return nil, false, nil
}

// parseNumberList parses `[n, -n, ...]`.
func (p *parser) parseNumberList(what string) ([]float64, error) {
	if _, err := p.consume(TokenLBracket, `"[" to open `+what); err != nil {
		return nil, err
	}
	var ret []float64
	for p.curr.Kind != TokenRBracket {
		if len(ret) > 0 {
			if _, err := p.consume(TokenComma, `"," or "]" in `+what); err != nil {
				return nil, err
			}
		}
		negative := p.match(TokenMinus)
		tok, err := p.consume(TokenNumber, "number in "+what)
		if err != nil {
			return nil, err
		}
		value, err := parseNumber(tok.Text)
		if err != nil {
			return nil, &ParseError{
				Expected: "number in " + what,
				Found:    tok,
			}
		}
		if negative {
			value = -value
		}
		ret = append(ret, value)
	}
	p.advance()
	return ret, nil
}

func (p *parser) parseShape() ([]int, error) {
	if _, err := p.consume(TokenLBracket, `"[" to open tensor shape`); err != nil {
		return nil, err
	}
	var ret []int
	for p.curr.Kind != TokenRBracket {
		if len(ret) > 0 {
			if _, err := p.consume(TokenComma, `"," or "]" in tensor shape`); err != nil {
				return nil, err
			}
		}
		negative := p.match(TokenMinus)
		tok, err := p.consume(TokenNumber, "dimension in tensor shape")
		if err != nil {
			return nil, err
		}
		if strings.Contains(tok.Text, ".") {
			return nil, &ParseError{
				Expected: "integer dimension",
				Found:    tok,
			}
		}
		dim, err := strconv.Atoi(tok.Text)
		if err != nil {
			return nil, &ParseError{
				Expected: "integer dimension",
				Found:    tok,
			}
		}
		if negative {
			dim = -dim
		}
		ret = append(ret, dim)
	}
	p.advance()
	return ret, nil
}

// parseNumber rounds literals beyond the float64 range to ±Inf.
func parseNumber(text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if errors.Is(err, strconv.ErrRange) {
		return value, nil
	}
	return value, err
}
