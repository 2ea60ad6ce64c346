package zomlang

import (
	"fmt"
	"strings"
)

type LexError struct {
	Char rune
	Pos  Pos
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Pos)
}

func (e *LexError) Position() Pos {
	return e.Pos
}

type ParseError struct {
	Expected string
	Found    Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, found %s at %s", e.Expected, e.Found, e.Found.Pos)
}

func (e *ParseError) Position() Pos {
	return e.Found.Pos
}

type UndefinedVariableError struct {
	Name string
	Pos  Pos
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %s at %s", e.Name, e.Pos)
}

func (e *UndefinedVariableError) Position() Pos {
	return e.Pos
}

// TypeError reports an operation applied to operands of the wrong kind.
type TypeError struct {
	Op       string
	Operands []ValueKind
	Pos      Pos
}

func (e *TypeError) Error() string {
	kinds := make([]string, 0, len(e.Operands))
	for _, kind := range e.Operands {
		kinds = append(kinds, kind.String())
	}
	return fmt.Sprintf("type error: cannot apply %s to %s at %s", e.Op, strings.Join(kinds, " and "), e.Pos)
}

func (e *TypeError) Position() Pos {
	return e.Pos
}

// PosError attaches a source position to an error raised outside this package.
type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	return fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos)
}

func (p PosError) Unwrap() error {
	return p.Err
}

func (p PosError) Position() Pos {
	return p.Pos
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
