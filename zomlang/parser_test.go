package zomlang

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func sexpr(node Node) string {
	switch node := node.(type) {
	case *NumberLiteral:
		return fmt.Sprint(node.Value)
	case *Identifier:
		return node.Name
	case *BinaryOp:
		return fmt.Sprintf("(%s %s %s)", node.Op, sexpr(node.Left), sexpr(node.Right))
	case *Assignment:
		return fmt.Sprintf("(var %s %s)", node.Name, sexpr(node.Value))
	case *TensorLiteral:
		return fmt.Sprintf("(tensor %v %v)", node.Data, node.Shape)
	case *Zeros:
		return fmt.Sprintf("(zeros %v)", node.Shape)
	case *TensorOp:
		return fmt.Sprintf("(%s %s %s)", node.Op, sexpr(node.Left), sexpr(node.Right))
	case *TensorFunc:
		return fmt.Sprintf("(%s %s)", node.Func, sexpr(node.Arg))
	}
	return "?"
}

func sexprs(program Program) string {
	parts := make([]string, 0, len(program))
	for _, stmt := range program {
		parts = append(parts, sexpr(stmt))
	}
	return strings.Join(parts, " ")
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1;", "1"},
		{"1 + 2 * 3;", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3;", "(* (+ 1 2) 3)"},
		{"1 - 2 - 3;", "(- (- 1 2) 3)"},
		{"8 / 4 / 2;", "(/ (/ 8 4) 2)"},
		{"1 * 2 + 3 * 4;", "(+ (* 1 2) (* 3 4))"},
		{"((x));", "x"},
		{"var x = (42 + 5) * 2 - 3 / 1.5;", "(var x (- (* (+ 42 5) 2) (/ 3 1.5)))"},
		{"var a = 1; var b = a; b;", "(var a 1) (var b a) b"},
		{"Tensor([1.0, 2.0, 3.0, 4.0], [2, 2]);", "(tensor [1 2 3 4] [2 2])"},
		{"Tensor([-1, 2.5], [2]);", "(tensor [-1 2.5] [2])"},
		{"Tensor([], []);", "(tensor [] [])"},
		{"Tensor([1], [-1]);", "(tensor [1] [-1])"},
		{"zeros([2, 3]);", "(zeros [2 3])"},
		{"add(t1, t2);", "(add t1 t2)"},
		{"matmul(a, transpose(b));", "(matmul a (transpose b))"},
		{"mean(x) + std(x) * variance(x);", "(+ (mean x) (* (std x) (variance x)))"},
		{"exp(log(add(a, sub(b, mul(c, d)))));", "(exp (log (add a (sub b (mul c d)))))"},
		{"var add = 1; add + 1;", "(var add 1) (+ add 1)"},
		{"foo;", "foo"},
		{"", ""},
	}
	for _, test := range tests {
		program, err := Parse(test.input)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if got := sexprs(program); got != test.expected {
			t.Fatalf("%q: got %s, want %s", test.input, got, test.expected)
		}
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		found    TokenKind
	}{
		{"1 +;", "expression", TokenSemicolon},
		{"(1 + 2;", `")" after expression`, TokenSemicolon},
		{"1 + 2", `";" after expression`, TokenEOF},
		{"var x = 1", `";" after variable declaration`, TokenEOF},
		{"var = 1;", "variable name after var", TokenAssign},
		{"var x 1;", `"=" after variable name`, TokenNumber},
		{"1 2;", `";" after expression`, TokenNumber},
		{");", "expression", TokenRParen},
		{"Tensor(1, [2]);", `"[" to open tensor data`, TokenNumber},
		{"Tensor([1 2], [2]);", `"," or "]" in tensor data`, TokenNumber},
		{"Tensor([1, 2]);", `"," between tensor data and shape`, TokenRParen},
		{"Tensor([1, 2], [2.5]);", "integer dimension", TokenNumber},
		{"Tensor([1, 2], [2]; ", `")" after tensor shape`, TokenSemicolon},
		{"Tensor([1, x], [2]);", "number in tensor data", TokenIdentifier},
		{"add(a);", `"," between add operands`, TokenRParen},
		{"exp(a, b);", `")" after exp argument`, TokenComma},
		{"zeros(2);", `"[" to open tensor shape`, TokenNumber},
	}
	for _, test := range tests {
		program, err := Parse(test.input)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%q: got %v", test.input, err)
		}
		if program != nil {
			t.Fatalf("%q: partial program %v", test.input, program)
		}
		if parseErr.Expected != test.expected || parseErr.Found.Kind != test.found {
			t.Fatalf("%q: got %v", test.input, parseErr)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("var x = 1;\nvar y = (x + ;")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v", err)
	}
	if parseErr.Position() != (Pos{Offset: 24, Line: 2, Column: 14}) {
		t.Fatalf("got %+v", parseErr.Position())
	}
}

func TestParseLexError(t *testing.T) {
	_, err := Parse("var x = 1 % 2;")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
}

func TestParseDeterministic(t *testing.T) {
	src := `
	var t1 = Tensor([1.0, 2.0, 3.0, 4.0], [2, 2]);
	var x = (42 + 5) * 2 - 3 / 1.5;
	var t2 = add(t1, matmul(t1, transpose(t1)));
	mean(t2) + x;
	`
	a, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("got %s and %s", sexprs(a), sexprs(b))
	}
}

func TestParseTokensWithoutEOF(t *testing.T) {
	tokens, err := Tokenize("1 + 2;")
	if err != nil {
		t.Fatal(err)
	}
	program, err := ParseTokens(tokens[:len(tokens)-1])
	if err != nil {
		t.Fatal(err)
	}
	if got := sexprs(program); got != "(+ 1 2)" {
		t.Fatalf("got %s", got)
	}

	program, err = ParseTokens(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(program) != 0 {
		t.Fatalf("got %v", program)
	}
}
