package zomlang

// Node is one node of a parsed program. The set of implementations is closed.
type Node interface {
	Position() Pos
	node()
}

// Program is the ordered list of top-level statements.
type Program []Node

type NumberLiteral struct {
	Value float64
	Pos   Pos
}

type Identifier struct {
	Name string
	Pos  Pos
}

type BinaryOperator uint8

const (
	OpAdd BinaryOperator = iota + 1
	OpSub
	OpMul
	OpDiv
)

func (o BinaryOperator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

type BinaryOp struct {
	Op    BinaryOperator
	Left  Node
	Right Node
	Pos   Pos
}

// Assignment is `var Name = Value;`.
type Assignment struct {
	Name  string
	Value Node
	Pos   Pos
}

type TensorLiteral struct {
	Data  []float64
	Shape []int
	Pos   Pos
}

type Zeros struct {
	Shape []int
	Pos   Pos
}

type TensorOperator uint8

const (
	TensorAdd TensorOperator = iota + 1
	TensorSub
	TensorMul
	TensorMatMul
)

var tensorOperators = map[string]TensorOperator{
	"add":    TensorAdd,
	"sub":    TensorSub,
	"mul":    TensorMul,
	"matmul": TensorMatMul,
}

func (o TensorOperator) String() string {
	switch o {
	case TensorAdd:
		return "add"
	case TensorSub:
		return "sub"
	case TensorMul:
		return "mul"
	case TensorMatMul:
		return "matmul"
	}
	return "?"
}

type TensorOp struct {
	Op    TensorOperator
	Left  Node
	Right Node
	Pos   Pos
}

type TensorFunction uint8

const (
	FuncTranspose TensorFunction = iota + 1
	FuncExp
	FuncLog
	FuncMean
	FuncVariance
	FuncStd
)

var tensorFunctions = map[string]TensorFunction{
	"transpose": FuncTranspose,
	"exp":       FuncExp,
	"log":       FuncLog,
	"mean":      FuncMean,
	"variance":  FuncVariance,
	"std":       FuncStd,
}

func (f TensorFunction) String() string {
	switch f {
	case FuncTranspose:
		return "transpose"
	case FuncExp:
		return "exp"
	case FuncLog:
		return "log"
	case FuncMean:
		return "mean"
	case FuncVariance:
		return "variance"
	case FuncStd:
		return "std"
	}
	return "?"
}

type TensorFunc struct {
	Func TensorFunction
	Arg  Node
	Pos  Pos
}

func (n *NumberLiteral) Position() Pos { return n.Pos }
func (n *Identifier) Position() Pos    { return n.Pos }
func (n *BinaryOp) Position() Pos      { return n.Pos }
func (n *Assignment) Position() Pos    { return n.Pos }
func (n *TensorLiteral) Position() Pos { return n.Pos }
func (n *Zeros) Position() Pos         { return n.Pos }
func (n *TensorOp) Position() Pos      { return n.Pos }
func (n *TensorFunc) Position() Pos    { return n.Pos }

func (*NumberLiteral) node() {}
func (*Identifier) node()    {}
func (*BinaryOp) node()      {}
func (*Assignment) node()    {}
func (*TensorLiteral) node() {}
func (*Zeros) node()         {}
func (*TensorOp) node()      {}
func (*TensorFunc) node()    {}
