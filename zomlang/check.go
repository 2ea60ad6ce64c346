package zomlang

import "fmt"

// Check reports the first undefined variable or kind mismatch in program without evaluating it.
func Check(program Program) error {
	return NewEnv().Check(program)
}

// Check is like the package-level Check, with the bindings of e already in scope.
// Shapes are not checked.
func (e *Env) Check(program Program) error {
	kinds := make(map[string]ValueKind, e.Len())
	for name, v := range e.vars {
		kinds[name] = v.Kind()
	}
	c := checker{kinds: kinds}
	for _, stmt := range program {
		if _, err := c.kindOf(stmt); err != nil {
			return err
		}
	}
	return nil
}

type checker struct {
	kinds map[string]ValueKind
}

func (c checker) kindOf(node Node) (ValueKind, error) {
	switch node := node.(type) {

	case *NumberLiteral:
		return KindScalar, nil

	case *Identifier:
		kind, ok := c.kinds[node.Name]
		if !ok {
			return 0, &UndefinedVariableError{
				Name: node.Name,
				Pos:  node.Pos,
			}
		}
		return kind, nil

	case *Assignment:
		kind, err := c.kindOf(node.Value)
		if err != nil {
			return 0, err
		}
		c.kinds[node.Name] = kind
		return kind, nil

	case *BinaryOp:
		l, r, err := c.operands(node.Left, node.Right)
		if err != nil {
			return 0, err
		}
		switch {
		case l == KindScalar && r == KindScalar:
			return KindScalar, nil
		case l == KindTensor && r == KindTensor && node.Op != OpDiv:
			return KindTensor, nil
		}
		return 0, &TypeError{
			Op:       node.Op.String(),
			Operands: []ValueKind{l, r},
			Pos:      node.Pos,
		}

	case *TensorLiteral, *Zeros:
		return KindTensor, nil

	case *TensorOp:
		l, r, err := c.operands(node.Left, node.Right)
		if err != nil {
			return 0, err
		}
		if l != KindTensor || r != KindTensor {
			return 0, &TypeError{
				Op:       node.Op.String(),
				Operands: []ValueKind{l, r},
				Pos:      node.Pos,
			}
		}
		return KindTensor, nil

	case *TensorFunc:
		arg, err := c.kindOf(node.Arg)
		if err != nil {
			return 0, err
		}
		if arg != KindTensor {
			return 0, &TypeError{
				Op:       node.Func.String(),
				Operands: []ValueKind{arg},
				Pos:      node.Pos,
			}
		}
		switch node.Func {
		case FuncMean, FuncVariance, FuncStd:
			return KindScalar, nil
		}
		return KindTensor, nil

	}

	return 0, fmt.Errorf("unknown node type %T", node)
}

func (c checker) operands(left, right Node) (ValueKind, ValueKind, error) {
	l, err := c.kindOf(left)
	if err != nil {
		return 0, 0, err
	}
	r, err := c.kindOf(right)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}
