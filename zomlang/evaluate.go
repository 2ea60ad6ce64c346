package zomlang

import (
	"fmt"

	"github.com/reusee/zom/tensors"
)

// Evaluate runs program in a fresh environment and returns the value of the last statement.
// An empty program yields a nil Value.
func Evaluate(program Program) (Value, error) {
	return NewEnv().Evaluate(program)
}

// Evaluate runs program against e, keeping every binding it makes.
func (e *Env) Evaluate(program Program) (Value, error) {
	var result Value
	for _, stmt := range program {
		var err error
		result, err = e.eval(stmt)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (e *Env) eval(node Node) (Value, error) {
	switch node := node.(type) {

	case *NumberLiteral:
		return Scalar(node.Value), nil

	case *Identifier:
		v, ok := e.Get(node.Name)
		if !ok {
			return nil, &UndefinedVariableError{
				Name: node.Name,
				Pos:  node.Pos,
			}
		}
		return v, nil

	case *Assignment:
		v, err := e.eval(node.Value)
		if err != nil {
			return nil, err
		}
		e.Set(node.Name, v)
		return v, nil

	case *BinaryOp:
		return e.evalBinaryOp(node)

	case *TensorLiteral:
		t, err := tensors.New(node.Data, node.Shape)
		if err != nil {
			return nil, WithPos(err, node.Pos)
		}
		return TensorValue{Tensor: t}, nil

	case *Zeros:
		t, err := tensors.Zeros(node.Shape)
		if err != nil {
			return nil, WithPos(err, node.Pos)
		}
		return TensorValue{Tensor: t}, nil

	case *TensorOp:
		return e.evalTensorOp(node)

	case *TensorFunc:
		return e.evalTensorFunc(node)

	}

	return nil, fmt.Errorf("unknown node type %T", node)
}

func (e *Env) evalOperands(left, right Node) (Value, Value, error) {
	l, err := e.eval(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := e.eval(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (e *Env) evalBinaryOp(node *BinaryOp) (Value, error) {
	l, r, err := e.evalOperands(node.Left, node.Right)
	if err != nil {
		return nil, err
	}

	switch l := l.(type) {

	case Scalar:
		if r, ok := r.(Scalar); ok {
			switch node.Op {
			case OpAdd:
				return l + r, nil
			case OpSub:
				return l - r, nil
			case OpMul:
				return l * r, nil
			case OpDiv:
				// IEEE division, x/0 is ±Inf and 0/0 is NaN
				return l / r, nil
			}
		}

	case TensorValue:
		if r, ok := r.(TensorValue); ok {
			var kernel func(a, b *tensors.Tensor) (*tensors.Tensor, error)
			switch node.Op {
			case OpAdd:
				kernel = tensors.Add
			case OpSub:
				kernel = tensors.Sub
			case OpMul:
				kernel = tensors.Mul
			}
			if kernel != nil {
				t, err := kernel(l.Tensor, r.Tensor)
				if err != nil {
					return nil, WithPos(err, node.Pos)
				}
				return TensorValue{Tensor: t}, nil
			}
		}

	}

	return nil, &TypeError{
		Op:       node.Op.String(),
		Operands: []ValueKind{l.Kind(), r.Kind()},
		Pos:      node.Pos,
	}
}

func (e *Env) evalTensorOp(node *TensorOp) (Value, error) {
	l, r, err := e.evalOperands(node.Left, node.Right)
	if err != nil {
		return nil, err
	}
	lt, lok := l.(TensorValue)
	rt, rok := r.(TensorValue)
	if !lok || !rok {
		return nil, &TypeError{
			Op:       node.Op.String(),
			Operands: []ValueKind{l.Kind(), r.Kind()},
			Pos:      node.Pos,
		}
	}

	var t *tensors.Tensor
	switch node.Op {
	case TensorAdd:
		t, err = tensors.Add(lt.Tensor, rt.Tensor)
	case TensorSub:
		t, err = tensors.Sub(lt.Tensor, rt.Tensor)
	case TensorMul:
		t, err = tensors.Mul(lt.Tensor, rt.Tensor)
	case TensorMatMul:
		t, err = tensors.MatMul(lt.Tensor, rt.Tensor)
	default:
		return nil, fmt.Errorf("unknown tensor operator %v", node.Op)
	}
	if err != nil {
		return nil, WithPos(err, node.Pos)
	}
	return TensorValue{Tensor: t}, nil
}

func (e *Env) evalTensorFunc(node *TensorFunc) (Value, error) {
	arg, err := e.eval(node.Arg)
	if err != nil {
		return nil, err
	}
	tv, ok := arg.(TensorValue)
	if !ok {
		return nil, &TypeError{
			Op:       node.Func.String(),
			Operands: []ValueKind{arg.Kind()},
			Pos:      node.Pos,
		}
	}
	t := tv.Tensor

	switch node.Func {
	case FuncTranspose:
		return TensorValue{Tensor: t.Transpose()}, nil
	case FuncExp:
		return TensorValue{Tensor: t.Exp()}, nil
	case FuncLog:
		return TensorValue{Tensor: t.Log()}, nil
	case FuncMean:
		return Scalar(t.Mean()), nil
	case FuncVariance:
		return Scalar(t.Variance()), nil
	case FuncStd:
		return Scalar(t.StdDev()), nil
	}
	return nil, fmt.Errorf("unknown tensor function %v", node.Func)
}
