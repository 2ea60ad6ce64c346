package zomlang

import (
	"github.com/reusee/zom/tensors"
)

// Value is the result of evaluating a node: a Scalar or a TensorValue.
type Value interface {
	Kind() ValueKind
	String() string
	value()
}

type ValueKind uint8

const (
	KindScalar ValueKind = iota + 1
	KindTensor
)

func (k ValueKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindTensor:
		return "tensor"
	}
	return "unknown"
}

type Scalar float64

func (Scalar) Kind() ValueKind { return KindScalar }

func (s Scalar) String() string {
	return tensors.FormatFloat(float64(s))
}

func (Scalar) value() {}

type TensorValue struct {
	Tensor *tensors.Tensor
}

func (TensorValue) Kind() ValueKind { return KindTensor }

func (t TensorValue) String() string {
	return t.Tensor.String()
}

func (TensorValue) value() {}
