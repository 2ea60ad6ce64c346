package debugs

import (
	"fmt"

	"github.com/reusee/zom/tensors"
	"github.com/reusee/zom/zomlang"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts a zom binding. Tensors become dicts so scripts can index into them.
func toStarlarkValue(v zomlang.Value) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case zomlang.Scalar:
		return starlark.Float(v)
	case zomlang.TensorValue:
		return tensorDict(v.Tensor)
	}
	panic(fmt.Errorf("unsupported zom value %T", v))
}

func tensorDict(t *tensors.Tensor) starlark.Value {
	if t == nil {
		return starlark.None
	}
	shape := t.Shape()
	dims := make([]starlark.Value, len(shape))
	for i, dim := range shape {
		dims[i] = starlark.MakeInt(dim)
	}
	data := t.Data()
	elems := make([]starlark.Value, len(data))
	for i, elem := range data {
		elems[i] = starlark.Float(elem)
	}
	d := starlark.NewDict(2)
	d.SetKey(starlark.String("shape"), starlark.NewList(dims))
	d.SetKey(starlark.String("data"), starlark.NewList(elems))
	return d
}
