package debugs

import (
	"testing"

	"github.com/reusee/zom/tensors"
	"github.com/reusee/zom/zomlang"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	tensor, err := tensors.New([]float64{1, 2}, []int{2, 1})
	if err != nil {
		t.Fatal(err)
	}

	tensorDict := starlark.NewDict(2)
	tensorDict.SetKey(starlark.String("shape"), starlark.NewList([]starlark.Value{
		starlark.MakeInt(2), starlark.MakeInt(1),
	}))
	tensorDict.SetKey(starlark.String("data"), starlark.NewList([]starlark.Value{
		starlark.Float(1), starlark.Float(2),
	}))

	testCases := []struct {
		name     string
		input    zomlang.Value
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"scalar", zomlang.Scalar(2.5), starlark.Float(2.5)},
		{"tensor", zomlang.TensorValue{Tensor: tensor}, tensorDict},
		{"nil tensor", zomlang.TensorValue{}, starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}
}
