package tensors

import (
	"slices"
)

func MatMul(a, b *Tensor) (*Tensor, error) {
	if a.Rank() != 2 || b.Rank() != 2 || a.shape[1] != b.shape[0] {
		return nil, &ShapeMismatchError{
			Op:    "matmul",
			Left:  a.Shape(),
			Right: b.Shape(),
		}
	}
	rows, inner, cols := a.shape[0], a.shape[1], b.shape[1]
	data := make([]float64, rows*cols)
	for i := range rows {
		for k := range inner {
			x := a.data[i*inner+k]
			for j := range cols {
				data[i*cols+j] += x * b.data[k*cols+j]
			}
		}
	}
	return &Tensor{
		shape: []int{rows, cols},
		data:  data,
	}, nil
}

// Transpose reverses the axes. A rank-1 tensor is returned unchanged.
func (t *Tensor) Transpose() *Tensor {
	shape := t.Shape()
	slices.Reverse(shape)
	ret := &Tensor{
		shape: shape,
		data:  make([]float64, len(t.data)),
	}
	src := make([]int, len(t.shape))
	dst := make([]int, len(t.shape))
	for i, v := range t.data {
		// src is the multi-index of element i
		rem := i
		for axis := len(t.shape) - 1; axis >= 0; axis-- {
			src[axis] = rem % t.shape[axis]
			rem /= t.shape[axis]
		}
		for axis := range src {
			dst[len(src)-1-axis] = src[axis]
		}
		offset, _ := ret.offset(dst)
		ret.data[offset] = v
	}
	return ret
}
