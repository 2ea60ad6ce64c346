package tensors

import (
	"slices"
	"strconv"
	"strings"
)

// MaxElements bounds the element count of any tensor.
const MaxElements = 1 << 28

// Tensor is an immutable shaped array of float64 in row-major order.
type Tensor struct {
	shape []int
	data  []float64
}

func New(data []float64, shape []int) (*Tensor, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return nil, err
	}
	return &Tensor{
		shape: slices.Clone(shape),
		data:  slices.Clone(data),
	}, nil
}

func Zeros(shape []int) (*Tensor, error) {
	if err := checkDims(shape, 0); err != nil {
		return nil, err
	}
	return &Tensor{
		shape: slices.Clone(shape),
		data:  make([]float64, elements(shape)),
	}, nil
}

func checkDims(shape []int, n int) error {
	if len(shape) == 0 {
		return &ShapeError{
			Shape:  shape,
			Len:    n,
			Reason: "shape must have at least one dimension",
		}
	}
	count := 1
	for _, dim := range shape {
		if dim <= 0 {
			return &ShapeError{
				Shape:  shape,
				Len:    n,
				Reason: "dimension " + strconv.Itoa(dim) + " is not positive",
			}
		}
		if dim > MaxElements/count {
			return &ShapeError{
				Shape:  shape,
				Len:    n,
				Reason: "shape holds more than " + strconv.Itoa(MaxElements) + " elements",
			}
		}
		count *= dim
	}
	return nil
}

func checkShape(shape []int, n int) error {
	if err := checkDims(shape, n); err != nil {
		return err
	}
	if p := elements(shape); p != n {
		return &ShapeError{
			Shape:  shape,
			Len:    n,
			Reason: "shape holds " + strconv.Itoa(p) + " elements",
		}
	}
	return nil
}

// elements is the element count of a shape accepted by checkDims.
func elements(shape []int) int {
	count := 1
	for _, dim := range shape {
		count *= dim
	}
	return count
}

func (t *Tensor) Shape() []int {
	return slices.Clone(t.shape)
}

func (t *Tensor) Data() []float64 {
	return slices.Clone(t.data)
}

func (t *Tensor) Len() int {
	return len(t.data)
}

func (t *Tensor) Rank() int {
	return len(t.shape)
}

func (t *Tensor) SameShape(other *Tensor) bool {
	return slices.Equal(t.shape, other.shape)
}

func (t *Tensor) Equal(other *Tensor) bool {
	return t.SameShape(other) && slices.Equal(t.data, other.data)
}

func (t *Tensor) At(indices ...int) (float64, error) {
	offset, ok := t.offset(indices)
	if !ok {
		return 0, &IndexError{
			Indices: slices.Clone(indices),
			Shape:   t.Shape(),
		}
	}
	return t.data[offset], nil
}

// offset maps a multi-index to the flat row-major position.
func (t *Tensor) offset(indices []int) (int, bool) {
	if len(indices) != len(t.shape) {
		return 0, false
	}
	offset := 0
	stride := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		idx := indices[i]
		if idx < 0 || idx >= t.shape[i] {
			return 0, false
		}
		offset += idx * stride
		stride *= t.shape[i]
	}
	return offset, true
}

func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteString("Tensor(shape=[")
	for i, dim := range t.shape {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	sb.WriteString("], data=[")
	for i, v := range t.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatFloat(v))
	}
	sb.WriteString("])")
	return sb.String()
}

// FormatFloat always keeps a fractional part for finite integral values.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
