package tensors

import (
	"fmt"
)

type ShapeError struct {
	Shape  []int
	Len    int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error: %s (shape %v, %d elements)", e.Reason, e.Shape, e.Len)
}

type ShapeMismatchError struct {
	Op    string
	Left  []int
	Right []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: cannot %s shapes %v and %v", e.Op, e.Left, e.Right)
}

type IndexError struct {
	Indices []int
	Shape   []int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %v out of range for shape %v", e.Indices, e.Shape)
}
