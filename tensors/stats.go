package tensors

import (
	"math"

	"github.com/samber/lo"
)

func (t *Tensor) Exp() *Tensor {
	return t.Map(math.Exp)
}

func (t *Tensor) Log() *Tensor {
	return t.Map(math.Log)
}

func (t *Tensor) Sum() float64 {
	return lo.Sum(t.data)
}

func (t *Tensor) Mean() float64 {
	return t.Sum() / float64(len(t.data))
}

// Variance is the population variance.
func (t *Tensor) Variance() float64 {
	mean := t.Mean()
	return lo.SumBy(t.data, func(v float64) float64 {
		d := v - mean
		return d * d
	}) / float64(len(t.data))
}

func (t *Tensor) StdDev() float64 {
	return math.Sqrt(t.Variance())
}
