package tensors

func Add(a, b *Tensor) (*Tensor, error) {
	return zipWith("add", a, b, func(x, y float64) float64 {
		return x + y
	})
}

func Sub(a, b *Tensor) (*Tensor, error) {
	return zipWith("subtract", a, b, func(x, y float64) float64 {
		return x - y
	})
}

// Mul is the elementwise (Hadamard) product.
func Mul(a, b *Tensor) (*Tensor, error) {
	return zipWith("multiply", a, b, func(x, y float64) float64 {
		return x * y
	})
}

func zipWith(op string, a, b *Tensor, fn func(x, y float64) float64) (*Tensor, error) {
	if !a.SameShape(b) {
		return nil, &ShapeMismatchError{
			Op:    op,
			Left:  a.Shape(),
			Right: b.Shape(),
		}
	}
	data := make([]float64, len(a.data))
	for i := range data {
		data[i] = fn(a.data[i], b.data[i])
	}
	return &Tensor{
		shape: a.Shape(),
		data:  data,
	}, nil
}

func (t *Tensor) Map(fn func(float64) float64) *Tensor {
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = fn(v)
	}
	return &Tensor{
		shape: t.Shape(),
		data:  data,
	}
}
