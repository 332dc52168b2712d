package tensor

import "github.com/born-ml/placement/internal/parallel"

// Add performs element-wise addition with broadcasting.
//
// Both operands must be on the same device.
//
// Example:
//
//	a, _ := tensor.Ones[float32](ctx, tensor.Shape{3, 1})
//	b, _ := tensor.Ones[float32](ctx, tensor.Shape{3, 5})
//	c, err := a.Add(b) // Shape: [3, 5]
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return binary("add", t, other, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return binary("sub", t, other, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return binary("mul", t, other, func(x, y T) T { return x * y })
}

// Div performs element-wise division with broadcasting.
// Integer division by zero panics, as in Go.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	return binary("div", t, other, func(x, y T) T { return x / y })
}

// AddScalar adds s to every element. The result stays on t's device.
func (t *Tensor[T]) AddScalar(s T) *Tensor[T] {
	return unary(t, func(x T) T { return x + s })
}

// MulScalar multiplies every element by s. The result stays on t's device.
func (t *Tensor[T]) MulScalar(s T) *Tensor[T] {
	return unary(t, func(x T) T { return x * s })
}

func unary[T DType](t *Tensor[T], op func(T) T) *Tensor[T] {
	out := &Tensor[T]{
		data:   make([]T, len(t.data)),
		shape:  t.shape.Clone(),
		device: t.device,
	}
	parallel.Range(len(t.data), func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = op(t.data[i])
		}
	}, parallel.DefaultConfig())
	return out
}

// binary checks placement and shapes, then applies op element-wise.
func binary[T DType](name string, a, b *Tensor[T], op func(T, T) T) (*Tensor[T], error) {
	if a.device != b.device {
		return nil, &DeviceMismatchError{Op: name, Left: a.device, Right: b.device}
	}

	outShape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	out := &Tensor[T]{
		data:   make([]T, outShape.NumElements()),
		shape:  outShape,
		device: a.device,
	}

	// Fast path: identical shapes need no index mapping.
	if a.shape.Equal(b.shape) {
		parallel.Range(len(out.data), func(start, end int) {
			for i := start; i < end; i++ {
				out.data[i] = op(a.data[i], b.data[i])
			}
		}, parallel.DefaultConfig())
		return out, nil
	}

	aStrides, bStrides := a.shape.Strides(), b.shape.Strides()
	parallel.Range(len(out.data), func(start, end int) {
		for i := start; i < end; i++ {
			ai := broadcastIndex(i, outShape, a.shape, aStrides)
			bi := broadcastIndex(i, outShape, b.shape, bStrides)
			out.data[i] = op(a.data[ai], b.data[bi])
		}
	}, parallel.DefaultConfig())
	return out, nil
}
