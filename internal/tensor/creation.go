package tensor

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// Every creation routine places its result using, in order: an explicit
// OnDevice option, the device carried by ctx (WithDevice), and finally the
// ambient DefaultDevice.

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](ctx, tensor.Shape{3, 4})
func Zeros[T DType](ctx context.Context, shape Shape, opts ...Option) (*Tensor[T], error) {
	o := resolveOptions(ctx, opts)
	return newTensor[T](shape, o.device)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](ctx context.Context, shape Shape, opts ...Option) (*Tensor[T], error) {
	return Full[T](ctx, shape, 1, opts...)
}

// Full creates a tensor filled with value.
func Full[T DType](ctx context.Context, shape Shape, value T, opts ...Option) (*Tensor[T], error) {
	t, err := Zeros[T](ctx, shape, opts...)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Scalar creates a 0-D tensor holding value.
func Scalar[T DType](ctx context.Context, value T, opts ...Option) *Tensor[T] {
	o := resolveOptions(ctx, opts)
	return &Tensor[T]{data: []T{value}, shape: Shape{}, device: o.device}
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T DType](ctx context.Context, data []T, shape Shape, opts ...Option) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	t, err := Zeros[T](ctx, shape, opts...)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Randn creates a tensor with values drawn from the standard normal
// distribution using the Box-Muller transform. Only float types are supported.
//
// Example:
//
//	eps, err := tensor.Randn[float32](ctx, tensor.Shape{1})
func Randn[T DType](ctx context.Context, shape Shape, opts ...Option) (*Tensor[T], error) {
	o := resolveOptions(ctx, opts)
	if !inferDataType[T]().IsFloat() {
		return nil, fmt.Errorf("randn: %w: %s", ErrUnsupportedDType, inferDataType[T]())
	}
	t, err := newTensor[T](shape, o.device)
	if err != nil {
		return nil, err
	}

	uniform := rand.Float64 //nolint:gosec // G404: statistical sampling, not crypto
	if o.rng != nil {
		uniform = o.rng.Float64
	}

	for i := 0; i < len(t.data); i += 2 {
		u1 := uniform()
		for u1 == 0 {
			u1 = uniform()
		}
		u2 := uniform()
		r := math.Sqrt(-2.0 * math.Log(u1))
		t.data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(t.data) {
			t.data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return t, nil
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
// Only float types are supported.
func Rand[T DType](ctx context.Context, shape Shape, opts ...Option) (*Tensor[T], error) {
	o := resolveOptions(ctx, opts)
	if !inferDataType[T]().IsFloat() {
		return nil, fmt.Errorf("rand: %w: %s", ErrUnsupportedDType, inferDataType[T]())
	}
	t, err := newTensor[T](shape, o.device)
	if err != nil {
		return nil, err
	}

	uniform := rand.Float64 //nolint:gosec // G404: statistical sampling, not crypto
	if o.rng != nil {
		uniform = o.rng.Float64
	}
	for i := range t.data {
		t.data[i] = T(uniform())
	}
	return t, nil
}

// Arange creates a 1-D tensor with values start, start+1, ... up to end (exclusive).
//
// Example:
//
//	t, _ := tensor.Arange[int32](ctx, 0, 10) // [0, 1, ..., 9]
func Arange[T DType](ctx context.Context, start, end T, opts ...Option) (*Tensor[T], error) {
	n := int(math.Ceil(float64(end) - float64(start)))
	if n <= 0 {
		return nil, fmt.Errorf("arange: %w: end %v must be greater than start %v", ErrInvalidShape, end, start)
	}
	t, err := Zeros[T](ctx, Shape{n}, opts...)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = start + T(i)
	}
	return t, nil
}
