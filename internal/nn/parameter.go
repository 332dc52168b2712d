package nn

import (
	"github.com/born-ml/placement/internal/tensor"
)

// Parameter is a named trainable tensor.
//
// Example:
//
//	scale := nn.NewParameter("scale", tensor.Scalar[float32](ctx, 1))
//	scale.To(cuda)
type Parameter[T tensor.DType] struct {
	name   string
	tensor *tensor.Tensor[T]
}

// NewParameter creates a new trainable parameter and marks t as requiring gradients.
func NewParameter[T tensor.DType](name string, t *tensor.Tensor[T]) *Parameter[T] {
	return &Parameter[T]{
		name:   name,
		tensor: t.RequireGrad(),
	}
}

// Name returns the parameter name.
func (p *Parameter[T]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[T]) Tensor() *tensor.Tensor[T] {
	return p.tensor
}

// Device returns the device the parameter lives on.
func (p *Parameter[T]) Device() tensor.Device {
	return p.tensor.Device()
}

// To moves the parameter to d in place.
func (p *Parameter[T]) To(d tensor.Device) {
	if p.tensor.Device() == d {
		return
	}
	p.tensor = p.tensor.To(d).RequireGrad()
}
