// Package nn implements neural network modules whose forward passes create
// tensors and therefore depend on device placement.
package nn

import (
	"context"

	"github.com/born-ml/placement/internal/tensor"
)

// Module is the base interface for neural network components.
//
// Forward receives a context because modules may create new tensors (noise,
// masks, buffers); the context decides where those land when the module does
// not name a device itself.
type Module[T tensor.DType] interface {
	// Forward computes the output of the module for input x.
	Forward(ctx context.Context, x *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter[T]
}

// MoveTo places every parameter of m on d.
func MoveTo[T tensor.DType](m Module[T], d tensor.Device) {
	for _, p := range m.Parameters() {
		p.To(d)
	}
}

// DeviceOf returns the device of m's first parameter, or false if m has none.
func DeviceOf[T tensor.DType](m Module[T]) (tensor.Device, bool) {
	params := m.Parameters()
	if len(params) == 0 {
		return tensor.Device{}, false
	}
	return params[0].Device(), true
}
