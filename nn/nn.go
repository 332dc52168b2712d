// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network modules whose forward passes create
// tensors, together with device-safe variants of them.
//
// Example:
//
//	model := nn.NewDeviceSafe(ctx)
//	nn.MoveTo[float32](model, cuda)
//	out, err := model.Forward(ctx, x) // out.Device() == cuda
package nn

import (
	"context"

	"github.com/born-ml/placement/internal/nn"
	"github.com/born-ml/placement/placement"
	"github.com/born-ml/placement/tensor"
)

// Module is the base interface for neural network components.
type Module[T tensor.DType] = nn.Module[T]

// Parameter is a named trainable tensor.
type Parameter[T tensor.DType] = nn.Parameter[T]

// NoisyAffine computes scale * x + eps with eps created inside Forward.
type NoisyAffine = nn.NoisyAffine

// ForwardDoc is the documentation attached to NoisyAffine's forward op.
const ForwardDoc = nn.ForwardDoc

// NewParameter creates a trainable parameter.
func NewParameter[T tensor.DType](name string, t *tensor.Tensor[T]) *Parameter[T] {
	return nn.NewParameter(name, t)
}

// NewNoisyAffine creates a NoisyAffine whose noise follows ambient placement.
func NewNoisyAffine(ctx context.Context) *NoisyAffine {
	return nn.NewNoisyAffine(ctx)
}

// NewDeviceSafe creates a NoisyAffine whose noise follows the input's device.
func NewDeviceSafe(ctx context.Context, opts ...placement.Option) *NoisyAffine {
	return nn.NewDeviceSafe(ctx, opts...)
}

// MoveTo places every parameter of m on d.
func MoveTo[T tensor.DType](m Module[T], d tensor.Device) {
	nn.MoveTo(m, d)
}
