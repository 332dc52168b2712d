// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"context"

	"github.com/born-ml/placement/internal/tensor"
)

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](ctx context.Context, shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.Zeros[T](ctx, shape, opts...)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](ctx context.Context, shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.Ones[T](ctx, shape, opts...)
}

// Full creates a tensor filled with value.
func Full[T DType](ctx context.Context, shape Shape, value T, opts ...Option) (*Tensor[T], error) {
	return tensor.Full[T](ctx, shape, value, opts...)
}

// Scalar creates a 0-D tensor.
func Scalar[T DType](ctx context.Context, value T, opts ...Option) *Tensor[T] {
	return tensor.Scalar[T](ctx, value, opts...)
}

// FromSlice creates a tensor from a copy of data.
func FromSlice[T DType](ctx context.Context, data []T, shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.FromSlice[T](ctx, data, shape, opts...)
}

// Randn creates a tensor of standard normal samples (float types only).
func Randn[T DType](ctx context.Context, shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.Randn[T](ctx, shape, opts...)
}

// Rand creates a tensor of uniform samples in [0, 1) (float types only).
func Rand[T DType](ctx context.Context, shape Shape, opts ...Option) (*Tensor[T], error) {
	return tensor.Rand[T](ctx, shape, opts...)
}

// Arange creates the 1-D tensor start, start+1, ..., end-1.
func Arange[T DType](ctx context.Context, start, end T, opts ...Option) (*Tensor[T], error) {
	return tensor.Arange[T](ctx, start, end, opts...)
}
