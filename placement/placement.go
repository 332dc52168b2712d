// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package placement keeps tensors created inside a function on the device of
// the function's inputs.
//
// A function that creates tensors without naming a device (noise, masks,
// scratch buffers) normally gets them on the ambient default device, usually
// the CPU. Once its inputs live on an accelerator, combining the two fails
// with tensor.ErrDeviceMismatch. Wrapping the function fixes that:
//
//	forward := placement.EnsureDevice(func(ctx context.Context, args ...any) (*tensor.Tensor[float32], error) {
//	    x := args[0].(*tensor.Tensor[float32])
//	    eps, err := tensor.Randn[float32](ctx, tensor.Shape{1}) // on x.Device()
//	    if err != nil {
//	        return nil, err
//	    }
//	    return x.Add(eps)
//	})
//
// EnsureDevice threads the device through the context and is safe for
// concurrent use. EnsureDefaultDevice instead switches the process-wide
// default for the duration of the call and restores it afterwards; concurrent
// calls share that global.
package placement

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/born-ml/placement/internal/placement"
	"github.com/born-ml/placement/tensor"
)

// Devicer is implemented by values that live on a device.
type Devicer = placement.Devicer

// Func is the function shape the wrappers accept.
type Func[R any] = placement.Func[R]

// Op is a Func with a name and documentation that survive wrapping.
type Op[R any] = placement.Op[R]

// Option configures a wrapper.
type Option = placement.Option

// Metrics counts wrapped calls.
type Metrics = placement.Metrics

// Wrapping modes reported in logs and metrics.
const (
	ModeContext = placement.ModeContext
	ModeAmbient = placement.ModeAmbient
)

// EnsureDevice wraps fn so tensors it creates land on the device of its first
// device-bearing argument, via the context.
func EnsureDevice[R any](fn Func[R], opts ...Option) Func[R] {
	return placement.EnsureDevice(fn, opts...)
}

// EnsureDefaultDevice wraps fn so the ambient default device follows its first
// device-bearing argument for the duration of each call.
func EnsureDefaultDevice[R any](fn Func[R], opts ...Option) Func[R] {
	return placement.EnsureDefaultDevice(fn, opts...)
}

// FirstDevice returns the device of the first argument implementing Devicer.
func FirstDevice(args ...any) (tensor.Device, bool) {
	return placement.FirstDevice(args...)
}

// NewOp creates an Op with explicit metadata.
func NewOp[R any](name, doc string, fn Func[R]) *Op[R] {
	return placement.NewOp(name, doc, fn)
}

// OpOf creates an Op named after the Go symbol of fn.
func OpOf[R any](fn Func[R], doc string) *Op[R] {
	return placement.OpOf(fn, doc)
}

// FuncName returns the short Go symbol name of a function value.
func FuncName(fn any) string {
	return placement.FuncName(fn)
}

// WithName sets the op name used in log records.
func WithName(name string) Option {
	return placement.WithName(name)
}

// WithMetrics records wrapped calls in m.
func WithMetrics(m *Metrics) Option {
	return placement.WithMetrics(m)
}

// NewMetrics creates placement metrics registered with reg (nil to skip).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return placement.NewMetrics(reg)
}
