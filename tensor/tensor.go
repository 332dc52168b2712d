// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API: devices, data types,
// shapes, creation routines and the ambient placement defaults.
//
// Creation routines place their result using, in order, an explicit
// OnDevice option, the device carried by the context (WithDevice), and the
// ambient DefaultDevice.
//
// Example:
//
//	cuda := tensor.MustParseDevice("cuda:0")
//	x, _ := tensor.Ones[float32](ctx, tensor.Shape{2, 3}, tensor.OnDevice(cuda))
//	eps, _ := tensor.Randn[float32](tensor.WithDevice(ctx, cuda), tensor.Shape{1})
//	y, err := x.Add(eps)
package tensor

import (
	"context"

	"github.com/born-ml/placement/internal/tensor"
)

// DType is a constraint for tensor element types: float32, float64, int32, int64.
type DType = tensor.DType

// DataType represents the runtime data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// DeviceType identifies a family of compute targets.
type DeviceType = tensor.DeviceType

// Device type constants.
const (
	CPU    DeviceType = tensor.CPU
	CUDA   DeviceType = tensor.CUDA
	Vulkan DeviceType = tensor.Vulkan
	Metal  DeviceType = tensor.Metal
	WebGPU DeviceType = tensor.WebGPU
)

// Device identifies a concrete compute target such as cuda:0.
type Device = tensor.Device

// HostDevice is the CPU device.
var HostDevice = tensor.HostDevice

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense tensor placed on a device.
type Tensor[T DType] = tensor.Tensor[T]

// Defaults is the ambient placement used when nothing more specific is given.
type Defaults = tensor.Defaults

// Option configures a creation routine.
type Option = tensor.Option

// DeviceMismatchError reports a binary operation across devices.
type DeviceMismatchError = tensor.DeviceMismatchError

// Errors returned by tensor operations.
var (
	ErrDeviceMismatch   = tensor.ErrDeviceMismatch
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrUnsupportedDType = tensor.ErrUnsupportedDType
	ErrInvalidDevice    = tensor.ErrInvalidDevice
	ErrInvalidShape     = tensor.ErrInvalidShape
)

// NewDevice creates a device of the given type and ordinal.
func NewDevice(dt DeviceType, index int) Device { return tensor.NewDevice(dt, index) }

// ParseDevice parses strings such as "cpu" or "cuda:1".
func ParseDevice(s string) (Device, error) { return tensor.ParseDevice(s) }

// MustParseDevice is like ParseDevice but panics on error.
func MustParseDevice(s string) Device { return tensor.MustParseDevice(s) }

// ParseDataType parses names such as "float32".
func ParseDataType(s string) (DataType, error) { return tensor.ParseDataType(s) }

// GetDefaults returns a snapshot of the ambient defaults.
func GetDefaults() Defaults { return tensor.GetDefaults() }

// SetDefaults replaces the ambient defaults and returns the previous value.
func SetDefaults(d Defaults) Defaults { return tensor.SetDefaults(d) }

// DefaultDevice returns the ambient default device.
func DefaultDevice() Device { return tensor.DefaultDevice() }

// SetDefaultDevice sets the ambient default device and returns the previous one.
func SetDefaultDevice(d Device) Device { return tensor.SetDefaultDevice(d) }

// WithDevice returns a context placing new tensors on d.
func WithDevice(ctx context.Context, d Device) context.Context { return tensor.WithDevice(ctx, d) }

// DeviceFromContext returns the device stored by WithDevice.
func DeviceFromContext(ctx context.Context) (Device, bool) { return tensor.DeviceFromContext(ctx) }

// OnDevice places a new tensor on d explicitly.
func OnDevice(d Device) Option { return tensor.OnDevice(d) }
