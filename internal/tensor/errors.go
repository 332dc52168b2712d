package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors for tensor operations.
var (
	ErrDeviceMismatch   = errors.New("tensors on different devices")
	ErrShapeMismatch    = errors.New("incompatible shapes")
	ErrUnsupportedDType = errors.New("unsupported dtype")
	ErrInvalidDevice    = errors.New("invalid device")
	ErrInvalidShape     = errors.New("invalid shape")
)

// DeviceMismatchError reports a binary operation whose operands live on
// different devices.
type DeviceMismatchError struct {
	Op    string
	Left  Device
	Right Device
}

// Error implements error.
func (e *DeviceMismatchError) Error() string {
	return fmt.Sprintf("%s: expected all tensors to be on the same device, but found at least two devices, %s and %s",
		e.Op, e.Left, e.Right)
}

// Is makes errors.Is(err, ErrDeviceMismatch) match.
func (e *DeviceMismatchError) Is(target error) bool {
	return target == ErrDeviceMismatch
}
