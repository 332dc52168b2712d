package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// DeviceType identifies a family of compute targets.
type DeviceType int

// Supported device types.
const (
	CPU DeviceType = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns the lowercase device type name used in device strings.
func (dt DeviceType) String() string {
	switch dt {
	case CPU:
		return "cpu"
	case CUDA:
		return "cuda"
	case Vulkan:
		return "vulkan"
	case Metal:
		return "metal"
	case WebGPU:
		return "webgpu"
	default:
		return "unknown"
	}
}

// Device identifies a concrete compute target, for example the first CUDA
// accelerator. Devices are comparable values: two tensors are on the same
// device iff their Device values are equal.
type Device struct {
	Type  DeviceType
	Index int
}

// HostDevice is the CPU device, the initial ambient default.
var HostDevice = Device{Type: CPU}

// NewDevice creates a device of the given type and ordinal.
func NewDevice(dt DeviceType, index int) Device {
	return Device{Type: dt, Index: index}
}

// String returns "cpu" for the host and "type:index" for everything else.
func (d Device) String() string {
	if d.Type == CPU && d.Index == 0 {
		return "cpu"
	}
	return d.Type.String() + ":" + strconv.Itoa(d.Index)
}

// IsAccelerator reports whether the device is anything other than the host CPU.
func (d Device) IsAccelerator() bool {
	return d.Type != CPU
}

// ParseDevice parses a device string such as "cpu", "cuda", "cuda:1" or "webgpu:0".
// A missing index means 0.
func ParseDevice(s string) (Device, error) {
	name, idx, hasIdx := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")

	var dt DeviceType
	switch name {
	case "cpu":
		dt = CPU
	case "cuda", "gpu":
		dt = CUDA
	case "vulkan":
		dt = Vulkan
	case "metal", "mps":
		dt = Metal
	case "webgpu", "wgpu":
		dt = WebGPU
	default:
		return Device{}, fmt.Errorf("%w: unknown device type %q", ErrInvalidDevice, s)
	}

	index := 0
	if hasIdx {
		n, err := strconv.Atoi(idx)
		if err != nil {
			return Device{}, fmt.Errorf("%w: bad index in %q: %w", ErrInvalidDevice, s, err)
		}
		if n < 0 {
			return Device{}, fmt.Errorf("%w: negative index in %q", ErrInvalidDevice, s)
		}
		index = n
	}

	return Device{Type: dt, Index: index}, nil
}

// MustParseDevice is like ParseDevice but panics on error.
func MustParseDevice(s string) Device {
	d, err := ParseDevice(s)
	if err != nil {
		panic(err)
	}
	return d
}
