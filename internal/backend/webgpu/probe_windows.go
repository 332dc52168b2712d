//go:build windows

package webgpu

import (
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"
)

// IsAvailable reports whether a WebGPU adapter can be requested.
func IsAvailable() (available bool) {
	// wgpu panics when the native library is missing.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()
	return true
}

// ListAdapters returns the adapters WebGPU exposes. WebGPU has no
// enumeration API, so this is at most the default adapter.
func ListAdapters() (adapters []AdapterInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			adapters = nil
			err = fmt.Errorf("%w: native library: %v", ErrUnavailable, r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer adapter.Release()

	info := adapter.GetInfo()
	return []AdapterInfo{{
		Vendor:       info.Vendor,
		Device:       info.Device,
		Description:  info.Description,
		Architecture: info.Architecture,
	}}, nil
}
