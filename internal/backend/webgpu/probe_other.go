//go:build !windows

package webgpu

// IsAvailable reports whether a WebGPU adapter can be requested.
func IsAvailable() bool {
	return false
}

// ListAdapters returns the adapters WebGPU exposes.
func ListAdapters() ([]AdapterInfo, error) {
	return nil, ErrUnavailable
}
