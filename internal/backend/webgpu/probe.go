// Package webgpu probes the host for WebGPU adapters.
//
// On Windows the probe goes through go-webgpu (github.com/go-webgpu/webgpu),
// which loads wgpu_native at runtime without CGO. Other platforms report no
// adapters.
package webgpu

import "errors"

// ErrUnavailable is returned when no WebGPU runtime or adapter is present.
var ErrUnavailable = errors.New("webgpu: not available")

// AdapterInfo describes one WebGPU adapter.
type AdapterInfo struct {
	Vendor       string
	Device       string
	Description  string
	Architecture string
}

// Name returns a display name for the adapter.
func (a AdapterInfo) Name() string {
	switch {
	case a.Device != "" && a.Vendor != "":
		return a.Device + " (" + a.Vendor + ")"
	case a.Device != "":
		return a.Device
	case a.Description != "":
		return a.Description
	default:
		return "WebGPU adapter"
	}
}
