package tensor

import (
	"context"
	"math/rand"
)

type deviceKey struct{}

// WithDevice returns a context that places newly created tensors on d.
// Unlike SetDefaultDevice it affects only code that receives this context.
func WithDevice(ctx context.Context, d Device) context.Context {
	return context.WithValue(ctx, deviceKey{}, d)
}

// DeviceFromContext returns the device stored by WithDevice, if any.
func DeviceFromContext(ctx context.Context) (Device, bool) {
	if ctx == nil {
		return Device{}, false
	}
	d, ok := ctx.Value(deviceKey{}).(Device)
	return d, ok
}

// ResolveDevice picks the device a creation routine should use when the
// caller gave no explicit placement: the context device if present,
// otherwise the ambient default.
func ResolveDevice(ctx context.Context) Device {
	if d, ok := DeviceFromContext(ctx); ok {
		return d
	}
	return DefaultDevice()
}

// Option configures a creation routine.
type Option func(*creationOptions)

type creationOptions struct {
	device    Device
	hasDevice bool
	rng       *rand.Rand
}

// OnDevice places the new tensor on d, overriding context and ambient defaults.
func OnDevice(d Device) Option {
	return func(o *creationOptions) {
		o.device = d
		o.hasDevice = true
	}
}

// WithRand makes Randn and Rand draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(o *creationOptions) {
		o.rng = r
	}
}

func resolveOptions(ctx context.Context, opts []Option) creationOptions {
	var o creationOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasDevice {
		o.device = ResolveDevice(ctx)
	}
	return o
}
