// Package placement wraps functions so that tensors they create without an
// explicit device land on the device of their first tensor argument.
//
// Two wrappers are provided:
//
//   - EnsureDevice passes the device down through the context.Context. It never
//     touches process-wide state and is safe for concurrent use.
//   - EnsureDefaultDevice switches the ambient tensor.DefaultDevice for the
//     duration of the call and restores it afterwards, even on panic. Calls
//     running concurrently in different goroutines share that global and can
//     observe each other's device.
//
// Example:
//
//	forward := placement.EnsureDevice(func(ctx context.Context, args ...any) (*tensor.Tensor[float32], error) {
//	    x := args[0].(*tensor.Tensor[float32])
//	    eps, err := tensor.Randn[float32](ctx, tensor.Shape{1}) // lands on x.Device()
//	    if err != nil {
//	        return nil, err
//	    }
//	    return x.Add(eps)
//	})
package placement

import (
	"context"
	"errors"
	"reflect"

	"github.com/born-ml/placement/internal/logger"
	"github.com/born-ml/placement/internal/tensor"
)

// Devicer is implemented by values that live on a device, such as *tensor.Tensor.
type Devicer interface {
	Device() tensor.Device
}

// Func is the shape of functions the wrappers accept. Positional arguments are
// the only thing scanned for a device.
type Func[R any] func(ctx context.Context, args ...any) (R, error)

// Wrapping modes, used as the metric label and in log records.
const (
	ModeContext = "context"
	ModeAmbient = "ambient"
)

// FirstDevice returns the device of the first argument that implements
// Devicer. Nil interfaces and nil pointers are skipped.
func FirstDevice(args ...any) (tensor.Device, bool) {
	for _, arg := range args {
		d, ok := arg.(Devicer)
		if !ok || isNil(d) {
			continue
		}
		return d.Device(), true
	}
	return tensor.Device{}, false
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// EnsureDevice returns a function that calls fn with a context placing new
// tensors on the device of the first device-bearing argument. When no
// argument carries a device, fn sees ctx unchanged and creation falls back to
// whatever placement ctx or the ambient default already provide.
//
// Values and errors returned by fn pass through untouched.
func EnsureDevice[R any](fn Func[R], opts ...Option) Func[R] {
	cfg := newConfig(fn, opts)
	return func(ctx context.Context, args ...any) (R, error) {
		d, found := FirstDevice(args...)
		cfg.trace(ctx, ModeContext, d, found)
		if found {
			ctx = tensor.WithDevice(ctx, d)
		}

		returned := false
		defer func() {
			if !returned {
				cfg.observe(ModeContext, d, found, errPanicked)
			}
		}()
		out, err := fn(ctx, args...)
		returned = true
		cfg.observe(ModeContext, d, found, err)
		return out, err
	}
}

// EnsureDefaultDevice returns a function that, for the duration of each call,
// sets the ambient default device to the device of the first device-bearing
// argument. The full tensor.Defaults snapshot (device and dtype) taken before
// the call is restored afterwards, including when fn panics; the panic then
// continues unwinding. When no argument carries a device the ambient default
// is left as it is.
//
// The device is also put into the context passed to fn, so a device carried
// by ctx from an enclosing EnsureDevice call does not override it.
//
// Prefer EnsureDevice: this variant exists for code that creates tensors
// without threading a context through.
func EnsureDefaultDevice[R any](fn Func[R], opts ...Option) Func[R] {
	cfg := newConfig(fn, opts)
	return func(ctx context.Context, args ...any) (out R, err error) {
		d, found := FirstDevice(args...)
		cfg.trace(ctx, ModeAmbient, d, found)

		saved := tensor.GetDefaults()
		returned := false
		defer func() {
			tensor.SetDefaults(saved)
			if !returned {
				cfg.observe(ModeAmbient, d, found, errPanicked)
			}
		}()

		if found {
			tensor.SetDefaultDevice(d)
			ctx = tensor.WithDevice(ctx, d)
		}
		out, err = fn(ctx, args...)
		returned = true
		cfg.observe(ModeAmbient, d, found, err)
		return out, err
	}
}

// errPanicked marks a wrapped call that unwound with a panic in metrics.
var errPanicked = errors.New("placement: wrapped call panicked")

// Option configures a wrapper.
type Option func(*config)

type config struct {
	name    string
	metrics *Metrics
}

// WithName sets the name used in log records. Defaults to the Go symbol of fn.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithMetrics records every wrapped call in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

func newConfig(fn any, opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.name == "" {
		c.name = FuncName(fn)
	}
	return c
}

func (c *config) trace(ctx context.Context, mode string, d tensor.Device, found bool) {
	if !found {
		logger.FromContext(ctx).Debug("placement: no device argument", "op", c.name, "mode", mode)
		return
	}
	logger.FromContext(ctx).Debug("placement: device resolved", "op", c.name, "mode", mode, "device", d.String())
}

func (c *config) observe(mode string, d tensor.Device, found bool, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.observe(mode, d, found, err)
}
