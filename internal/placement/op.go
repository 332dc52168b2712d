package placement

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// Op is a Func together with the metadata tooling reads from it. Wrapping an
// Op keeps its name and documentation.
type Op[R any] struct {
	name string
	doc  string
	fn   Func[R]
}

// NewOp creates an Op with an explicit name and doc string.
func NewOp[R any](name, doc string, fn Func[R]) *Op[R] {
	return &Op[R]{name: name, doc: doc, fn: fn}
}

// OpOf creates an Op named after the Go symbol of fn.
func OpOf[R any](fn Func[R], doc string) *Op[R] {
	return NewOp(FuncName(fn), doc, fn)
}

// Name returns the op name.
func (o *Op[R]) Name() string { return o.name }

// Doc returns the op documentation.
func (o *Op[R]) Doc() string { return o.doc }

// Func returns the underlying function.
func (o *Op[R]) Func() Func[R] { return o.fn }

// Call invokes the op.
func (o *Op[R]) Call(ctx context.Context, args ...any) (R, error) {
	return o.fn(ctx, args...)
}

// EnsureDevice returns a copy of o whose function is wrapped with the
// package-level EnsureDevice. Name and Doc are unchanged.
func (o *Op[R]) EnsureDevice(opts ...Option) *Op[R] {
	opts = append([]Option{WithName(o.name)}, opts...)
	return &Op[R]{name: o.name, doc: o.doc, fn: EnsureDevice(o.fn, opts...)}
}

// EnsureDefaultDevice returns a copy of o wrapped with the ambient variant.
// Name and Doc are unchanged.
func (o *Op[R]) EnsureDefaultDevice(opts ...Option) *Op[R] {
	opts = append([]Option{WithName(o.name)}, opts...)
	return &Op[R]{name: o.name, doc: o.doc, fn: EnsureDefaultDevice(o.fn, opts...)}
}

// FuncName returns the short Go symbol name of a function value, such as
// "nn.(*NoisyAffine).Forward-fm". It returns "" for nil or non-function values.
func FuncName(fn any) string {
	if fn == nil {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
