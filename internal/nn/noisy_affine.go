package nn

import (
	"context"
	"fmt"

	"github.com/born-ml/placement/internal/placement"
	"github.com/born-ml/placement/internal/tensor"
)

// ForwardDoc documents NoisyAffine's forward pass. Wrapping the forward op
// keeps this text.
const ForwardDoc = "Computes scale * x + eps with eps drawn from N(0, 1), created without an explicit device."

// NoisyAffine computes scale * x + eps, where eps is fresh standard normal
// noise created inside Forward without naming a device.
//
// Forward creates eps wherever the context or the ambient default says, so
// after moving the module to an accelerator it fails with a device mismatch
// unless the caller places new tensors on the input's device. NewDeviceSafe
// returns a variant that does this itself.
type NoisyAffine struct {
	scale   *Parameter[float32]
	forward *placement.Op[*tensor.Tensor[float32]]
}

// NewNoisyAffine creates the module with scale = 1 on the host.
func NewNoisyAffine(ctx context.Context) *NoisyAffine {
	m := &NoisyAffine{
		scale: NewParameter("scale", tensor.Scalar[float32](ctx, 1, tensor.OnDevice(tensor.HostDevice))),
	}
	m.forward = placement.NewOp("NoisyAffine.Forward", ForwardDoc, m.forwardOp)
	return m
}

// NewDeviceSafe creates a NoisyAffine whose forward pass places eps on the
// input's device.
func NewDeviceSafe(ctx context.Context, opts ...placement.Option) *NoisyAffine {
	m := NewNoisyAffine(ctx)
	m.forward = m.forward.EnsureDevice(opts...)
	return m
}

// Forward computes scale * x + eps.
func (m *NoisyAffine) Forward(ctx context.Context, x *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	return m.forward.Call(ctx, x)
}

// ForwardOp exposes the forward pass with its metadata.
func (m *NoisyAffine) ForwardOp() *placement.Op[*tensor.Tensor[float32]] {
	return m.forward
}

// Parameters returns the scale parameter.
func (m *NoisyAffine) Parameters() []*Parameter[float32] {
	return []*Parameter[float32]{m.scale}
}

// Scale returns the scale parameter.
func (m *NoisyAffine) Scale() *Parameter[float32] {
	return m.scale
}

func (m *NoisyAffine) forwardOp(ctx context.Context, args ...any) (*tensor.Tensor[float32], error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("noisy affine: missing input")
	}
	x, ok := args[0].(*tensor.Tensor[float32])
	if !ok || x == nil {
		return nil, fmt.Errorf("noisy affine: input is %T, want *tensor.Tensor[float32]", args[0])
	}

	eps, err := tensor.Randn[float32](ctx, tensor.Shape{1})
	if err != nil {
		return nil, fmt.Errorf("noisy affine: %w", err)
	}
	scaled, err := m.scale.Tensor().Mul(x)
	if err != nil {
		return nil, fmt.Errorf("noisy affine: %w", err)
	}
	out, err := scaled.Add(eps)
	if err != nil {
		return nil, fmt.Errorf("noisy affine: %w", err)
	}
	return out, nil
}
