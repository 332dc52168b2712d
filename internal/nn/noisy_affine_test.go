package nn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/placement/internal/tensor"
)

var cuda0 = tensor.NewDevice(tensor.CUDA, 0)

func input(t *testing.T, d tensor.Device) *tensor.Tensor[float32] {
	t.Helper()
	x, err := tensor.FromSlice[float32](context.Background(), []float32{1}, tensor.Shape{}, tensor.OnDevice(d))
	require.NoError(t, err)
	return x
}

func TestNoisyAffine_FailsOnAccelerator(t *testing.T) {
	ctx := context.Background()
	model := NewNoisyAffine(ctx)
	MoveTo[float32](model, cuda0)

	_, err := model.Forward(ctx, input(t, cuda0))
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrDeviceMismatch)
}

func TestNoisyAffine_HostWorks(t *testing.T) {
	ctx := context.Background()
	out, err := NewNoisyAffine(ctx).Forward(ctx, input(t, tensor.HostDevice))
	require.NoError(t, err)
	assert.Equal(t, tensor.HostDevice, out.Device())
	assert.Equal(t, tensor.Shape{1}, out.Shape())
}

func TestDeviceSafe_StaysOnInputDevice(t *testing.T) {
	ctx := context.Background()
	model := NewDeviceSafe(ctx)
	MoveTo[float32](model, cuda0)

	out, err := model.Forward(ctx, input(t, cuda0))
	require.NoError(t, err)
	assert.Equal(t, cuda0, out.Device())
	assert.Equal(t, tensor.HostDevice, tensor.DefaultDevice())
}

func TestDeviceSafe_PreservesDoc(t *testing.T) {
	ctx := context.Background()
	plain := NewNoisyAffine(ctx).ForwardOp()
	safe := NewDeviceSafe(ctx).ForwardOp()

	assert.Equal(t, ForwardDoc, safe.Doc())
	assert.Equal(t, plain.Name(), safe.Name())
	assert.Equal(t, "NoisyAffine.Forward", safe.Name())
}

func TestForward_BadInput(t *testing.T) {
	ctx := context.Background()
	model := NewDeviceSafe(ctx)

	_, err := model.ForwardOp().Call(ctx)
	assert.Error(t, err)
	_, err = model.ForwardOp().Call(ctx, "x")
	assert.Error(t, err)
}

func TestMoveTo(t *testing.T) {
	ctx := context.Background()
	model := NewNoisyAffine(ctx)

	d, ok := DeviceOf[float32](model)
	require.True(t, ok)
	assert.Equal(t, tensor.HostDevice, d)

	MoveTo[float32](model, cuda0)
	assert.Equal(t, cuda0, model.Scale().Device())
	assert.True(t, model.Scale().Tensor().RequiresGrad())
	assert.Equal(t, float32(1), model.Scale().Tensor().Item())
}
