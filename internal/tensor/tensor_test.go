package tensor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetDefaults restores the ambient defaults once the test finishes.
func resetDefaults(t *testing.T) {
	t.Helper()
	prev := GetDefaults()
	t.Cleanup(func() { SetDefaults(prev) })
}

func TestParseDevice(t *testing.T) {
	tests := []struct {
		in   string
		want Device
	}{
		{"cpu", HostDevice},
		{"CPU", HostDevice},
		{"cuda", Device{Type: CUDA}},
		{"cuda:1", Device{Type: CUDA, Index: 1}},
		{"gpu:2", Device{Type: CUDA, Index: 2}},
		{"mps", Device{Type: Metal}},
		{" webgpu:0 ", Device{Type: WebGPU}},
		{"vulkan:3", Device{Type: Vulkan, Index: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDevice(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDevice_Invalid(t *testing.T) {
	for _, in := range []string{"", "tpu", "cuda:x", "cuda:-1"} {
		_, err := ParseDevice(in)
		assert.ErrorIs(t, err, ErrInvalidDevice, in)
	}
}

func TestDevice_String(t *testing.T) {
	assert.Equal(t, "cpu", HostDevice.String())
	assert.Equal(t, "cuda:0", NewDevice(CUDA, 0).String())
	assert.Equal(t, "cpu:1", NewDevice(CPU, 1).String())
	assert.Equal(t, "webgpu:2", NewDevice(WebGPU, 2).String())

	for _, d := range []Device{HostDevice, NewDevice(CUDA, 0), NewDevice(Metal, 1)} {
		back, err := ParseDevice(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestParseDataType(t *testing.T) {
	dt, err := ParseDataType("f64")
	require.NoError(t, err)
	assert.Equal(t, Float64, dt)
	assert.Equal(t, 8, dt.Size())

	_, err = ParseDataType("bfloat16")
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestDefaults_SetRestore(t *testing.T) {
	resetDefaults(t)

	cuda := NewDevice(CUDA, 0)
	prev := SetDefaults(Defaults{Device: cuda, DType: Float64})
	assert.Equal(t, cuda, DefaultDevice())
	assert.Equal(t, Float64, DefaultDType())

	SetDefaults(prev)
	assert.Equal(t, prev, GetDefaults())
}

func TestResolveDevice_Precedence(t *testing.T) {
	resetDefaults(t)

	metal := NewDevice(Metal, 0)
	cuda := NewDevice(CUDA, 1)
	SetDefaultDevice(metal)

	ctx := context.Background()
	assert.Equal(t, metal, ResolveDevice(ctx), "ambient default")

	ctx = WithDevice(ctx, cuda)
	assert.Equal(t, cuda, ResolveDevice(ctx), "context beats ambient")

	x, err := Zeros[float32](ctx, Shape{2}, OnDevice(HostDevice))
	require.NoError(t, err)
	assert.Equal(t, HostDevice, x.Device(), "explicit option beats context")
}

func TestTensor_To(t *testing.T) {
	ctx := context.Background()
	x, err := FromSlice[float32](ctx, []float32{1, 2, 3}, Shape{3}, OnDevice(HostDevice))
	require.NoError(t, err)

	cuda := NewDevice(CUDA, 0)
	y := x.To(cuda)
	assert.Equal(t, cuda, y.Device())
	assert.Equal(t, x.Data(), y.Data())
	assert.Same(t, x, x.To(HostDevice))

	y.Data()[0] = 42
	assert.Equal(t, float32(1), x.Data()[0], "To must copy")
}

func TestTensor_At(t *testing.T) {
	x, err := Arange[int64](context.Background(), 0, 6)
	require.NoError(t, err)
	x.shape = Shape{2, 3}

	assert.Equal(t, int64(4), x.At(1, 1))
	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.Item() })
}
