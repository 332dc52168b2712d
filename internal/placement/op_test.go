package placement

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/placement/internal/tensor"
)

const addNoiseDoc = "Adds standard normal noise to the input."

func TestOp_PreservesMetadata(t *testing.T) {
	op := OpOf(addNoise, addNoiseDoc)
	assert.Equal(t, "placement.addNoise", op.Name())

	for _, wrapped := range []*Op[*tensor.Tensor[float32]]{op.EnsureDevice(), op.EnsureDefaultDevice()} {
		assert.Equal(t, op.Name(), wrapped.Name())
		assert.Equal(t, addNoiseDoc, wrapped.Doc())
	}
}

func TestOp_Call(t *testing.T) {
	resetDefaults(t)
	op := NewOp("forward", "doc", addNoise).EnsureDevice()

	out, err := op.Call(context.Background(), onDevice(t, cuda1, 1))
	require.NoError(t, err)
	assert.Equal(t, cuda1, out.Device())
	assert.NotNil(t, op.Func())
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "", FuncName(nil))
	assert.Equal(t, "", FuncName(42))
	var nilFn Func[int]
	assert.Equal(t, "", FuncName(nilFn))
	assert.Equal(t, "placement.addNoise", FuncName(addNoise))
}

func TestMetrics(t *testing.T) {
	resetDefaults(t)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	ctxFn := EnsureDevice(addNoise, WithMetrics(m))
	ambientFn := EnsureDefaultDevice(addNoise, WithMetrics(m), WithName("noise"))

	ctx := context.Background()
	_, err := ctxFn(ctx, onDevice(t, cuda0, 1))
	require.NoError(t, err)
	_, err = ctxFn(ctx, onDevice(t, cuda0, 1))
	require.NoError(t, err)
	_, err = ambientFn(ctx, onDevice(t, cuda1, 1))
	require.NoError(t, err)

	// No device argument: the tensor is made on cuda:0 but noise lands on the host.
	_, err = EnsureDevice(func(ctx context.Context, args ...any) (*tensor.Tensor[float32], error) {
		return addNoise(ctx, onDevice(t, cuda0, 1))
	}, WithMetrics(m))(ctx)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues(ModeContext, "cuda:0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(ModeAmbient, "cuda:1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(ModeContext, "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues(ModeContext)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.errors.WithLabelValues(ModeAmbient)))

	n, err := testutil.GatherAndCount(reg, "placement_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMetrics_CountsPanics(t *testing.T) {
	resetDefaults(t)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	boom := func(ctx context.Context, args ...any) (int, error) { panic("boom") }

	assert.Panics(t, func() {
		_, _ = EnsureDefaultDevice(boom, WithMetrics(m))(context.Background(), onDevice(t, cuda0, 1))
	})
	assert.Panics(t, func() {
		_, _ = EnsureDevice(boom, WithMetrics(m))(context.Background(), onDevice(t, cuda1, 1))
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(ModeAmbient, "cuda:0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues(ModeAmbient)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(ModeContext, "cuda:1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues(ModeContext)))
	assert.Equal(t, tensor.HostDevice, tensor.DefaultDevice())
}
