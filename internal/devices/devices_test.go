package devices

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/placement/internal/backend/webgpu"
	"github.com/born-ml/placement/internal/logger"
	"github.com/born-ml/placement/internal/tensor"
)

func fakeDiscoverer() *Discoverer {
	return &Discoverer{
		cpuInfo: func(context.Context) ([]cpu.InfoStat, error) {
			return []cpu.InfoStat{{ModelName: "Test CPU"}}, nil
		},
		cpuCounts: func(context.Context, bool) (int, error) { return 8, nil },
		virtualMemory: func(context.Context) (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{Total: 16 << 30}, nil
		},
		nvidiaSMI: func(context.Context) ([]byte, error) {
			return []byte("0, NVIDIA A100-SXM4-40GB, 40960\n1, NVIDIA A100-SXM4-40GB, 40960\n"), nil
		},
		webgpuAdapters: func() ([]webgpu.AdapterInfo, error) {
			return []webgpu.AdapterInfo{{Vendor: "NVIDIA", Device: "A100"}}, nil
		},
	}
}

func TestDiscover(t *testing.T) {
	ctx := logger.WithContext(context.Background(), logger.Nop())
	devs, err := fakeDiscoverer().Discover(ctx)
	require.NoError(t, err)
	require.Len(t, devs, 4)

	assert.Equal(t, tensor.HostDevice, devs[0].Device)
	assert.Equal(t, "Test CPU", devs[0].Name)
	assert.Equal(t, 8, devs[0].Cores)
	assert.Equal(t, uint64(16<<30), devs[0].MemoryBytes)

	assert.Equal(t, "cuda:0", devs[1].ID)
	assert.Equal(t, "cuda:1", devs[2].ID)
	assert.Equal(t, uint64(40960)<<20, devs[1].MemoryBytes)

	assert.Equal(t, tensor.NewDevice(tensor.WebGPU, 0), devs[3].Device)
	assert.Equal(t, "A100 (NVIDIA)", devs[3].Name)
}

func TestDiscover_ProbeFailuresAreSkipped(t *testing.T) {
	d := fakeDiscoverer()
	d.cpuInfo = func(context.Context) ([]cpu.InfoStat, error) { return nil, errors.New("no /proc") }
	d.nvidiaSMI = func(context.Context) ([]byte, error) { return nil, errors.New("not found") }
	d.webgpuAdapters = func() ([]webgpu.AdapterInfo, error) { return nil, webgpu.ErrUnavailable }

	ctx := logger.WithContext(context.Background(), logger.Nop())
	devs, err := d.Discover(ctx)
	require.NoError(t, err)
	require.Len(t, devs, 1)
	assert.Equal(t, "CPU", devs[0].Name)
	assert.Equal(t, "cpu", devs[0].ID)
}

func TestDiscover_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(logger.WithContext(context.Background(), logger.Nop()))
	cancel()
	_, err := fakeDiscoverer().Discover(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseNvidiaSMI(t *testing.T) {
	devs, err := parseNvidiaSMI([]byte("\n3, Tesla T4, 15360\ngarbage\n"))
	require.Len(t, devs, 1)
	assert.Error(t, err)
	assert.Equal(t, tensor.NewDevice(tensor.CUDA, 3), devs[0].Device)
	assert.Equal(t, "Tesla T4", devs[0].Name)
}

func TestNew_HostProbe(t *testing.T) {
	ctx := logger.WithContext(context.Background(), logger.Nop())
	devs, err := New().Discover(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, devs)
	assert.Equal(t, tensor.HostDevice, devs[0].Device)
}
