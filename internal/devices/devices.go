// Package devices discovers the compute devices available on the host.
package devices

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/born-ml/placement/internal/backend/webgpu"
	"github.com/born-ml/placement/internal/logger"
	"github.com/born-ml/placement/internal/tensor"
)

// Info describes one discovered device.
type Info struct {
	Device      tensor.Device `json:"-"`
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Cores       int           `json:"cores,omitempty"`
	MemoryBytes uint64        `json:"memory_bytes,omitempty"`
	Source      string        `json:"source"`
}

func newInfo(d tensor.Device, name, source string) Info {
	return Info{Device: d, ID: d.String(), Name: name, Source: source}
}

// Discoverer runs the host probes. The zero value is not usable; use New.
type Discoverer struct {
	cpuInfo        func(ctx context.Context) ([]cpu.InfoStat, error)
	cpuCounts      func(ctx context.Context, logical bool) (int, error)
	virtualMemory  func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	nvidiaSMI      func(ctx context.Context) ([]byte, error)
	webgpuAdapters func() ([]webgpu.AdapterInfo, error)
}

// New returns a Discoverer backed by gopsutil, nvidia-smi and the WebGPU probe.
func New() *Discoverer {
	return &Discoverer{
		cpuInfo:        cpu.InfoWithContext,
		cpuCounts:      cpu.CountsWithContext,
		virtualMemory:  mem.VirtualMemoryWithContext,
		nvidiaSMI:      runNvidiaSMI,
		webgpuAdapters: webgpu.ListAdapters,
	}
}

// Discover lists the host CPU followed by any CUDA and WebGPU devices.
// Accelerator probes that fail are logged at debug level and skipped; only a
// cancelled context is an error.
func (d *Discoverer) Discover(ctx context.Context) ([]Info, error) {
	log := logger.FromContext(ctx)

	devs := []Info{d.host(ctx)}

	if out, err := d.nvidiaSMI(ctx); err != nil {
		log.Debug("devices: nvidia-smi probe failed", "error", err)
	} else {
		gpus, err := parseNvidiaSMI(out)
		if err != nil {
			log.Warn("devices: unreadable nvidia-smi output", "error", err)
		}
		devs = append(devs, gpus...)
	}

	if adapters, err := d.webgpuAdapters(); err != nil {
		log.Debug("devices: webgpu probe failed", "error", err)
	} else {
		for i, a := range adapters {
			devs = append(devs, newInfo(tensor.NewDevice(tensor.WebGPU, i), a.Name(), "webgpu"))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return devs, nil
}

func (d *Discoverer) host(ctx context.Context) Info {
	info := newInfo(tensor.HostDevice, "CPU", "gopsutil")
	log := logger.FromContext(ctx)

	if stats, err := d.cpuInfo(ctx); err != nil {
		log.Debug("devices: cpu info failed", "error", err)
	} else if len(stats) > 0 && stats[0].ModelName != "" {
		info.Name = stats[0].ModelName
	}
	if n, err := d.cpuCounts(ctx, true); err != nil {
		log.Debug("devices: cpu count failed", "error", err)
	} else {
		info.Cores = n
	}
	if vm, err := d.virtualMemory(ctx); err != nil {
		log.Debug("devices: memory probe failed", "error", err)
	} else if vm != nil {
		info.MemoryBytes = vm.Total
	}
	return info
}

func runNvidiaSMI(ctx context.Context) ([]byte, error) {
	return exec.CommandContext(ctx, "nvidia-smi",
		"--query-gpu=index,name,memory.total",
		"--format=csv,noheader,nounits").Output()
}

// parseNvidiaSMI reads "index, name, memory MiB" rows. Rows that cannot be
// parsed are skipped and reported in the returned error.
func parseNvidiaSMI(out []byte) ([]Info, error) {
	var (
		devs []Info
		bad  []string
	)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			bad = append(bad, line)
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil || idx < 0 {
			bad = append(bad, line)
			continue
		}
		info := newInfo(tensor.NewDevice(tensor.CUDA, idx), strings.TrimSpace(fields[1]), "nvidia-smi")
		if len(fields) > 2 {
			if mib, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 64); err == nil {
				info.MemoryBytes = mib << 20
			}
		}
		devs = append(devs, info)
	}
	if err := sc.Err(); err != nil {
		return devs, err
	}
	if len(bad) > 0 {
		return devs, fmt.Errorf("devices: %d unparsable nvidia-smi rows: %q", len(bad), bad)
	}
	return devs, nil
}
