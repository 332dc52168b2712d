package placement

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/born-ml/placement/internal/tensor"
)

// Metrics counts wrapped calls by mode and resolved device.
type Metrics struct {
	calls  *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placement_calls_total",
				Help: "Wrapped calls by wrapping mode and resolved device (\"none\" when no argument carried one)",
			},
			[]string{"mode", "device"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placement_call_errors_total",
				Help: "Wrapped calls that returned an error",
			},
			[]string{"mode"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.calls, m.errors)
	}
	return m
}

func (m *Metrics) observe(mode string, d tensor.Device, found bool, err error) {
	label := "none"
	if found {
		label = d.String()
	}
	m.calls.WithLabelValues(mode, label).Inc()
	if err != nil {
		m.errors.WithLabelValues(mode).Inc()
	}
}
