package transcoder

import (
	"github.com/corpix/transcoder/metrics"
)

type Metrics struct {
	Bytes      *metrics.CounterVec
	Runs       metrics.Counter
	InputBytes metrics.Gauge
}

func NewMetrics(r *metrics.Registry, namespace string) *Metrics {
	return &Metrics{
		Bytes: metrics.NewCounterVec(r, metrics.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_total",
			Help:      "Bytes produced by the chain per direction.",
		}, []string{"direction"}),
		Runs: metrics.NewCounter(r, metrics.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed encode/decode runs.",
		}),
		InputBytes: metrics.NewGauge(r, metrics.GaugeOpts{
			Namespace: namespace,
			Name:      "input_bytes",
			Help:      "Size of the last loaded input.",
		}),
	}
}
