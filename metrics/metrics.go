package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/corpix/transcoder/errors"
)

type (
	Registry  = prometheus.Registry
	Gatherer  = prometheus.Gatherer
	Collector = prometheus.Collector

	Counter     = prometheus.Counter
	CounterOpts = prometheus.CounterOpts
	CounterVec  = prometheus.CounterVec
	Gauge       = prometheus.Gauge
	GaugeOpts   = prometheus.GaugeOpts
	Labels      = prometheus.Labels

	Config struct {
		Namespace string `yaml:"namespace"`
		Textfile  string `yaml:"textfile,omitempty"`
	}
)

var (
	Default = NewRegistry()
)

func (c *Config) Default() {
	if c.Namespace == "" {
		c.Namespace = "transcoder"
	}
}

//

func NewRegistry() *Registry { return prometheus.NewRegistry() }

func NewCounter(r *Registry, opts CounterOpts) Counter {
	return promauto.With(r).NewCounter(opts)
}

func NewCounterVec(r *Registry, opts CounterOpts, labels []string) *CounterVec {
	return promauto.With(r).NewCounterVec(opts, labels)
}

func NewGauge(r *Registry, opts GaugeOpts) Gauge {
	return promauto.With(r).NewGauge(opts)
}

// WriteTextfile dumps everything g gathers in text exposition format,
// suitable for the node exporter textfile collector.
func WriteTextfile(path string, g Gatherer) error {
	err := prometheus.WriteToTextfile(path, g)
	if err != nil {
		return errors.Wrapf(err, "failed to write metrics to %q", path)
	}
	return nil
}
