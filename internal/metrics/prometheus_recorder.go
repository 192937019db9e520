package metrics

import (
	"fmt"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg             *prom.Registry
	resolveDuration *prom.HistogramVec
	renders         *prom.CounterVec
	versionEntries  prom.Gauge
	lastRun         prom.Gauge
}

// NewPrometheusRecorder constructs and registers the srvcdocs metrics on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		resolveDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "srvcdocs",
			Name:      "commit_resolve_duration_seconds",
			Help:      "Time spent resolving the current commit",
			Buckets:   prom.DefBuckets,
		}, []string{"resolver", "success"}),
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "srvcdocs",
			Name:      "renders_total",
			Help:      "Configuration renders by format and outcome",
		}, []string{"format", "outcome"}),
		versionEntries: prom.NewGauge(prom.GaugeOpts{
			Namespace: "srvcdocs",
			Name:      "version_switcher_entries",
			Help:      "Entries in the most recently emitted version switcher",
		}),
		lastRun: prom.NewGauge(prom.GaugeOpts{
			Namespace: "srvcdocs",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed render",
		}),
	}
	reg.MustRegister(pr.resolveDuration, pr.renders, pr.versionEntries, pr.lastRun)
	return pr
}

func (p *PrometheusRecorder) ObserveResolveDuration(resolver string, d time.Duration, success bool) {
	p.resolveDuration.WithLabelValues(resolver, strconv.FormatBool(success)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRender(format string, outcome Outcome) {
	p.renders.WithLabelValues(format, string(outcome)).Inc()
	p.lastRun.SetToCurrentTime()
}

func (p *PrometheusRecorder) SetVersionEntries(n int) {
	p.versionEntries.Set(float64(n))
}

// Registry exposes the registry the metrics were registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
