package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsidebar"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	mappingKeys   prom.Gauge
	mappingNodes  *prom.GaugeVec
	watchEvents   *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of full sidebar builds",
			Buckets:   prom.ExponentialBuckets(0.001, 4, 8),
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Sidebar builds by outcome",
		}, []string{"outcome"}),
		mappingKeys: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "mapping_keys",
			Help:      "Top-level sidebar keys produced by the last successful build",
		}),
		mappingNodes: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "mapping_nodes",
			Help:      "Sidebar nodes produced by the last successful build",
		}, []string{"kind"}),
		watchEvents: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "watch_events_total",
			Help:      "Filesystem events that triggered a rebuild",
		}, []string{"op"}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.mappingKeys, pr.mappingNodes, pr.watchEvents)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetMappingSize(keys, groups, leaves int) {
	if p == nil {
		return
	}
	p.mappingKeys.Set(float64(keys))
	p.mappingNodes.WithLabelValues("group").Set(float64(groups))
	p.mappingNodes.WithLabelValues("leaf").Set(float64(leaves))
}

func (p *PrometheusRecorder) IncWatchEvent(op string) {
	if p == nil {
		return
	}
	p.watchEvents.WithLabelValues(op).Inc()
}
