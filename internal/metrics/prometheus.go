package metrics

import (
	"strconv"
	"sync"

	"github.com/arloliu/hype/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so an unused
// collector leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Streaming metrics
	elementsTotal     *prometheus.CounterVec
	affinityScore     prometheus.Histogram
	streamingDuration prometheus.Histogram
	streamedElements  prometheus.Gauge

	// Quality metrics
	metricDuration *prometheus.HistogramVec
	soed           prometheus.Gauge
	hyperedgeCut   prometheus.Gauge
	kMinus1        prometheus.Gauge
	nodeBalancing  prometheus.Gauge
	edgeBalancing  prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "hype" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "hype"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.elementsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "streaming",
			Name:      "elements_total",
			Help:      "Total elements assigned, by partition.",
		}, []string{"partition"})

		p.affinityScore = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "streaming",
			Name:      "affinity_score",
			Help:      "Common hyperedges between an element and the partition it was assigned to.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		})

		p.streamingDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "streaming",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of the streaming phase in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~4.4m
		})

		p.streamedElements = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "streaming",
			Name:      "elements_last_run",
			Help:      "Number of elements streamed in the last run.",
		})

		p.metricDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "quality",
			Name:      "metric_duration_seconds",
			Help:      "Duration of each quality metric computation in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"metric"})

		p.soed = p.newQualityGauge("sum_of_external_degrees", "Sum of external degrees of the last partitioning.")
		p.hyperedgeCut = p.newQualityGauge("hyperedge_cut", "Distinct hyperedges spanning more than one partition.")
		p.kMinus1 = p.newQualityGauge("k_minus_1", "Replication overhead summed over hyperedges (k-1 metric).")
		p.nodeBalancing = p.newQualityGauge("node_balancing_ratio", "(max-min)/max over partition node counts.")
		p.edgeBalancing = p.newQualityGauge("edge_balancing_ratio", "(max-min)/max over partition edge counts.")

		p.reg.MustRegister(p.elementsTotal)
		p.reg.MustRegister(p.affinityScore)
		p.reg.MustRegister(p.streamingDuration)
		p.reg.MustRegister(p.streamedElements)
		p.reg.MustRegister(p.metricDuration)
		p.reg.MustRegister(p.soed)
		p.reg.MustRegister(p.hyperedgeCut)
		p.reg.MustRegister(p.kMinus1)
		p.reg.MustRegister(p.nodeBalancing)
		p.reg.MustRegister(p.edgeBalancing)
	})
}

func (p *PrometheusCollector) newQualityGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: p.namespace,
		Subsystem: "quality",
		Name:      name,
		Help:      help,
	})
}

// RecordElementAssigned increments the per-partition element counter and observes the score.
func (p *PrometheusCollector) RecordElementAssigned(partitionID int, score int) {
	p.ensureRegistered()
	p.elementsTotal.WithLabelValues(strconv.Itoa(partitionID)).Inc()
	p.affinityScore.Observe(float64(score))
}

// RecordStreamingDuration observes the streaming duration and sets the element gauge.
func (p *PrometheusCollector) RecordStreamingDuration(duration float64, elements int) {
	p.ensureRegistered()
	p.streamingDuration.Observe(duration)
	p.streamedElements.Set(float64(elements))
}

// RecordMetricDuration observes how long a quality metric took.
func (p *PrometheusCollector) RecordMetricDuration(metric string, duration float64) {
	p.ensureRegistered()
	p.metricDuration.WithLabelValues(metric).Observe(duration)
}

// RecordQuality sets the quality gauges.
func (p *PrometheusCollector) RecordQuality(q types.Quality) {
	p.ensureRegistered()
	p.soed.Set(float64(q.SumOfExternalDegrees))
	p.hyperedgeCut.Set(float64(q.HyperedgeCut))
	p.kMinus1.Set(float64(q.KMinus1))
	p.nodeBalancing.Set(q.NodeBalancing)
	p.edgeBalancing.Set(q.EdgeBalancing)
}
