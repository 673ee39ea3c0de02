package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store labels
const (
	StoreList    = "list"
	StoreArray   = "array"
	StoreHash    = "hash"
	StoreOrdered = "ordered"
)

// Lookup result labels
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Metrics holds all Prometheus metrics for the record store
type Metrics struct {
	Registry *prometheus.Registry

	InsertsTotal     *prometheus.CounterVec
	LookupsTotal     *prometheus.CounterVec
	RejectionsTotal  *prometheus.CounterVec
	RecordsTotal     *prometheus.GaugeVec
	ArrayCapacity    prometheus.Gauge
	ArrayResizes     prometheus.Counter
	SortDuration     *prometheus.HistogramVec
	SnapshotBytes    prometheus.Gauge
	SnapshotsTotal   *prometheus.CounterVec
	SnapshotDuration prometheus.Histogram
}

// NewMetrics creates all record store metrics on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		InsertsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recordstore",
			Subsystem: "store",
			Name:      "inserts_total",
			Help:      "Total number of records inserted by store",
		}, []string{"store"}),
		LookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recordstore",
			Subsystem: "store",
			Name:      "lookups_total",
			Help:      "Total number of lookups by store and result",
		}, []string{"store", "result"}),
		RejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recordstore",
			Subsystem: "store",
			Name:      "rejections_total",
			Help:      "Total number of rejected inserts by reason",
		}, []string{"reason"}),
		RecordsTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "recordstore",
			Subsystem: "store",
			Name:      "records",
			Help:      "Current number of records by store",
		}, []string{"store"}),
		ArrayCapacity: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "recordstore",
			Subsystem: "array",
			Name:      "capacity",
			Help:      "Current capacity of the indexed store buffer",
		}),
		ArrayResizes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "recordstore",
			Subsystem: "array",
			Name:      "resizes_total",
			Help:      "Total number of indexed store buffer reallocations",
		}),
		SortDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "recordstore",
			Subsystem: "array",
			Name:      "sort_duration_seconds",
			Help:      "Histogram of indexed store sort durations",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
		}, []string{"order"}),
		SnapshotBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "recordstore",
			Subsystem: "snapshot",
			Name:      "size_bytes",
			Help:      "Size of the last snapshot written or read",
		}),
		SnapshotsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recordstore",
			Subsystem: "snapshot",
			Name:      "operations_total",
			Help:      "Total number of snapshot operations by kind and status",
		}, []string{"op", "status"}),
		SnapshotDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "recordstore",
			Subsystem: "snapshot",
			Name:      "duration_seconds",
			Help:      "Histogram of snapshot read and write durations",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// RecordInsert counts an insert and updates the size gauge of store
func (m *Metrics) RecordInsert(store string, size int) {
	m.InsertsTotal.WithLabelValues(store).Inc()
	m.RecordsTotal.WithLabelValues(store).Set(float64(size))
}

// RecordLookup counts a lookup against store
func (m *Metrics) RecordLookup(store string, found bool) {
	result := ResultMiss
	if found {
		result = ResultHit
	}
	m.LookupsTotal.WithLabelValues(store, result).Inc()
}

// RecordRejection counts a rejected insert
func (m *Metrics) RecordRejection(reason string) {
	m.RejectionsTotal.WithLabelValues(reason).Inc()
}

// RecordSort observes the duration of a sort in the given order
func (m *Metrics) RecordSort(order string, duration time.Duration) {
	m.SortDuration.WithLabelValues(order).Observe(duration.Seconds())
}

// RecordSnapshot observes a snapshot read or write
func (m *Metrics) RecordSnapshot(op string, bytes int64, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	} else {
		m.SnapshotBytes.Set(float64(bytes))
	}
	m.SnapshotsTotal.WithLabelValues(op, status).Inc()
	m.SnapshotDuration.Observe(duration.Seconds())
}
