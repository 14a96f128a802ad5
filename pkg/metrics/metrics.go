// Package metrics provides Prometheus instrumentation for Splitter and
// Combiner operations. It is purely additive: no counter or histogram here
// is consulted by the core algorithms, and disabling metrics never changes
// behavior. The core itself has no network I/O; scraping the registered
// collectors is left to the embedding process.
package metrics

import (
	"strconv"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all sharing metrics.
	Namespace = "sharing"

	LabelOperation = "operation"
	LabelLevel     = "level"

	OpSplit   = "split"
	OpCombine = "combine"
)

var (
	// OperationsTotal counts split/combine invocations by operation and
	// the security level they resolved to.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of split/combine operations by operation and security level",
		},
		[]string{LabelOperation, LabelLevel},
	)

	// ShareCount observes the number of shares produced by a split or
	// consumed by a combine.
	ShareCount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "share_count",
			Help:      "Number of shares produced or consumed per operation",
			Buckets:   []float64{2, 3, 5, 8, 13, 21, 34, 55},
		},
		[]string{LabelOperation},
	)

	// ErrorsTotal counts operations that returned an error.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total number of split/combine operations that returned an error",
		},
		[]string{LabelOperation},
	)

	// enabled tracks whether metrics collection is enabled.
	enabled atomic.Bool
)

func init() {
	enabled.Store(true)
}

// RecordSplit records a successful MakeShares call. threshold is accepted
// for callers' convenience but not labeled, keeping series cardinality
// bounded by security level alone.
func RecordSplit(level, threshold, total int) {
	if !enabled.Load() {
		return
	}
	OperationsTotal.WithLabelValues(OpSplit, strconv.Itoa(level)).Inc()
	ShareCount.WithLabelValues(OpSplit).Observe(float64(total))
}

// RecordCombine records a successful Reconstruct call.
func RecordCombine(level, shareCount int) {
	if !enabled.Load() {
		return
	}
	OperationsTotal.WithLabelValues(OpCombine, strconv.Itoa(level)).Inc()
	ShareCount.WithLabelValues(OpCombine).Observe(float64(shareCount))
}

// RecordError records a failed operation (use Op* constants).
func RecordError(operation string) {
	if !enabled.Load() {
		return
	}
	ErrorsTotal.WithLabelValues(operation).Inc()
}

// Enable enables metrics collection. Enabled by default.
func Enable() {
	enabled.Store(true)
}

// Disable disables metrics collection.
func Disable() {
	enabled.Store(false)
}

// IsEnabled returns whether metrics collection is currently enabled.
func IsEnabled() bool {
	return enabled.Load()
}
