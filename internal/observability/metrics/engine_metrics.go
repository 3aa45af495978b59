package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EngineMetrics captures health signals of the computation engines: degraded
// upstream sources, recomputes superseded by a newer generation, and batch
// accrual postings.
type EngineMetrics struct {
	sourceDegraded  *prometheus.CounterVec
	staleDiscarded  prometheus.Counter
	batchPostings   prometheus.Counter
	verifyCacheHits *prometheus.CounterVec
}

var (
	engineOnce sync.Once
	engine     *EngineMetrics
)

// Engine returns the process-wide engine metrics.
func Engine() *EngineMetrics {
	engineOnce.Do(func() {
		engine = &EngineMetrics{
			sourceDegraded: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "taxledger_engine_source_degraded_total",
				Help: "Upstream fetches that failed and degraded to an empty collection.",
			}, []string{"source"}),
			staleDiscarded: promauto.NewCounter(prometheus.CounterOpts{
				Name: "taxledger_engine_stale_results_discarded_total",
				Help: "Recompute results discarded because a newer generation superseded them.",
			}),
			batchPostings: promauto.NewCounter(prometheus.CounterOpts{
				Name: "taxledger_depreciation_postings_total",
				Help: "Monthly depreciation postings written.",
			}),
			verifyCacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "taxledger_gst_verify_cache_total",
				Help: "Registration verification cache lookups by outcome.",
			}, []string{"outcome"}),
		}
	})
	return engine
}

func (m *EngineMetrics) IncSourceDegraded(source string) {
	m.sourceDegraded.WithLabelValues(source).Inc()
}

func (m *EngineMetrics) IncStaleDiscarded() {
	m.staleDiscarded.Inc()
}

func (m *EngineMetrics) AddBatchPostings(n int) {
	m.batchPostings.Add(float64(n))
}

func (m *EngineMetrics) IncVerifyCache(outcome string) {
	m.verifyCacheHits.WithLabelValues(outcome).Inc()
}
