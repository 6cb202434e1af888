package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Transliteration Metrics
	TransliterationsTotal    *prometheus.CounterVec
	TransliterationDuration  prometheus.Histogram
	TransliterationInputSize prometheus.Histogram
	GlyphsEmittedTotal       *prometheus.CounterVec
	DroppedCharactersTotal   prometheus.Counter
	CacheEntries             prometheus.Gauge

	// Genealogy Metrics
	GenerationQueriesTotal *prometheus.CounterVec
	TraversalNodesVisited  prometheus.Histogram
	FamilyPersonsTotal     prometheus.Gauge
	FamilyGenerations      prometheus.Gauge
	DanglingReferences     prometheus.Gauge

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge

	registry  *prometheus.Registry
	startTime time.Time
	mu        sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),
	}

	r.initTransliterationMetrics()
	r.initGenealogyMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
