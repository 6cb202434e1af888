package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenealogyMetrics() {
	r.GenerationQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wija_generation_queries_total",
			Help: "Generation depth lookups by outcome",
		},
		[]string{"result"},
	)

	r.TraversalNodesVisited = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wija_traversal_nodes_visited",
			Help:    "Persons dequeued per breadth-first traversal",
			Buckets: []float64{1, 10, 50, 100, 500, 1000},
		},
	)

	r.FamilyPersonsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "wija_family_persons",
			Help: "Persons in the most recently loaded family",
		},
	)

	r.FamilyGenerations = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "wija_family_generations",
			Help: "Deepest generation of the most recently loaded family",
		},
	)

	r.DanglingReferences = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "wija_family_dangling_references",
			Help: "Relationship ids that do not resolve to a person",
		},
	)
}
