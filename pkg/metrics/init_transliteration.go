package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTransliterationMetrics() {
	r.TransliterationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wija_transliterations_total",
			Help: "Total number of transliteration requests",
		},
		[]string{"cache"},
	)

	r.TransliterationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wija_transliteration_duration_seconds",
			Help:    "Time spent producing a transliteration, cache lookups included",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
		},
	)

	r.TransliterationInputSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wija_transliteration_input_runes",
			Help:    "Length of transliterated input in runes",
			Buckets: []float64{4, 16, 64, 256, 1024},
		},
	)

	r.GlyphsEmittedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wija_glyphs_emitted_total",
			Help: "Trace entries emitted, by rule category",
		},
		[]string{"category"},
	)

	r.DroppedCharactersTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wija_dropped_characters_total",
			Help: "Input characters that matched no transliteration rule",
		},
	)

	r.CacheEntries = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "wija_transliteration_cache_entries",
			Help: "Entries currently held by the transliteration cache",
		},
	)
}
