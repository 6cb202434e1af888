package metrics

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/prometheus/common/expfmt"
)

// Cache outcome label values
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheDisabled = "disabled"
)

// RecordTransliteration records one transliteration request
func (r *Registry) RecordTransliteration(cache string, duration time.Duration, inputRunes int, glyphsByCategory map[string]int, dropped int) {
	r.TransliterationsTotal.WithLabelValues(cache).Inc()
	r.TransliterationDuration.Observe(duration.Seconds())
	r.TransliterationInputSize.Observe(float64(inputRunes))

	for category, n := range glyphsByCategory {
		r.GlyphsEmittedTotal.WithLabelValues(category).Add(float64(n))
	}
	if dropped > 0 {
		r.DroppedCharactersTotal.Add(float64(dropped))
	}
}

// SetCacheEntries reports the current cache population
func (r *Registry) SetCacheEntries(n int) {
	r.CacheEntries.Set(float64(n))
}

// RecordGenerationQuery records a depth lookup and the size of its traversal
func (r *Registry) RecordGenerationQuery(found bool, visited int) {
	result := "found"
	if !found {
		result = "unknown"
	}
	r.GenerationQueriesTotal.WithLabelValues(result).Inc()
	r.TraversalNodesVisited.Observe(float64(visited))
}

// RecordTraversal records a full traversal that was not tied to one target
func (r *Registry) RecordTraversal(visited int) {
	r.TraversalNodesVisited.Observe(float64(visited))
}

// UpdateFamilyMetrics records the shape of a loaded family
func (r *Registry) UpdateFamilyMetrics(persons, generations, dangling int) {
	r.FamilyPersonsTotal.Set(float64(persons))
	r.FamilyGenerations.Set(float64(generations))
	r.DanglingReferences.Set(float64(dangling))
}

// UpdateSystemMetrics samples process level gauges
func (r *Registry) UpdateSystemMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	r.UptimeSeconds.Set(time.Since(r.startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(mem.Alloc))
}

// WriteText writes every gathered metric family in the Prometheus text format
func (r *Registry) WriteText(w io.Writer) error {
	r.UpdateSystemMetrics()

	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
