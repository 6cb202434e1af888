package metrics

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var metric dto.Metric
	if err := h.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.TransliterationsTotal == nil {
		t.Error("TransliterationsTotal not initialized")
	}
	if r.GenerationQueriesTotal == nil {
		t.Error("GenerationQueriesTotal not initialized")
	}
	if r.UptimeSeconds == nil {
		t.Error("UptimeSeconds not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordTransliteration(t *testing.T) {
	r := NewRegistry()

	r.RecordTransliteration(CacheMiss, 50*time.Microsecond, 5, map[string]int{"consonant": 2, "vowel": 1}, 1)
	r.RecordTransliteration(CacheHit, time.Microsecond, 5, map[string]int{"consonant": 2, "vowel": 1}, 1)
	r.RecordTransliteration(CacheMiss, 20*time.Microsecond, 2, map[string]int{"digraph": 1}, 0)

	misses, err := r.TransliterationsTotal.GetMetricWithLabelValues(CacheMiss)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, misses); got != 2 {
		t.Errorf("miss counter = %v, want 2", got)
	}

	consonants, _ := r.GlyphsEmittedTotal.GetMetricWithLabelValues("consonant")
	if got := counterValue(t, consonants); got != 4 {
		t.Errorf("consonant glyphs = %v, want 4", got)
	}

	if got := counterValue(t, r.DroppedCharactersTotal); got != 2 {
		t.Errorf("dropped = %v, want 2", got)
	}

	if got := histogramCount(t, r.TransliterationDuration); got != 3 {
		t.Errorf("duration samples = %v, want 3", got)
	}
}

func TestRecordGenerationQuery(t *testing.T) {
	r := NewRegistry()

	r.RecordGenerationQuery(true, 3)
	r.RecordGenerationQuery(false, 8)
	r.RecordGenerationQuery(false, 0)

	found, _ := r.GenerationQueriesTotal.GetMetricWithLabelValues("found")
	unknown, _ := r.GenerationQueriesTotal.GetMetricWithLabelValues("unknown")

	if got := counterValue(t, found); got != 1 {
		t.Errorf("found = %v, want 1", got)
	}
	if got := counterValue(t, unknown); got != 2 {
		t.Errorf("unknown = %v, want 2", got)
	}

	r.RecordTraversal(12)
	if got := histogramCount(t, r.TraversalNodesVisited); got != 4 {
		t.Errorf("traversal samples = %v, want 4", got)
	}
}

func TestGaugeMetrics(t *testing.T) {
	r := NewRegistry()

	r.UpdateFamilyMetrics(8, 4, 1)
	r.SetCacheEntries(17)

	if got := gaugeValue(t, r.FamilyPersonsTotal); got != 8 {
		t.Errorf("persons = %v, want 8", got)
	}
	if got := gaugeValue(t, r.FamilyGenerations); got != 4 {
		t.Errorf("generations = %v, want 4", got)
	}
	if got := gaugeValue(t, r.DanglingReferences); got != 1 {
		t.Errorf("dangling = %v, want 1", got)
	}
	if got := gaugeValue(t, r.CacheEntries); got != 17 {
		t.Errorf("cache entries = %v, want 17", got)
	}
}

func TestSystemMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateSystemMetrics()

	if got := gaugeValue(t, r.GoRoutines); got < 1 {
		t.Errorf("goroutines = %v, want >= 1", got)
	}
	if got := gaugeValue(t, r.MemoryAllocBytes); got <= 0 {
		t.Errorf("memory alloc = %v, want > 0", got)
	}
}

func TestWriteText(t *testing.T) {
	r := NewRegistry()
	r.RecordTransliteration(CacheMiss, time.Microsecond, 2, map[string]int{"consonant": 1}, 0)
	r.RecordGenerationQuery(true, 1)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	out := buf.String()
	for _, name := range []string{
		"wija_transliterations_total",
		"wija_glyphs_emitted_total",
		"wija_generation_queries_total",
		"wija_uptime_seconds",
	} {
		if !strings.Contains(out, name) {
			t.Errorf("exposition missing %s", name)
		}
	}
}

func TestMetricNaming(t *testing.T) {
	r := NewRegistry()
	r.RecordTransliteration(CacheDisabled, 0, 0, map[string]int{"vowel": 1}, 1)
	r.RecordGenerationQuery(true, 1)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "wija_") {
			t.Errorf("metric %s lacks wija_ prefix", mf.GetName())
		}
	}
}

func TestConcurrentMetricUpdates(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.RecordTransliteration(CacheMiss, time.Microsecond, 3, map[string]int{"consonant": 1}, 0)
				r.UpdateSystemMetrics()
			}
		}()
	}
	wg.Wait()

	misses, _ := r.TransliterationsTotal.GetMetricWithLabelValues(CacheMiss)
	if got := counterValue(t, misses); got != 1000 {
		t.Errorf("miss counter = %v, want 1000", got)
	}
}

func BenchmarkRecordTransliteration(b *testing.B) {
	r := NewRegistry()
	glyphs := map[string]int{"consonant": 3, "vowel": 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RecordTransliteration(CacheMiss, time.Microsecond, 6, glyphs, 0)
	}
}
