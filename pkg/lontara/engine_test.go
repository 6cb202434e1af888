package lontara

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/goleak"

	"github.com/dd0wney/wija/pkg/logging"
	"github.com/dd0wney/wija/pkg/metrics"
)

func counter(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}

func TestNewEngine_RejectsNegativeCache(t *testing.T) {
	if _, err := NewEngine(EngineOptions{CacheSize: -1}); err == nil {
		t.Error("expected error for negative cache size")
	}
}

func TestEngine_MatchesPureFunction(t *testing.T) {
	e, err := NewEngine(DefaultEngineOptions())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	for _, in := range []string{"", "Andi", "ANDI", "ngka", "Syarif, 1920."} {
		want := Transliterate(in)
		for i := 0; i < 2; i++ {
			got := e.Transliterate(in)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("pass %d for %q mismatch (-want +got):\n%s", i, in, diff)
			}
		}
	}
}

func TestEngine_CacheReturnsCopies(t *testing.T) {
	e, _ := NewEngine(DefaultEngineOptions())

	first := e.Transliterate("kita")
	first.Details[0].Lontara = "tampered"

	second := e.Transliterate("kita")
	if second.Details[0].Lontara != "ᨀᨗ" {
		t.Errorf("cached trace was mutated through a returned result: %q", second.Details[0].Lontara)
	}
}

func TestEngine_CacheKeyIgnoresCase(t *testing.T) {
	e, _ := NewEngine(DefaultEngineOptions())

	e.Transliterate("Andi")
	e.Transliterate("ANDI")
	e.Transliterate("andi")

	if e.CacheLen() != 1 {
		t.Errorf("CacheLen() = %d, want 1", e.CacheLen())
	}

	e.Purge()
	if e.CacheLen() != 0 {
		t.Errorf("CacheLen() after Purge = %d, want 0", e.CacheLen())
	}
}

func TestEngine_CacheDisabled(t *testing.T) {
	reg := metrics.NewRegistry()
	e, err := NewEngine(EngineOptions{CacheSize: 0, Metrics: reg})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	e.Transliterate("ka")
	if e.CacheLen() != 0 {
		t.Errorf("CacheLen() = %d, want 0", e.CacheLen())
	}

	disabled, _ := reg.TransliterationsTotal.GetMetricWithLabelValues(metrics.CacheDisabled)
	if got := counter(t, disabled); got != 1 {
		t.Errorf("disabled counter = %v, want 1", got)
	}
}

func TestEngine_RecordsMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	opts := DefaultEngineOptions()
	opts.Metrics = reg
	e, _ := NewEngine(opts)

	e.Transliterate("ka!")
	e.Transliterate("ka!")

	hits, _ := reg.TransliterationsTotal.GetMetricWithLabelValues(metrics.CacheHit)
	misses, _ := reg.TransliterationsTotal.GetMetricWithLabelValues(metrics.CacheMiss)
	if counter(t, hits) != 1 || counter(t, misses) != 1 {
		t.Errorf("hits=%v misses=%v, want 1 and 1", counter(t, hits), counter(t, misses))
	}

	consonants, _ := reg.GlyphsEmittedTotal.GetMetricWithLabelValues(string(CategoryConsonant))
	if got := counter(t, consonants); got != 2 {
		t.Errorf("consonant glyphs = %v, want 2", got)
	}
	if got := counter(t, reg.DroppedCharactersTotal); got != 2 {
		t.Errorf("dropped = %v, want 2", got)
	}
}

func TestEngine_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultEngineOptions()
	opts.Logger = logging.NewJSONLogger(&buf, logging.DebugLevel)
	e, _ := NewEngine(opts)

	e.Transliterate("nga")

	out := buf.String()
	if !strings.Contains(out, `"component":"lontara"`) || !strings.Contains(out, `"input":"nga"`) {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	opts := DefaultEngineOptions()
	opts.CacheSize = 8
	opts.Metrics = metrics.NewRegistry()
	e, _ := NewEngine(opts)

	names := []string{"Andi", "Siti", "Budiman", "Fatimah", "Rahmawati", "Firman", "Zahra", "Ariq", "Mappanyukki", "Kadir"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				name := names[(g+i)%len(names)]
				if got := e.Transliterate(name); got.Lontara != Transliterate(name).Lontara {
					t.Errorf("concurrent result for %q = %q", name, got.Lontara)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if e.CacheLen() > 8 {
		t.Errorf("CacheLen() = %d, exceeds bound 8", e.CacheLen())
	}
}
