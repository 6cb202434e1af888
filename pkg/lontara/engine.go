package lontara

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dd0wney/wija/pkg/logging"
	"github.com/dd0wney/wija/pkg/metrics"
)

// EngineOptions configures an Engine
type EngineOptions struct {
	CacheSize int // 0 disables memoization
	Logger    logging.Logger
	Metrics   *metrics.Registry // nil disables metrics
}

// DefaultEngineOptions returns sensible defaults
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		CacheSize: 1024,
		Logger:    logging.NewNopLogger(),
	}
}

// Engine memoizes Transliterate for repeated names and reports what it does.
// It is safe for concurrent use.
type Engine struct {
	cache   *lru.Cache[string, Result]
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewEngine creates an engine with the given options
func NewEngine(opts EngineOptions) (*Engine, error) {
	if opts.CacheSize < 0 {
		return nil, fmt.Errorf("cache size must be >= 0, got %d", opts.CacheSize)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	e := &Engine{
		logger:  logger.With(logging.Component("lontara")),
		metrics: opts.Metrics,
	}

	if opts.CacheSize > 0 {
		cache, err := lru.New[string, Result](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create transliteration cache: %w", err)
		}
		e.cache = cache
	}

	return e, nil
}

// Transliterate behaves like the package-level Transliterate. Each call
// returns its own copy of the trace.
func (e *Engine) Transliterate(text string) Result {
	start := time.Now()
	key := strings.ToLower(text)

	outcome := metrics.CacheDisabled
	var res Result

	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			outcome = metrics.CacheHit
			res = cached.Clone()
		} else {
			outcome = metrics.CacheMiss
			res = Transliterate(key)
			e.cache.Add(key, res.Clone())
		}
	} else {
		res = Transliterate(key)
	}

	elapsed := time.Since(start)
	e.logger.Debug("transliterated",
		logging.Input(text),
		logging.Glyphs(len(res.Details)),
		logging.Dropped(res.Dropped),
		logging.CacheHit(outcome == metrics.CacheHit),
		logging.Latency(elapsed),
	)

	if e.metrics != nil {
		counts := res.CategoryCounts()
		byCategory := make(map[string]int, len(counts))
		for c, n := range counts {
			byCategory[string(c)] = n
		}
		e.metrics.RecordTransliteration(outcome, elapsed, utf8.RuneCountInString(key), byCategory, res.Dropped)
		if e.cache != nil {
			e.metrics.SetCacheEntries(e.cache.Len())
		}
	}

	return res
}

// CacheLen returns the number of memoized inputs
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// Purge empties the cache
func (e *Engine) Purge() {
	if e.cache != nil {
		e.cache.Purge()
	}
}
