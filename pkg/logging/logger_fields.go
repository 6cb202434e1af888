package logging

import (
	"time"
)

const componentKey = "component"

// maxInputPreview bounds how much user text ends up in a log line
const maxInputPreview = 64

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component names the emitting subsystem; it is lifted to the top of the entry
func Component(name string) Field {
	return String(componentKey, name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

// Input records user text, truncated to a short preview
func Input(text string) Field {
	r := []rune(text)
	if len(r) > maxInputPreview {
		return String("input", string(r[:maxInputPreview])+"…")
	}
	return String("input", text)
}

func Glyphs(n int) Field {
	return Int("glyphs", n)
}

func Dropped(n int) Field {
	return Int("dropped", n)
}

func CacheHit(hit bool) Field {
	return Bool("cache_hit", hit)
}

func PersonID(id string) Field {
	return String("person_id", id)
}

func RootID(id string) Field {
	return String("root_id", id)
}

func Depth(d int) Field {
	return Int("depth", d)
}
