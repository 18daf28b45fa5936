package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registry keeps counters for the /metrics endpoint and mirrors every
// increment to an OpenTelemetry counter of the same name.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	meter    metric.Meter
	otelCtrs map[string]metric.Int64Counter
}

func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		meter:    otel.GetMeterProvider().Meter("stylesense"),
		otelCtrs: make(map[string]metric.Int64Counter),
	}
}

func fullKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Inc is safe on a nil Registry.
func (r *Registry) Inc(ctx context.Context, name string, labels map[string]string) {
	if r == nil {
		return
	}
	key := fullKey(name, labels)

	r.mu.Lock()
	c := r.counters[key]
	if c == nil {
		c = new(atomic.Int64)
		r.counters[key] = c
	}
	inst := r.otelCtrs[name]
	if inst == nil {
		if ctr, err := r.meter.Int64Counter(name); err == nil {
			r.otelCtrs[name] = ctr
			inst = ctr
		}
	}
	r.mu.Unlock()

	c.Add(1)
	if inst != nil {
		attrs := make([]attribute.KeyValue, 0, len(labels))
		for k, v := range labels {
			attrs = append(attrs, attribute.String(k, v))
		}
		inst.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func (r *Registry) Value(name string, labels map[string]string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c := r.counters[fullKey(name, labels)]; c != nil {
		return c.Load()
	}
	return 0
}

func (r *Registry) SnapshotLines() []string {
	r.mu.RLock()
	lines := make([]string, 0, len(r.counters))
	for k, v := range r.counters {
		lines = append(lines, fmt.Sprintf("%s %d", k, v.Load()))
	}
	r.mu.RUnlock()
	sort.Strings(lines)
	return lines
}

// Handler writes counters in a plain text format, one per line.
func (r *Registry) Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, line := range r.SnapshotLines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return
		}
	}
}

// StatusClass buckets an HTTP status code, e.g. 404 -> "4xx".
func StatusClass(code int) string {
	if code < 100 || code >= 600 {
		return "0"
	}
	return fmt.Sprintf("%dxx", code/100)
}
