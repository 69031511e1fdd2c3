package devtools

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tracked/pkg/tracked"
)

// Default tracer name for tracked applications.
const defaultTracerName = "tracked"

// RunRecord is one observed effect execution.
type RunRecord struct {
	// Seq is a monotonically increasing sequence number across all
	// effects observed by one Recorder.
	Seq uint64 `json:"seq"`

	// Effect is the effect's WithName label; empty for unnamed effects.
	Effect string `json:"effect"`

	// At is when the run completed.
	At time.Time `json:"at"`

	// Mount is true for an effect's first run after mount.
	Mount bool `json:"mount"`

	// ChangeCount is the number of dependency keys that changed.
	ChangeCount int `json:"changeCount"`

	// Changed lists the keys that changed, sorted.
	Changed []string `json:"changed,omitempty"`

	// Duration is how long the effect body ran.
	Duration time.Duration `json:"durationNs"`
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithCapacity sets the ring buffer capacity (default: 512).
func WithCapacity(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// WithMetrics enables Prometheus metrics with the given configuration.
// Zero-valued fields fall back to the defaults documented on
// MetricsConfig.
func WithMetrics(config MetricsConfig) RecorderOption {
	return func(r *Recorder) {
		defaults := defaultMetricsConfig()
		if config.Namespace == "" {
			config.Namespace = defaults.Namespace
		}
		if config.Buckets == nil {
			config.Buckets = defaults.Buckets
		}
		if config.Registry == nil {
			config.Registry = defaults.Registry
		}
		r.metrics = initMetrics(config)
	}
}

// WithTracing enables an OpenTelemetry span per effect run. An empty
// tracerName uses the default ("tracked").
func WithTracing(tracerName string) RecorderOption {
	return func(r *Recorder) {
		if tracerName == "" {
			tracerName = defaultTracerName
		}
		r.tracer = otel.Tracer(tracerName)
	}
}

// Recorder observes tracked effect runs. It implements tracked.Observer
// and is safe for use from multiple owners at once.
type Recorder struct {
	mu       sync.RWMutex
	ring     []RunRecord
	start    int
	count    int
	capacity int
	seq      uint64

	subs map[chan RunRecord]struct{}

	metrics *metrics
	tracer  trace.Tracer
}

// NewRecorder creates a Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		capacity: 512,
		subs:     make(map[chan RunRecord]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.ring = make([]RunRecord, r.capacity)
	return r
}

// ObserveRun implements tracked.Observer.
func (r *Recorder) ObserveRun(name string, s tracked.Summary, d time.Duration) {
	changed := make([]string, 0, s.ChangeCount)
	for k, c := range s.Did {
		if c.Changed {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)

	now := time.Now()
	rec := RunRecord{
		Effect:      name,
		At:          now,
		Mount:       s.IsMount,
		ChangeCount: s.ChangeCount,
		Changed:     changed,
		Duration:    d,
	}

	r.mu.Lock()
	r.seq++
	rec.Seq = r.seq
	r.push(rec)
	subs := make([]chan RunRecord, 0, len(r.subs))
	for ch := range r.subs {
		subs = append(subs, ch)
	}
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.record(rec)
	}
	if r.tracer != nil {
		r.emitSpan(rec, now.Add(-d), now)
	}

	// Non-blocking fanout: a slow subscriber drops records rather than
	// stalling the effect body's caller.
	for _, ch := range subs {
		select {
		case ch <- rec:
		default:
		}
	}
}

// push appends to the ring. Caller holds r.mu.
func (r *Recorder) push(rec RunRecord) {
	if r.count < r.capacity {
		r.ring[(r.start+r.count)%r.capacity] = rec
		r.count++
		return
	}
	r.ring[r.start] = rec
	r.start = (r.start + 1) % r.capacity
}

// emitSpan records the run as a completed span using the observed
// timestamps.
func (r *Recorder) emitSpan(rec RunRecord, start, end time.Time) {
	_, span := r.tracer.Start(context.Background(), "tracked.effect",
		trace.WithTimestamp(start),
		trace.WithAttributes(
			attribute.String("effect.name", rec.Effect),
			attribute.Int("effect.changed_keys", rec.ChangeCount),
			attribute.Bool("effect.mount", rec.Mount),
		),
	)
	span.End(trace.WithTimestamp(end))
}

// Snapshot returns the recorded runs, oldest first.
func (r *Recorder) Snapshot() []RunRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RunRecord, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.ring[(r.start+i)%r.capacity]
	}
	return out
}

// Subscribe returns a channel receiving every run observed after the
// call, and a cancel function that must be called to release it.
// Records are dropped rather than delivered late if the receiver falls
// behind.
func (r *Recorder) Subscribe() (<-chan RunRecord, func()) {
	ch := make(chan RunRecord, 64)

	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		delete(r.subs, ch)
		r.mu.Unlock()
	}
	return ch, cancel
}
