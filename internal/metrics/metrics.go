package metrics

import (
	"sort"
	"sync"
	"time"
)

type endpointStats struct {
	calls       int
	errors      int
	lastStatus  int
	lastLatency time.Duration
}

// Recorder captures in-memory metrics about API calls, keyed by endpoint,
// and forwards them to OpenTelemetry instruments when telemetry is enabled.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordRequest counts one call. Calls with a non-nil error or a status >= 400 count as errors.
func (r *Recorder) RecordRequest(method, endpoint string, status int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	failed := err != nil || status >= 400

	r.mu.Lock()
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	stats.calls++
	stats.lastStatus = status
	stats.lastLatency = duration
	if failed {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRequest(method, endpoint, status, duration, failed)
	}
}

// Snapshot is a copy of the stats for one endpoint.
type Snapshot struct {
	Calls       int
	Errors      int
	LastStatus  int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastStatus:  stats.lastStatus,
		LastLatency: stats.lastLatency,
	}
}

// Calls returns the total calls recorded for an endpoint.
func (r *Recorder) Calls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// Errors returns the failed calls recorded for an endpoint.
func (r *Recorder) Errors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// Endpoints lists every endpoint seen so far, sorted.
func (r *Recorder) Endpoints() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.stats))
	for name := range r.stats {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
