package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider, league string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, league, duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
