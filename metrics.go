package cookiesession

import "sync/atomic"

// MetricID identifies one middleware counter.
type MetricID uint16

const (
	// MetricSessionLoaded counts sessions materialized from a valid cookie.
	MetricSessionLoaded MetricID = iota
	// MetricSessionNew counts sessions created fresh (no valid cookie).
	MetricSessionNew
	// MetricDecodeFailure counts cookies present but undecodable.
	MetricDecodeFailure
	// MetricCookieSet counts responses that carried a session cookie.
	MetricCookieSet
	// MetricCookieCleared counts responses that expired the session cookie.
	MetricCookieCleared
	// MetricWriteSkipped counts finalizations that deliberately wrote nothing
	// (untouched or empty sessions).
	MetricWriteSkipped
	// MetricInvalidSet counts rejected SetSession values.
	MetricInvalidSet
	// MetricWriteError counts cookie writes that failed (insecure context,
	// oversize value).
	MetricWriteError
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics collects middleware counters. All methods are safe for concurrent
// use and are no-ops on a nil or disabled receiver.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// NewMetrics creates a Metrics collector.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether counters are being collected.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc increments one counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value reads one counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot copies every counter. Disabled collectors return an empty map.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	s := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricIDCount))}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return s
}
