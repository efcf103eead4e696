package cookiesession

import (
	"sync"
	"testing"
)

func TestMetricsIncAndSnapshot(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricCookieSet)
	m.Inc(MetricCookieSet)
	m.Inc(MetricDecodeFailure)

	if got := m.Value(MetricCookieSet); got != 2 {
		t.Fatalf("Value(MetricCookieSet) = %d", got)
	}

	snap := m.Snapshot()
	if snap.Counters[MetricCookieSet] != 2 {
		t.Fatalf("snapshot MetricCookieSet = %d", snap.Counters[MetricCookieSet])
	}
	if snap.Counters[MetricDecodeFailure] != 1 {
		t.Fatalf("snapshot MetricDecodeFailure = %d", snap.Counters[MetricDecodeFailure])
	}
	if snap.Counters[MetricCookieCleared] != 0 {
		t.Fatalf("snapshot MetricCookieCleared = %d", snap.Counters[MetricCookieCleared])
	}
}

func TestMetricsDisabledIsNoop(t *testing.T) {
	m := NewMetrics(MetricsConfig{})
	m.Inc(MetricCookieSet)
	if m.Enabled() {
		t.Fatal("expected disabled")
	}
	if got := m.Value(MetricCookieSet); got != 0 {
		t.Fatalf("disabled counter advanced: %d", got)
	}
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatalf("disabled snapshot not empty: %v", snap.Counters)
	}
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricCookieSet)
	if m.Enabled() {
		t.Fatal("nil receiver reports enabled")
	}
	if m.Value(MetricCookieSet) != 0 {
		t.Fatal("nil receiver has a value")
	}
	if snap := m.Snapshot(); snap.Counters == nil {
		t.Fatal("nil receiver snapshot must still allocate the map")
	}
}

func TestMetricsOutOfRangeIDIgnored(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricID(1000))
	if got := m.Value(MetricID(1000)); got != 0 {
		t.Fatalf("out-of-range counter readable: %d", got)
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const goroutines = 8
	const perGoroutine = 1000

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				m.Inc(MetricCookieSet)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricCookieSet); got != goroutines*perGoroutine {
		t.Fatalf("lost increments: %d", got)
	}
}
