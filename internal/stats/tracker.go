// Package stats accumulates per-server metric bounds across poll cycles.
// Each successfully polled server widens a set of [min,max] intervals that
// only ever grow for the lifetime of the process.
package stats

import (
	"math"
	"sync"
)

// Interval is a running [Min,Max] bound over observed samples. The zero
// state produced by NewInterval is the empty interval (+Inf,-Inf), meaning
// no sample has been seen; callers must render that as "no data", never as
// the raw infinities.
type Interval struct {
	Min float64
	Max float64
}

// NewInterval returns the empty interval.
func NewInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Empty reports whether the interval has absorbed no samples yet.
func (iv Interval) Empty() bool {
	return iv.Min > iv.Max
}

// Widen absorbs one sample. Bounds only ever move outward.
func (iv *Interval) Widen(x float64) {
	iv.Min = math.Min(iv.Min, x)
	iv.Max = math.Max(iv.Max, x)
}

// ServerStats holds the tracked bounds for one server: round-trip time in
// milliseconds, offset, root delay and root dispersion in seconds, and
// stratum.
type ServerStats struct {
	RTT        Interval
	Offset     Interval
	Delay      Interval
	Dispersion Interval
	Stratum    Interval
}

func newServerStats() *ServerStats {
	return &ServerStats{
		RTT:        NewInterval(),
		Offset:     NewInterval(),
		Delay:      NewInterval(),
		Dispersion: NewInterval(),
		Stratum:    NewInterval(),
	}
}

// Tracker maps server hostnames to their accumulated bounds. It is written
// by poll completions and read by the render path, which may be concurrent;
// one lock around the map keeps reads from seeing a half-applied update.
// Contention is irrelevant at this scale (tens of servers, seconds between
// cycles).
type Tracker struct {
	mu      sync.RWMutex
	servers map[string]*ServerStats
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{servers: make(map[string]*ServerStats)}
}

// Observe widens the bounds for server with one successful poll's metrics.
// It is never called for failed polls; failures leave the bounds untouched.
func (t *Tracker) Observe(server string, rttMillis, offsetSec, delaySec, dispersionSec float64, stratum uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.servers[server]
	if !ok {
		st = newServerStats()
		t.servers[server] = st
	}
	st.RTT.Widen(rttMillis)
	st.Offset.Widen(offsetSec)
	st.Delay.Widen(delaySec)
	st.Dispersion.Widen(dispersionSec)
	st.Stratum.Widen(float64(stratum))
}

// Lookup returns a copy of the bounds for server. A server that has never
// been successfully polled yields all-empty intervals.
func (t *Tracker) Lookup(server string) ServerStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if st, ok := t.servers[server]; ok {
		return *st
	}
	return *newServerStats()
}
