// Package poller fans one NTP query out to every configured server,
// bounded by a worker limit, and assembles the completed cycle into a
// snapshot ordered by measured round-trip time.
package poller

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"ntpmon/internal/ntpclient"
	"ntpmon/internal/stats"
)

// Status classifies one server's outcome for one poll cycle.
type Status int

const (
	StatusSuccess Status = iota
	StatusTimeout
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "ok"
	case StatusTimeout:
		return "timeout"
	default:
		return "error"
	}
}

// Result is one server's outcome for one poll cycle. For failures the
// metric fields are zero, Response is nil, and RTTMillis is +Inf — a sort
// sentinel only, which the display layer must never print.
type Result struct {
	Server    string
	Status    Status
	RTTMillis float64             // Locally measured round-trip time
	Response  *ntpclient.Response // Raw protocol response, nil on failure
}

// OK reports whether the server answered this cycle.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Snapshot is the complete result set of one poll cycle: exactly one entry
// per configured server, sorted ascending by round-trip time with failed
// servers last (in configured order among themselves).
type Snapshot struct {
	Results []Result
	TakenAt time.Time
}

// Poller runs poll cycles. Concurrency lives entirely inside Poll; from
// the caller's point of view a cycle is one synchronous call.
type Poller struct {
	client  ntpclient.Querier
	tracker *stats.Tracker
	servers []string
	workers int
}

// New returns a Poller querying servers through client with at most
// workers requests in flight at once. Successful results are folded into
// tracker as they arrive.
func New(client ntpclient.Querier, tracker *stats.Tracker, servers []string, workers int) *Poller {
	if workers <= 0 {
		workers = 1
	}
	return &Poller{
		client:  client,
		tracker: tracker,
		servers: servers,
		workers: workers,
	}
}

// Poll runs one cycle: every server is queried concurrently (bounded by
// the worker limit), each request is wall-clock timed locally, and the
// cycle completes only when every request has finished. Individual server
// failures degrade to sentinel results; they never fail the cycle.
func (p *Poller) Poll(ctx context.Context) Snapshot {
	results := make([]Result, len(p.servers))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, server := range p.servers {
		i, server := i, server
		g.Go(func() error {
			start := time.Now()
			resp, err := p.client.Query(gctx, server)
			elapsed := time.Since(start)

			r := Result{Server: server}
			if err != nil {
				r.RTTMillis = math.Inf(1)
				if ntpclient.IsTimeout(err) {
					r.Status = StatusTimeout
				} else {
					r.Status = StatusError
				}
			} else {
				r.Status = StatusSuccess
				r.RTTMillis = float64(elapsed) / float64(time.Millisecond)
				r.Response = resp
				p.tracker.Observe(server,
					r.RTTMillis,
					resp.ClockOffset.Seconds(),
					resp.RootDelay.Seconds(),
					resp.RootDispersion.Seconds(),
					resp.Stratum)
			}

			mu.Lock()
			results[i] = r
			mu.Unlock()
			return nil // never fail-fast; every server reports something
		})
	}

	_ = g.Wait()

	// Stable sort keeps failed servers (+Inf sentinel) in configured
	// order behind every success.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RTTMillis < results[j].RTTMillis
	})

	return Snapshot{Results: results, TakenAt: time.Now()}
}
