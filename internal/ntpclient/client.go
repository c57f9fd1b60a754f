// Package ntpclient is the boundary to the NTP wire protocol. It wraps
// github.com/beevik/ntp behind a small interface so the polling and UI
// layers can be tested against fakes, and it normalizes the response into
// the fields the rest of the tool consumes.
package ntpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/beevik/ntp"
)

// Response is one server's answer to a single NTP query.
type Response struct {
	Time           time.Time     // Server transmit time (UTC)
	ClockOffset    time.Duration // Estimated local clock offset
	RTT            time.Duration // Round-trip delay as computed by the protocol
	Stratum        uint8         // Distance from the reference clock
	Leap           uint8         // Leap indicator (0 = no warning, 3 = unsynchronized)
	Precision      time.Duration // Server clock precision
	Poll           time.Duration // Suggested poll interval
	RootDelay      time.Duration // Cumulative delay to the stratum-1 source
	RootDispersion time.Duration // Cumulative error bound to the stratum-1 source
	RootDistance   time.Duration // Synchronization distance estimate
	ReferenceTime  time.Time     // When the server clock was last set
	ReferenceID    RefID         // Reference identifier (clock source or upstream address)
	MinError       time.Duration // Lower bound on the offset error
	KissCode       string        // Kiss-of-death code, if the server sent one
}

// Querier issues a single NTP query against one server. Implementations
// must be safe for concurrent use; the poller calls Query from many
// goroutines at once.
type Querier interface {
	Query(ctx context.Context, host string) (*Response, error)
}

// Client is the production Querier, backed by beevik/ntp.
type Client struct {
	timeout time.Duration
}

// New returns a Client whose queries give up after timeout.
func New(timeout time.Duration) *Client {
	return &Client{timeout: timeout}
}

// Query performs one NTP exchange with host. The underlying library has no
// context plumbing, so cancellation is checked before the exchange and the
// per-request timeout bounds the exchange itself.
func (c *Client) Query(ctx context.Context, host string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := ntp.QueryWithOptions(host, ntp.QueryOptions{Timeout: c.timeout})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", host, err)
	}
	// A parseable response can still be unusable (kiss-of-death,
	// unsynchronized server). Validate rejects those.
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("query %s: %w", host, err)
	}

	return &Response{
		Time:           resp.Time.UTC(),
		ClockOffset:    resp.ClockOffset,
		RTT:            resp.RTT,
		Stratum:        resp.Stratum,
		Leap:           uint8(resp.Leap),
		Precision:      resp.Precision,
		Poll:           resp.Poll,
		RootDelay:      resp.RootDelay,
		RootDispersion: resp.RootDispersion,
		RootDistance:   resp.RootDistance,
		ReferenceTime:  resp.ReferenceTime.UTC(),
		ReferenceID:    NewRefID(resp.Stratum, resp.ReferenceID),
		MinError:       resp.MinError,
		KissCode:       resp.KissCode,
	}, nil
}

// IsTimeout reports whether err represents a request deadline expiring
// rather than some other failure (DNS, unreachable network, bad packet).
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
