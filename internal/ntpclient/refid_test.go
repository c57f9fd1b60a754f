package ntpclient

import (
	"context"
	"errors"
	"net"
	"os"
	"testing"
)

func TestNewRefIDTagsByStratum(t *testing.T) {
	tests := []struct {
		name    string
		stratum uint8
		want    RefIDKind
	}{
		{"kiss_of_death", 0, RefASCII},
		{"primary", 1, RefASCII},
		{"secondary", 2, RefNumeric},
		{"deep", 15, RefNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRefID(tt.stratum, 0x47505300).Kind; got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRefIDString(t *testing.T) {
	tests := []struct {
		name string
		id   RefID
		want string
	}{
		{"ascii_clock_source", RefID{Kind: RefASCII, Value: 0x47505300}, "GPS"}, // "GPS\0"
		{"ascii_four_chars", RefID{Kind: RefASCII, Value: 0x474f4f47}, "GOOG"},
		{"ascii_nonprintable_replaced", RefID{Kind: RefASCII, Value: 0x47015053}, "G.PS"},
		{"numeric_lower_hex", RefID{Kind: RefNumeric, Value: 0xC0A80101}, "c0a80101"},
		{"numeric_leading_zeros", RefID{Kind: RefNumeric, Value: 0xFF}, "000000ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context_deadline", context.DeadlineExceeded, true},
		{"os_deadline", os.ErrDeadlineExceeded, true},
		{"dns_timeout", &net.DNSError{IsTimeout: true}, true},
		{"dns_other", &net.DNSError{}, false},
		{"plain_error", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.want {
				t.Errorf("IsTimeout(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
