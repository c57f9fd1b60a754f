package ntpclient

import (
	"fmt"
	"strings"
)

// RefIDKind tags how a reference identifier should be interpreted.
type RefIDKind int

const (
	// RefASCII means the four bytes name a clock source ("GPS", "PPS",
	// "GOOG"), as primary servers and kiss-of-death responses use.
	RefASCII RefIDKind = iota
	// RefNumeric means the word identifies the upstream server (an
	// address or a hash of one) and is shown as hex.
	RefNumeric
)

// RefID is the 32-bit reference identifier from an NTP response, tagged
// with how it should be rendered. The tag is fixed when the response is
// decoded; rendering dispatches on it and nothing else.
type RefID struct {
	Kind  RefIDKind
	Value uint32
}

// NewRefID tags a raw reference identifier word. At stratum 0 and 1 the
// word is an ASCII clock-source name; above that it refers to the upstream
// server numerically.
func NewRefID(stratum uint8, value uint32) RefID {
	if stratum <= 1 {
		return RefID{Kind: RefASCII, Value: value}
	}
	return RefID{Kind: RefNumeric, Value: value}
}

// String renders the identifier: ASCII kinds as the (trimmed) four-byte
// name with non-printable bytes replaced by '.', numeric kinds as 8-digit
// lowercase hex.
func (r RefID) String() string {
	switch r.Kind {
	case RefASCII:
		b := []byte{
			byte(r.Value >> 24),
			byte(r.Value >> 16),
			byte(r.Value >> 8),
			byte(r.Value),
		}
		var sb strings.Builder
		for _, c := range b {
			if c >= 0x20 && c < 0x7f {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('.')
			}
		}
		return strings.TrimRight(sb.String(), ".")
	default:
		return fmt.Sprintf("%08x", r.Value)
	}
}
