// Package format renders metric values and their accumulated bounds for
// both the dashboard and the one-shot check output.
package format

import (
	"fmt"

	"github.com/fatih/color"

	"ntpmon/internal/stats"
)

// Placeholders for servers that failed the current cycle. The internal
// +Inf/-Inf sentinels must never reach the display; these stand in.
const (
	TimeoutLabel = "Timeout"
	NA           = "N/A"
)

var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Metric renders "current (min-max)" with prec decimal places, or just the
// current value while the bounds are still empty.
func Metric(cur float64, iv stats.Interval, prec int) string {
	if iv.Empty() {
		return fmt.Sprintf("%.*f", prec, cur)
	}
	return fmt.Sprintf("%.*f (%.*f-%.*f)", prec, cur, prec, iv.Min, prec, iv.Max)
}

// Stratum renders the stratum column, "2 (1-2)" style.
func Stratum(cur uint8, iv stats.Interval) string {
	if iv.Empty() {
		return fmt.Sprintf("%d", cur)
	}
	return fmt.Sprintf("%d (%.0f-%.0f)", cur, iv.Min, iv.Max)
}

// ColorRTT colors a measured round-trip time by rough quality bands.
func ColorRTT(ms float64) string {
	s := fmt.Sprintf("%.2fms", ms)
	switch {
	case ms < 50:
		return Green(s)
	case ms < 150:
		return Yellow(s)
	default:
		return Red(s)
	}
}

// ColorStatus colors a poll status label: green for success, red
// otherwise.
func ColorStatus(label string, ok bool) string {
	if ok {
		return Green(label)
	}
	return Red(label)
}
