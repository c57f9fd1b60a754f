package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ntpmon/internal/format"
	"ntpmon/internal/poller"
)

const timeLayout = "2006-01-02 15:04:05"

// View renders the active mode. Every emitted line is clipped to the
// terminal width and the line count never exceeds the terminal height; a
// too-small terminal truncates, it never errors.
func (m Model) View() string {
	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewTable()
	}
}

func (m Model) rowStyles() (base, alt, sel, header lipgloss.Style) {
	s := m.schemes[m.scheme]
	base = lipgloss.NewStyle().Foreground(s.FG).Background(s.BG)
	alt = lipgloss.NewStyle().Foreground(s.FG).Background(s.Highlight)
	// Inverted emphasis for the selected row.
	sel = lipgloss.NewStyle().Foreground(s.BG).Background(s.FG)
	header = lipgloss.NewStyle().Foreground(s.Header).Background(s.BG).Bold(true)
	return
}

func (m Model) viewTable() string {
	base, alt, sel, header := m.rowStyles()

	columns := fmt.Sprintf("%-20s %-24s %-30s %-21s %-24s %-24s %-12s",
		"Server", "RTT (ms)", "Offset (s)", "NTP Time", "Root Delay", "Root Disp", "Stratum")

	lines := make([]string, 0, m.height)
	lines = append(lines, header.Render(fit(columns, m.width)))

	// One row reserved for the header, one for the footer.
	visible := m.height - 2
	if visible < 0 {
		visible = 0
	}

	if !m.haveSnapshot {
		if visible > 0 {
			lines = append(lines, base.Render(fit("Polling servers...", m.width)))
		}
	} else {
		rows := m.snapshot.Results
		if len(rows) > visible {
			rows = rows[:visible]
		}
		for i, r := range rows {
			style := base
			switch {
			case i == m.selected:
				style = sel
			case i%2 == 1:
				style = alt
			}
			lines = append(lines, style.Render(fit(m.rowText(r), m.width)))
		}
	}

	// Pad so the footer sits on the bottom line.
	for len(lines) < m.height-1 {
		lines = append(lines, base.Render(fit("", m.width)))
	}

	footer := fmt.Sprintf("q: quit  c: colors  h: help  d: details  (Current: %s)",
		m.schemes[m.scheme].Name)
	lines = append(lines, header.Render(fit(footer, m.width)))

	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

// rowText formats one table row. Failed servers get fixed placeholders;
// the +Inf sort sentinel and the empty stats intervals never appear here.
func (m Model) rowText(r poller.Result) string {
	if !r.OK() {
		return fmt.Sprintf("%-20s %-24s %-30s %-21s %-24s %-24s %-12s",
			clip(r.Server, 20),
			format.TimeoutLabel, format.NA, format.NA, format.NA, format.NA, format.NA)
	}

	st := m.tracker.Lookup(r.Server)
	resp := r.Response
	return fmt.Sprintf("%-20s %-24s %-30s %-21s %-24s %-24s %-12s",
		clip(r.Server, 20),
		format.Metric(r.RTTMillis, st.RTT, 2),
		format.Metric(resp.ClockOffset.Seconds(), st.Offset, 6),
		resp.Time.Format(timeLayout),
		format.Metric(resp.RootDelay.Seconds(), st.Delay, 6),
		format.Metric(resp.RootDispersion.Seconds(), st.Dispersion, 6),
		format.Stratum(resp.Stratum, st.Stratum))
}

func (m Model) viewHelp() string {
	base, _, _, header := m.rowStyles()

	src := strings.Split(helpText, "\n")
	lines := make([]string, 0, len(src))
	for i, line := range src {
		if i >= m.height {
			break
		}
		style := base
		if i == 0 {
			style = header
		}
		lines = append(lines, style.Render(fit(line, m.width)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDetail() string {
	base, _, _, header := m.rowStyles()

	if len(m.snapshot.Results) == 0 {
		return base.Render(fit("No data", m.width))
	}
	r := m.snapshot.Results[m.selected]

	lines := []string{header.Render(fit("Detailed Information for "+r.Server, m.width))}
	add := func(s string) {
		lines = append(lines, base.Render(fit(s, m.width)))
	}
	add("")

	if r.Response == nil {
		add("Error: Unable to connect to the server")
	} else {
		resp := r.Response
		add(fmt.Sprintf("Leap indicator: %d", resp.Leap))
		add(fmt.Sprintf("Stratum: %d", resp.Stratum))
		add(fmt.Sprintf("Precision: %s", resp.Precision))
		add(fmt.Sprintf("Root delay: %.6f seconds", resp.RootDelay.Seconds()))
		add(fmt.Sprintf("Root dispersion: %.6f seconds", resp.RootDispersion.Seconds()))
		add(fmt.Sprintf("Root distance: %.6f seconds", resp.RootDistance.Seconds()))
		add(fmt.Sprintf("Reference ID: %s", resp.ReferenceID))
		add(fmt.Sprintf("Reference timestamp: %s UTC", resp.ReferenceTime.Format(timeLayout)))
		add(fmt.Sprintf("Transmit timestamp: %s UTC", resp.Time.Format(timeLayout)))
		add(fmt.Sprintf("Round trip time: %.2f ms", r.RTTMillis))
		add(fmt.Sprintf("Offset: %.6f seconds", resp.ClockOffset.Seconds()))
		add(fmt.Sprintf("Delay: %.6f seconds", resp.RTT.Seconds()))
		add(fmt.Sprintf("Poll: %s", resp.Poll))
		add(fmt.Sprintf("Min error: %.6f seconds", resp.MinError.Seconds()))
		if resp.KissCode != "" {
			add(fmt.Sprintf("Kiss code: %s", resp.KissCode))
		}
	}

	add("")
	add("Press 'q' to return to the server list")

	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

// fit clips s to w columns and pads with spaces so row backgrounds span
// the full line.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) > w {
		return string(rs[:w])
	}
	return s + strings.Repeat(" ", w-len(rs))
}

// clip truncates without padding.
func clip(s string, w int) string {
	rs := []rune(s)
	if len(rs) > w {
		return string(rs[:w])
	}
	return s
}
