// Package ui is the interactive dashboard: a bubbletea state machine with
// three views (table, help, detail) driven by key input and a periodic
// refresh tick.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ntpmon/internal/poller"
	"ntpmon/internal/stats"
)

// mode is the active view.
type mode int

const (
	modeTable mode = iota
	modeHelp
	modeDetail
)

// tickMsg drives the refresh deadline check. Ticks are short relative to
// the refresh interval so the loop stays responsive between cycles.
type tickMsg time.Time

// snapshotMsg delivers one completed poll cycle. The cycle is installed
// whole; the view never sees a partially updated snapshot.
type snapshotMsg poller.Snapshot

const tickEvery = 100 * time.Millisecond

// Model is the dashboard state: scheme index, selected row, view mode and
// the last installed snapshot. All of it is owned by the bubbletea loop;
// only the stats tracker is shared with the poll path.
type Model struct {
	poller   *poller.Poller
	tracker  *stats.Tracker
	interval time.Duration

	schemes  []Scheme
	scheme   int
	selected int
	mode     mode

	snapshot     poller.Snapshot
	haveSnapshot bool
	polling      bool
	lastRefresh  time.Time

	width  int
	height int
}

// NewModel returns a dashboard for the given poller. The first poll starts
// immediately on Init.
func NewModel(p *poller.Poller, tracker *stats.Tracker, interval time.Duration) Model {
	return Model{
		poller:   p,
		tracker:  tracker,
		interval: interval,
		schemes:  Schemes,
		polling:  true, // Init starts the first cycle
		width:    80,
		height:   24,
	}
}

// Init fires the first poll cycle and starts the refresh tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), tick())
}

func (m Model) pollCmd() tea.Cmd {
	p := m.poller
	return func() tea.Msg {
		return snapshotMsg(p.Poll(context.Background()))
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update is the state machine. Keys are handled per view; the tick only
// starts a poll from the table view, so help and detail freeze the data
// they were opened on.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		m.polling = false
		m.lastRefresh = time.Now()
		// A cycle that was in flight when a modal view opened is
		// dropped: help and detail keep the data they were opened on.
		if m.mode == modeTable {
			m.snapshot = poller.Snapshot(msg)
			m.haveSnapshot = true
			m.clampSelected()
		}
		return m, nil

	case tickMsg:
		if m.mode == modeTable && !m.polling && time.Since(m.lastRefresh) >= m.interval {
			m.polling = true
			return m, tea.Batch(m.pollCmd(), tick())
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeHelp:
		// Any key returns to the table.
		m.mode = modeTable
		return m, nil

	case modeDetail:
		if key == "q" {
			m.mode = modeTable
		}
		return m, nil

	default: // modeTable
		switch key {
		case "q":
			return m, tea.Quit
		case "c":
			m.scheme = (m.scheme + 1) % len(m.schemes)
		case "h":
			m.mode = modeHelp
		case "up":
			if m.selected > 0 {
				m.selected--
			}
		case "down":
			if m.selected < len(m.snapshot.Results)-1 {
				m.selected++
			}
		case "d":
			if m.haveSnapshot && len(m.snapshot.Results) > 0 {
				m.mode = modeDetail
			}
		}
		return m, nil
	}
}

// clampSelected keeps the selection in range after a snapshot replacement
// (the list can shrink if the configuration does).
func (m *Model) clampSelected() {
	if n := len(m.snapshot.Results); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
