package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ntpmon/internal/ntpclient"
	"ntpmon/internal/poller"
	"ntpmon/internal/stats"
)

func okResult(server string, rttMillis float64) poller.Result {
	return poller.Result{
		Server:    server,
		Status:    poller.StatusSuccess,
		RTTMillis: rttMillis,
		Response: &ntpclient.Response{
			Time:           time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			ClockOffset:    2 * time.Millisecond,
			Stratum:        2,
			RootDelay:      15 * time.Millisecond,
			RootDispersion: 8 * time.Millisecond,
			ReferenceID:    ntpclient.NewRefID(2, 0xc0a80101),
		},
	}
}

func failedResult(server string) poller.Result {
	return poller.Result{
		Server:    server,
		Status:    poller.StatusTimeout,
		RTTMillis: math.Inf(1),
	}
}

func newTestModel(results ...poller.Result) Model {
	m := NewModel(nil, stats.NewTracker(), 5*time.Second)
	updated, _ := m.Update(snapshotMsg(poller.Snapshot{
		Results: results,
		TakenAt: time.Now(),
	}))
	return updated.(Model)
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestUnknownKeyIsNoOp(t *testing.T) {
	m := newTestModel(okResult("a", 10), okResult("b", 20))
	before := m

	m, cmd := press(t, m, "x")
	if cmd != nil {
		t.Error("unknown key should produce no command")
	}
	if m.mode != before.mode || m.selected != before.selected || m.scheme != before.scheme {
		t.Error("unknown key must leave the state unchanged")
	}
}

func TestQuitFromTable(t *testing.T) {
	m := newTestModel(okResult("a", 10))
	_, cmd := press(t, m, "q")
	if !isQuit(cmd) {
		t.Error("q from the table should quit")
	}
}

func TestSchemeCyclesAndWraps(t *testing.T) {
	m := newTestModel(okResult("a", 10))
	if len(m.schemes) != 5 {
		t.Fatalf("expected 5 schemes, got %d", len(m.schemes))
	}
	start := m.scheme
	for i := 0; i < len(m.schemes); i++ {
		m, _ = press(t, m, "c")
	}
	if m.scheme != start {
		t.Errorf("scheme = %d after full cycle, want %d", m.scheme, start)
	}
}

func TestSelectionClampsAtEdges(t *testing.T) {
	m := newTestModel(okResult("a", 10), okResult("b", 20), okResult("c", 30))

	m, _ = press(t, m, "up")
	if m.selected != 0 {
		t.Errorf("up at the top moved selection to %d", m.selected)
	}

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, "down")
	}
	if m.selected != 2 {
		t.Errorf("down past the end left selection at %d, want 2", m.selected)
	}
}

func TestSelectionReclampsWhenSnapshotShrinks(t *testing.T) {
	m := newTestModel(
		okResult("a", 10), okResult("b", 20), okResult("c", 30),
		okResult("d", 40), okResult("e", 50),
	)
	for i := 0; i < 4; i++ {
		m, _ = press(t, m, "down")
	}
	if m.selected != 4 {
		t.Fatalf("selection = %d, want 4", m.selected)
	}

	updated, _ := m.Update(snapshotMsg(poller.Snapshot{
		Results: []poller.Result{okResult("a", 10), okResult("b", 20)},
		TakenAt: time.Now(),
	}))
	m = updated.(Model)
	if m.selected != 1 {
		t.Errorf("selection = %d after shrink to 2 rows, want 1", m.selected)
	}
}

func TestHelpViewAndReturnOnAnyKey(t *testing.T) {
	m := newTestModel(okResult("a", 10))

	m, _ = press(t, m, "h")
	if !strings.Contains(m.View(), "Help Page") {
		t.Fatal("expected the help page after h")
	}

	// While help is open, table keys are inert: any key returns.
	m, cmd := press(t, m, "c")
	if cmd != nil {
		t.Error("keys in help view should produce no command")
	}
	if m.mode != modeTable {
		t.Error("any key should return from help to the table")
	}
	if m.scheme != 0 {
		t.Error("c inside help must not cycle the scheme")
	}
}

func TestDetailViewForSuccessfulServer(t *testing.T) {
	m := newTestModel(okResult("c", 5), okResult("a", 10))

	m, _ = press(t, m, "d")
	view := m.View()
	if !strings.Contains(view, "Detailed Information for c") {
		t.Fatalf("detail view should name the selected server, got:\n%s", view)
	}
	for _, field := range []string{"Stratum", "Reference ID", "Round trip time", "Offset"} {
		if !strings.Contains(view, field) {
			t.Errorf("detail view missing %q", field)
		}
	}

	// Only q leaves the detail view, and it does not quit the program.
	m, cmd := press(t, m, "h")
	if m.mode != modeDetail {
		t.Error("h inside detail should be ignored")
	}
	m, cmd = press(t, m, "q")
	if isQuit(cmd) {
		t.Error("q inside detail must not quit the program")
	}
	if m.mode != modeTable {
		t.Error("q should return from detail to the table")
	}
}

func TestDetailViewForFailedServerShowsErrorLine(t *testing.T) {
	// Scenario: a ok (10ms), b timeout, c ok (5ms) → order [c, a, b];
	// two downs select b; d shows its error line.
	m := newTestModel(okResult("c", 5), okResult("a", 10), failedResult("b"))

	m, _ = press(t, m, "down")
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "d")

	view := m.View()
	if !strings.Contains(view, "Detailed Information for b") {
		t.Fatalf("expected detail for b, got:\n%s", view)
	}
	if !strings.Contains(view, "Error: Unable to connect to the server") {
		t.Error("failed server detail should show the error line")
	}
	if strings.Contains(view, "Stratum:") {
		t.Error("failed server detail should not list response fields")
	}
}

func TestTableRendersPlaceholdersNeverSentinels(t *testing.T) {
	m := newTestModel(okResult("a", 10), failedResult("b"))

	view := m.View()
	if !strings.Contains(view, "Timeout") {
		t.Error("failed row should show the Timeout placeholder")
	}
	if !strings.Contains(view, "N/A") {
		t.Error("failed row should show N/A placeholders")
	}
	for _, forbidden := range []string{"Inf", "NaN"} {
		if strings.Contains(view, forbidden) {
			t.Errorf("sentinel %q leaked into the rendered table", forbidden)
		}
	}
}

func TestTableShowsFooterWithSchemeName(t *testing.T) {
	m := newTestModel(okResult("a", 10))
	if !strings.Contains(m.View(), "Current: Light") {
		t.Error("footer should name the active scheme")
	}
	m, _ = press(t, m, "c")
	if !strings.Contains(m.View(), "Current: Solarized Light") {
		t.Error("footer should follow the cycled scheme")
	}
}

func TestTickDoesNotPollWhileModalViewIsOpen(t *testing.T) {
	m := newTestModel(okResult("a", 10))
	m.lastRefresh = time.Now().Add(-time.Hour) // refresh long overdue

	m, _ = press(t, m, "h")
	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	if m.polling {
		t.Error("tick must not start a poll while help is open")
	}
}

func TestRowsTruncateToTerminalHeight(t *testing.T) {
	results := []poller.Result{
		okResult("a", 1), okResult("b", 2), okResult("c", 3),
		okResult("d", 4), okResult("e", 5), okResult("f", 6),
	}
	m := newTestModel(results...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 5})
	m = updated.(Model)

	view := m.View()
	if got := len(strings.Split(view, "\n")); got > 5 {
		t.Errorf("view has %d lines, terminal height is 5", got)
	}
	if !strings.Contains(view, "1.00") {
		t.Error("first row should still be visible")
	}
	if strings.Contains(view, "6.00") {
		t.Error("rows beyond the visible area should not be drawn")
	}
}
