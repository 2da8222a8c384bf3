package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

func newTestModel() Model {
	return NewModel(connect4.New(), Options{Draw: connect4.DefaultDrawOptions()})
}

// press feeds keys to the model and returns the updated model and the last command.
func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, expected Model", next)
		}
	}
	return m, cmd
}

func TestModelCursorMovement(t *testing.T) {
	m := newTestModel()
	if m.Cursor() != 3 {
		t.Fatalf("initial cursor = %d, expected 3", m.Cursor())
	}

	left := tea.KeyMsg{Type: tea.KeyLeft}
	right := tea.KeyMsg{Type: tea.KeyRight}

	m, _ = press(t, m, left, left)
	if m.Cursor() != 1 {
		t.Errorf("cursor after two lefts = %d, expected 1", m.Cursor())
	}

	m, _ = press(t, m, left, left, left)
	if m.Cursor() != 0 {
		t.Errorf("cursor should stop at column 0, got %d", m.Cursor())
	}

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, right)
	}
	if m.Cursor() != connect4.Columns-1 {
		t.Errorf("cursor should stop at the last column, got %d", m.Cursor())
	}
}

func TestModelDropAtCursor(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter})

	g := m.Session().Grid()
	if g[connect4.Rows-1][2] != connect4.Red {
		t.Errorf("enter should drop Red in column 2, grid:\n%s", g)
	}
	if m.Session().CurrentPlayer() != connect4.Yellow {
		t.Error("turn should pass to Yellow")
	}
}

func TestModelNumberKeysDrop(t *testing.T) {
	m := newTestModel()

	// Scenario: Red wins along the bottom row.
	m, _ = press(t, m,
		runeKey('1'), runeKey('1'),
		runeKey('2'), runeKey('2'),
		runeKey('3'), runeKey('3'),
		runeKey('4'),
	)

	if m.Session().Status() != connect4.Won(connect4.Red) {
		t.Errorf("Status() = %v, expected won(Red)", m.Session().Status())
	}
	if m.Cursor() != 3 {
		t.Errorf("number keys should move the cursor, got %d", m.Cursor())
	}
	if !strings.Contains(m.View(), "Winner: Red") {
		t.Error("View() should announce the winner")
	}
}

func TestModelRejectedDropShowsNotice(t *testing.T) {
	m := newTestModel()
	for i := 0; i < connect4.Rows; i++ {
		m, _ = press(t, m, runeKey('5'))
	}
	before := m.Session().Snapshot()

	m, cmd := press(t, m, runeKey('5'))

	if m.Session().Snapshot() != before {
		t.Error("a rejected drop must not change the session")
	}
	if m.Notice() != "Column 5 is full" {
		t.Errorf("Notice() = %q", m.Notice())
	}
	if cmd == nil {
		t.Fatal("a notice should schedule its expiry")
	}
	if !strings.Contains(m.View(), "Column 5 is full") {
		t.Error("View() should show the notice")
	}

	// A stale timer leaves a newer notice alone.
	next, _ := m.Update(noticeExpiredMsg{seq: m.noticeSeq - 1})
	m = next.(Model)
	if m.Notice() == "" {
		t.Error("stale expiry cleared the notice")
	}

	next, _ = m.Update(noticeExpiredMsg{seq: m.noticeSeq})
	m = next.(Model)
	if m.Notice() != "" {
		t.Errorf("notice should expire, got %q", m.Notice())
	}
}

func TestModelDropAfterGameOver(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, runeKey('1'), runeKey('1'), runeKey('2'), runeKey('2'), runeKey('3'), runeKey('3'), runeKey('4'))
	before := m.Session().Snapshot()

	m, _ = press(t, m, runeKey('6'))

	if m.Session().Snapshot() != before {
		t.Error("drops after a win must not change the session")
	}
	if !strings.Contains(m.Notice(), "Game over") {
		t.Errorf("Notice() = %q", m.Notice())
	}
}

func TestModelResetAndScores(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, runeKey('1'), runeKey('1'), runeKey('2'), runeKey('2'), runeKey('3'), runeKey('3'), runeKey('4'))

	m, _ = press(t, m, runeKey('r'))
	if m.Session().Status() != connect4.InProgress() || m.Session().Moves() != 0 {
		t.Error("r should start a new game")
	}
	if red, _ := m.Session().Scores(); red != 1 {
		t.Errorf("reset should keep scores, red = %d", red)
	}

	m, _ = press(t, m, runeKey('s'))
	if !strings.Contains(m.View(), "Wins") {
		t.Error("s should show the scoreboard")
	}

	m, _ = press(t, m, runeKey('x'))
	if red, yellow := m.Session().Scores(); red != 0 || yellow != 0 {
		t.Errorf("x should clear scores, got %d, %d", red, yellow)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel()
	short := m.View()

	m, _ = press(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if !strings.Contains(m.View(), "clear scores") || strings.Contains(short, "clear scores") {
		t.Error("full help should list the extra bindings")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	m, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, expected 100x40", m.width, m.height)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = next.(Model)
	if !strings.Contains(m.View(), "too small") {
		t.Error("small terminals should get a resize hint")
	}
}

func TestBoardRenderer(t *testing.T) {
	session := connect4.New()
	if _, err := session.Drop(0); err != nil {
		t.Fatal(err)
	}

	r := BoardRenderer{Options: connect4.DefaultDrawOptions(), Width: 40, Height: 16}
	out := r.Render(session.Snapshot())

	if !strings.Contains(out, "Yellow's Turn") {
		t.Errorf("Render() missing status line:\n%s", out)
	}
	if strings.Count(out, "\n") != 15 {
		t.Errorf("Render() should produce 16 lines, got %d", strings.Count(out, "\n")+1)
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "RRR", core.ColorRed)
	s.DrawTextColored(3, 0, "YYY", core.ColorYellow)

	out := RenderScreen(s)
	if !strings.Contains(out, "RRR") || !strings.Contains(out, "YYY") {
		t.Errorf("RenderScreen() = %q, expected both runs intact", out)
	}
}

func TestScoreRowsLeaderFirst(t *testing.T) {
	names := connect4.Names{Red: "Alice", Yellow: "Bob"}

	rows := scoreRows(connect4.Snapshot{RedWins: 1, YellowWins: 3}, names)
	if rows[0][0] != "Bob" || rows[0][1] != "3" {
		t.Errorf("leader row = %v, expected Bob 3", rows[0])
	}

	rows = scoreRows(connect4.Snapshot{RedWins: 2, YellowWins: 2}, names)
	if rows[0][0] != "Alice" {
		t.Errorf("ties should list Red first, got %v", rows[0])
	}
}

func TestSSHServerNewModel(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.ScorePolicy = connect4.ScoreClear
	srv := &SSHServer{config: cfg, logger: log.New(io.Discard)}

	a := srv.newModel("a", "alice", 80, 24)
	b := srv.newModel("b", "bob", 80, 24)

	if a.Session() == b.Session() {
		t.Fatal("every connection should get its own session")
	}
	if _, err := a.Session().Drop(0); err != nil {
		t.Fatal(err)
	}
	if b.Session().Moves() != 0 {
		t.Error("sessions must not share state")
	}
	if a.Session().Policy() != connect4.ScoreClear {
		t.Errorf("Policy() = %q, expected clear", a.Session().Policy())
	}
	if a.width != 80 || a.height != 24 {
		t.Errorf("model size = %dx%d, expected the PTY size", a.width, a.height)
	}
}
