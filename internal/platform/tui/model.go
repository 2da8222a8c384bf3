package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a Model.
type Options struct {
	Draw   connect4.DrawOptions
	Logger *log.Logger
	// Screen is the initial terminal size, used until the first resize.
	Screen core.RuntimeConfig
}

// Model is the Bubble Tea model for one hot-seat session.
type Model struct {
	session    *connect4.Session
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	scores     table.Model
	showScores bool
	cursor     int
	notice     string
	noticeSeq  int
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model driving session.
func NewModel(session *connect4.Session, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Screen.ScreenW <= 0 || opts.Screen.ScreenH <= 0 {
		opts.Screen = core.DefaultConfig()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Screen.ScreenW

	return Model{
		session: session,
		opts:    opts,
		logger:  opts.Logger,
		keys:    DefaultKeyMap(),
		help:    h,
		scores:  newScoreTable(),
		cursor:  connect4.Columns / 2,
		width:   opts.Screen.ScreenW,
		height:  opts.Screen.ScreenH,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.Input(msg)

	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft:
		m.cursor = core.Clamp(m.cursor-1, 0, connect4.Columns-1)

	case core.ActionRight:
		m.cursor = core.Clamp(m.cursor+1, 0, connect4.Columns-1)

	case core.ActionDrop:
		return m.drop(m.cursor)

	case core.ActionColumn:
		m.cursor = in.Column
		return m.drop(in.Column)

	case core.ActionReset:
		m.session.Reset()
		m.notice = ""
		red, yellow := m.session.Scores()
		m.logger.Debug("new game", "red", red, "yellow", yellow)

	case core.ActionResetScores:
		m.session.ResetScores()
		m.logger.Debug("scores cleared")

	case core.ActionScores:
		m.showScores = !m.showScores

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// drop plays col for the current player. Rejected moves leave the session
// untouched and show a notice instead.
func (m Model) drop(col int) (tea.Model, tea.Cmd) {
	res, err := m.session.Drop(col)
	if err != nil {
		m.logger.Debug("drop rejected", "column", col+1, "error", err)
		m.noticeSeq++
		m.notice = connect4.RejectionMessage(err, col)
		return m, expireNotice(m.noticeSeq, noticeTTL)
	}

	m.notice = ""
	m.logger.Debug("drop",
		"player", res.Player,
		"row", res.Row,
		"column", res.Column+1,
		"status", res.Status,
	)
	if res.Status.IsTerminal() {
		red, yellow := m.session.Scores()
		m.logger.Info("game over", "status", res.Status, "red", red, "yellow", yellow)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	helpView := helpStyle.Render(m.help.View(m.keys))
	var scoresView string
	if m.showScores {
		scoresView = lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			renderScores(m.scores, snap, m.opts.Draw.Names))
	}

	// One line is reserved for the notice.
	boardH := m.height - 1 - lipgloss.Height(helpView)
	if scoresView != "" {
		boardH -= lipgloss.Height(scoresView)
	}

	drawOpts := m.opts.Draw
	drawOpts.Cursor = m.cursor
	board := BoardRenderer{
		Options: drawOpts,
		Width:   m.width,
		Height:  core.Max(boardH, 0),
	}

	var b strings.Builder
	b.WriteString(board.Render(snap))
	b.WriteString("\n")
	if scoresView != "" {
		b.WriteString(scoresView)
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, noticeStyle.Render(m.notice)))
	b.WriteString("\n")
	b.WriteString(helpView)

	return b.String()
}

// Session returns the session the model drives.
func (m Model) Session() *connect4.Session {
	return m.session
}

// Cursor returns the zero-based column under the cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the current rejected-move notice, if any.
func (m Model) Notice() string {
	return m.notice
}

// Run starts the Bubble Tea program for session on the local terminal.
func Run(session *connect4.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
