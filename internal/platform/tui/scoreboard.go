package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// Scoreboard layout constants
const (
	scoreNameWidth = 16
	scoreWinsWidth = 6
	// header, its border and one row per player
	scoreTableHeight = 4
)

var scoreBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// newScoreTable creates the session scoreboard table.
func newScoreTable() table.Model {
	columns := []table.Column{
		{Title: "Player", Width: scoreNameWidth},
		{Title: "Wins", Width: scoreWinsWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(scoreTableHeight),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable; keep the first row unhighlighted.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// scoreRows builds one row per player, the leader first.
func scoreRows(s connect4.Snapshot, names connect4.Names) []table.Row {
	red := table.Row{names.Of(connect4.Red), strconv.Itoa(s.RedWins)}
	yellow := table.Row{names.Of(connect4.Yellow), strconv.Itoa(s.YellowWins)}
	if s.YellowWins > s.RedWins {
		return []table.Row{yellow, red}
	}
	return []table.Row{red, yellow}
}

// renderScores renders the scoreboard box for the snapshot.
func renderScores(t table.Model, s connect4.Snapshot, names connect4.Names) string {
	t.SetRows(scoreRows(s, names))
	return scoreBoxStyle.Render(t.View())
}
