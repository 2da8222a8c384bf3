package connect4

import (
	"fmt"
	"strings"
)

// Names holds display names for the two players. Empty fields fall back to
// the colour name.
type Names struct {
	Red    string
	Yellow string
}

// Of returns the display name of c.
func (n Names) Of(c Cell) string {
	switch {
	case c == Red && n.Red != "":
		return n.Red
	case c == Yellow && n.Yellow != "":
		return n.Yellow
	default:
		return c.String()
	}
}

// StatusLine is Snapshot.Message with display names substituted.
func StatusLine(s Snapshot, names Names) string {
	switch {
	case s.Status.Kind == StatusWon:
		return "Winner: " + names.Of(s.Status.Winner)
	case s.Status.Kind == StatusDraw:
		return "Draw!"
	case s.Moves == 0:
		return names.Of(s.Current) + " Goes First!"
	default:
		return names.Of(s.Current) + "'s Turn"
	}
}

// ScoreLine formats the win counters.
func ScoreLine(s Snapshot, names Names) string {
	return fmt.Sprintf("%s %d : %d %s", names.Of(Red), s.RedWins, s.YellowWins, names.Of(Yellow))
}

// TextRenderer draws the board with plain ASCII, one character per cell.
// Winning cells are drawn in lower case.
type TextRenderer struct {
	Names Names
	// HideScore omits the score line.
	HideScore bool
}

// Render implements Renderer.
func (r TextRenderer) Render(s Snapshot) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 0; col < Columns; col++ {
		fmt.Fprintf(&sb, "%d ", col+1)
	}
	sb.WriteString("\n")

	for row := 0; row < Rows; row++ {
		sb.WriteString("|")
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			ch := s.Grid[row][col].Rune()
			if s.OnWinningLine(Pos{Row: row, Col: col}) {
				ch = ch - 'A' + 'a'
			}
			sb.WriteRune(ch)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", Columns*2-1) + "+\n")

	sb.WriteString(StatusLine(s, r.Names))
	sb.WriteString("\n")
	if !r.HideScore {
		sb.WriteString(ScoreLine(s, r.Names))
		sb.WriteString("\n")
	}
	return sb.String()
}

var _ Renderer = TextRenderer{}
