package connect4

// Snapshot captures everything a front end needs to draw the session.
type Snapshot struct {
	Grid       Grid
	Current    Cell
	Status     Status
	RedWins    int
	YellowWins int
	Moves      int

	LastMove Pos
	HasLast  bool

	// Droppable and ActiveRows are derived from the grid: the active row of
	// a column is its lowest empty row, -1 when it cannot take a drop.
	Droppable  [Columns]bool
	ActiveRows [Columns]int

	WinningLine [WinLength]Pos
	HasWinLine  bool

	Message string
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:        s.grid,
		Current:     s.current,
		Status:      s.status,
		RedWins:     s.redWins,
		YellowWins:  s.yellowWins,
		Moves:       s.moves,
		LastMove:    s.last,
		HasLast:     s.hasLast,
		WinningLine: s.winLine,
		HasWinLine:  s.hasWinLn,
		Message:     s.status.Message(s.current),
	}
	if s.moves == 0 {
		snap.Message = s.current.String() + " Goes First!"
	}
	for col := 0; col < Columns; col++ {
		row := s.ActiveRow(col)
		snap.ActiveRows[col] = row
		snap.Droppable[col] = row >= 0
	}
	return snap
}

// OnWinningLine reports whether p is part of the winning line.
func (s Snapshot) OnWinningLine(p Pos) bool {
	if !s.HasWinLine {
		return false
	}
	for _, w := range s.WinningLine {
		if w == p {
			return true
		}
	}
	return false
}

// Renderer turns a snapshot into something a front end can display.
// Each front end has its own implementation.
type Renderer interface {
	Render(s Snapshot) string
}
