package connect4

// StatusKind is the phase of a game.
type StatusKind string

const (
	StatusInProgress StatusKind = "in_progress"
	StatusWon        StatusKind = "won"
	StatusDraw       StatusKind = "draw"
)

// Status is the game phase plus, for StatusWon, the winning player.
type Status struct {
	Kind   StatusKind
	Winner Cell
}

// InProgress is the status of a game that still accepts drops.
func InProgress() Status { return Status{Kind: StatusInProgress} }

// Won is the status of a game won by p.
func Won(p Cell) Status { return Status{Kind: StatusWon, Winner: p} }

// Drawn is the status of a full board without a winner.
func Drawn() Status { return Status{Kind: StatusDraw} }

// IsTerminal reports whether the game accepts no more drops until a reset.
func (s Status) IsTerminal() bool {
	return s.Kind == StatusWon || s.Kind == StatusDraw
}

// Message is the status line shown to players. current is the player
// to move and is only used while the game is in progress.
func (s Status) Message(current Cell) string {
	switch s.Kind {
	case StatusWon:
		return "Winner: " + s.Winner.String()
	case StatusDraw:
		return "Draw!"
	default:
		return current.String() + "'s Turn"
	}
}

// String returns a short label, e.g. "won(Red)".
func (s Status) String() string {
	if s.Kind == StatusWon {
		return string(s.Kind) + "(" + s.Winner.String() + ")"
	}
	return string(s.Kind)
}
