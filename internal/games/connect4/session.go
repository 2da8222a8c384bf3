package connect4

import "fmt"

// ScorePolicy decides what Reset does to the win counters.
type ScorePolicy string

const (
	// ScorePreserve keeps win counters across resets.
	ScorePreserve ScorePolicy = "preserve"
	// ScoreClear zeroes win counters on every reset.
	ScoreClear ScorePolicy = "clear"
)

// Option configures a Session.
type Option func(*Session)

// WithScorePolicy sets the reset policy for win counters.
func WithScorePolicy(p ScorePolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// Result describes an accepted drop.
type Result struct {
	Row    int
	Column int
	Player Cell
	Status Status
}

// Session is the mutable state of one hot-seat match: the board, whose
// turn it is, the game status and the win counters.
//
// A Session is not safe for concurrent use. Every front end owns one and
// funnels input through a single event loop.
type Session struct {
	grid    Grid
	current Cell
	status  Status
	policy  ScorePolicy

	redWins    int
	yellowWins int

	moves    int
	last     Pos
	hasLast  bool
	winLine  [WinLength]Pos
	hasWinLn bool
}

// New creates a session with an empty board and Red to move.
func New(opts ...Option) *Session {
	s := &Session{policy: ScorePreserve}
	for _, opt := range opts {
		opt(s)
	}
	s.clearBoard()
	return s
}

// clearBoard resets everything except the win counters.
func (s *Session) clearBoard() {
	s.grid = Grid{}
	s.current = Red
	s.status = InProgress()
	s.moves = 0
	s.hasLast = false
	s.hasWinLn = false
}

// Drop places the current player's token in the lowest empty cell of col.
// The drop is rejected, with no state change, when the game is over, the
// column is out of range or the column is full.
func (s *Session) Drop(col int) (Result, error) {
	if s.status.IsTerminal() {
		return Result{}, fmt.Errorf("connect4: column %d: %w", col, ErrGameOver)
	}
	if col < 0 || col >= Columns {
		return Result{}, fmt.Errorf("connect4: column %d: %w", col, ErrInvalidColumn)
	}
	row := s.grid.LowestEmptyRow(col)
	if row < 0 {
		return Result{}, fmt.Errorf("connect4: column %d: %w", col, ErrColumnFull)
	}

	mover := s.current
	s.grid[row][col] = mover
	s.current = mover.Other()
	s.moves++
	s.last = Pos{Row: row, Col: col}
	s.hasLast = true

	// Win is checked before draw: a full board with a line is a win.
	if line, ok := WinningLine(mover, s.grid); ok {
		s.status = Won(mover)
		s.winLine, s.hasWinLn = line, true
		s.addWin(mover)
	} else if Draw(s.grid) {
		s.status = Drawn()
	}

	return Result{Row: row, Column: col, Player: mover, Status: s.status}, nil
}

func (s *Session) addWin(p Cell) {
	switch p {
	case Red:
		s.redWins++
	case Yellow:
		s.yellowWins++
	}
}

// Reset starts a new game. Win counters follow the session's ScorePolicy.
func (s *Session) Reset() {
	s.clearBoard()
	if s.policy == ScoreClear {
		s.ResetScores()
	}
}

// ResetScores zeroes both win counters without touching the board.
func (s *Session) ResetScores() {
	s.redWins = 0
	s.yellowWins = 0
}

// Status returns the current game status.
func (s *Session) Status() Status {
	return s.status
}

// CurrentPlayer returns the player whose token the next drop places.
func (s *Session) CurrentPlayer() Cell {
	return s.current
}

// Scores returns the win counters.
func (s *Session) Scores() (red, yellow int) {
	return s.redWins, s.yellowWins
}

// Policy returns the score reset policy.
func (s *Session) Policy() ScorePolicy {
	return s.policy
}

// Grid returns a copy of the board.
func (s *Session) Grid() Grid {
	return s.grid
}

// Moves returns how many tokens have been dropped since the last reset.
func (s *Session) Moves() int {
	return s.moves
}

// LastMove returns the cell filled by the most recent drop.
func (s *Session) LastMove() (Pos, bool) {
	return s.last, s.hasLast
}

// ActiveRow returns the row the next drop into col would fill, or -1 when
// the column cannot take a drop (full, out of range or game over).
func (s *Session) ActiveRow(col int) int {
	if s.status.IsTerminal() {
		return -1
	}
	return s.grid.LowestEmptyRow(col)
}

// DroppableColumns lists the columns that currently accept a drop.
func (s *Session) DroppableColumns() []int {
	cols := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if s.ActiveRow(col) >= 0 {
			cols = append(cols, col)
		}
	}
	return cols
}
