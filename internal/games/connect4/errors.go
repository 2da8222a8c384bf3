package connect4

import (
	"errors"
	"fmt"
)

// Errors returned by Session.Drop. A rejected drop never changes the session.
var (
	// ErrInvalidColumn is returned for a column outside [0, Columns).
	ErrInvalidColumn = errors.New("invalid column")

	// ErrColumnFull is returned when the target column has no empty cell.
	ErrColumnFull = errors.New("column is full")

	// ErrGameOver is returned when the game has already been won or drawn.
	ErrGameOver = errors.New("game is over")
)

// ErrInvalidGrid is returned by Evaluate for a grid no game could produce.
var ErrInvalidGrid = errors.New("invalid grid")

// RejectionMessage returns a short message for players explaining why a
// drop into the zero-based column col was rejected with err.
func RejectionMessage(err error, col int) string {
	switch {
	case errors.Is(err, ErrColumnFull):
		return fmt.Sprintf("Column %d is full", col+1)
	case errors.Is(err, ErrGameOver):
		return "Game over, press r for a new game"
	case errors.Is(err, ErrInvalidColumn):
		return fmt.Sprintf("Column %d does not exist, pick 1-%d", col+1, Columns)
	default:
		return err.Error()
	}
}
