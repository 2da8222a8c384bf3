package connect4

import "fmt"

// direction is a step between consecutive cells of a line.
type direction struct {
	dRow, dCol int
}

// Scan order: horizontal, vertical, down-right, up-right.
var directions = [...]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// Winner reports whether player owns WinLength cells in an unbroken
// horizontal, vertical or diagonal line. Empty never wins.
func Winner(player Cell, g Grid) bool {
	_, ok := WinningLine(player, g)
	return ok
}

// WinningLine returns the first winning window found for player.
func WinningLine(player Cell, g Grid) ([WinLength]Pos, bool) {
	var line [WinLength]Pos
	if player == Empty {
		return line, false
	}

	for _, d := range directions {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				if !inBounds(row+d.dRow*(WinLength-1), col+d.dCol*(WinLength-1)) {
					continue
				}
				if windowOwned(g, player, row, col, d) {
					for i := 0; i < WinLength; i++ {
						line[i] = Pos{Row: row + d.dRow*i, Col: col + d.dCol*i}
					}
					return line, true
				}
			}
		}
	}
	return line, false
}

// windowOwned checks the WinLength cells starting at (row, col) along d.
// The caller guarantees the whole window is on the board.
func windowOwned(g Grid, player Cell, row, col int, d direction) bool {
	for i := 0; i < WinLength; i++ {
		if g[row+d.dRow*i][col+d.dCol*i] != player {
			return false
		}
	}
	return true
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// Draw reports whether the board has no empty cell left. It says nothing
// about winners: check Winner for the player who just moved first.
func Draw(g Grid) bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if g[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// Evaluate classifies a grid as Drop would after its last move: a line wins,
// otherwise a full board is a draw. Grids no game could reach are rejected
// with ErrInvalidGrid: unbalanced token counts, floating tokens, lines for
// both players, or a line whose owner did not make the last move.
func Evaluate(g Grid) (Status, error) {
	red, yellow := g.Count(Red), g.Count(Yellow)
	if red != yellow && red != yellow+1 {
		return Status{}, fmt.Errorf("%w: %d red and %d yellow tokens", ErrInvalidGrid, red, yellow)
	}

	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows-1; row++ {
			if g[row][col] != Empty && g[row+1][col] == Empty {
				return Status{}, fmt.Errorf("%w: floating token at row %d, column %d", ErrInvalidGrid, row+1, col+1)
			}
		}
	}

	redWins, yellowWins := Winner(Red, g), Winner(Yellow, g)
	switch {
	case redWins && yellowWins:
		return Status{}, fmt.Errorf("%w: both players have a line", ErrInvalidGrid)
	case redWins && red != yellow+1:
		return Status{}, fmt.Errorf("%w: yellow moved after red's line", ErrInvalidGrid)
	case yellowWins && red != yellow:
		return Status{}, fmt.Errorf("%w: red moved after yellow's line", ErrInvalidGrid)
	case redWins:
		return Won(Red), nil
	case yellowWins:
		return Won(Yellow), nil
	case Draw(g):
		return Drawn(), nil
	default:
		return InProgress(), nil
	}
}
