// Package connect4 implements the rules and session state of a two-player
// Connect 4 game. It has no knowledge of terminals, keys or colours; front ends
// read a Snapshot after every call and render it themselves.
package connect4

import (
	"fmt"
	"strings"
)

// Board dimensions and the line length needed to win.
const (
	Rows      = 6
	Columns   = 7
	WinLength = 4
)

// Cell is the occupancy of a single board position.
type Cell uint8

const (
	Empty Cell = iota
	Red        // moves first
	Yellow
)

// Other returns the opponent of c. Empty has no opponent.
func (c Cell) Other() Cell {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

// String returns the player name.
func (c Cell) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "Empty"
	}
}

// Rune returns the single-character form used by ParseGrid and Grid.String.
func (c Cell) Rune() rune {
	switch c {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	default:
		return '.'
	}
}

// Pos addresses a cell. Row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// Grid is the 6x7 board. The zero value is an empty board.
type Grid [Rows][Columns]Cell

// LowestEmptyRow returns the row a token dropped into col lands on,
// or -1 if the column is full or out of range.
func (g Grid) LowestEmptyRow(col int) int {
	if col < 0 || col >= Columns {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if g[row][col] == Empty {
			return row
		}
	}
	return -1
}

// ColumnFull reports whether col has no empty cell left.
func (g Grid) ColumnFull(col int) bool {
	return g.LowestEmptyRow(col) < 0
}

// Count returns how many cells hold c.
func (g Grid) Count(c Cell) int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if g[row][col] == c {
				n++
			}
		}
	}
	return n
}

// String renders the grid as six lines of seven characters.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Columns + 1))
	for row := 0; row < Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < Columns; col++ {
			sb.WriteRune(g[row][col].Rune())
		}
	}
	return sb.String()
}

// ParseGrid reads a grid written as six lines of seven characters.
// '.' or ' ' is empty, 'R' is red and 'Y' is yellow (either case).
// Blank lines and trailing carriage returns are ignored.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if row >= Rows {
			return Grid{}, fmt.Errorf("connect4: grid has more than %d rows", Rows)
		}
		runes := []rune(line)
		if len(runes) != Columns {
			return Grid{}, fmt.Errorf("connect4: row %d has %d cells, expected %d", row+1, len(runes), Columns)
		}
		for col, r := range runes {
			switch r {
			case '.', ' ':
				g[row][col] = Empty
			case 'R', 'r':
				g[row][col] = Red
			case 'Y', 'y':
				g[row][col] = Yellow
			default:
				return Grid{}, fmt.Errorf("connect4: row %d col %d: unexpected %q", row+1, col+1, r)
			}
		}
		row++
	}
	if row != Rows {
		return Grid{}, fmt.Errorf("connect4: grid has %d rows, expected %d", row, Rows)
	}
	return g, nil
}
