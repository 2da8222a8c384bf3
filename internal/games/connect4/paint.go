package connect4

import "github.com/vovakirdan/tui-connect4/internal/core"

const (
	cellWidth = 3 // " ● "
	boardW    = Columns*cellWidth + 2
	boardH    = Rows + 2
	// title, status, cursor, board, labels, score
	layoutH = 3 + boardH + 2
)

// Glyphs used on the screen buffer.
const (
	glyphToken  = '●'
	glyphWin    = '◉'
	glyphEmpty  = '·'
	glyphHover  = '○'
	glyphCursor = '▼'
	glyphNoDrop = '×'
)

// DrawOptions controls how Paint lays out and colors the board.
type DrawOptions struct {
	Names Names
	// Cursor is the highlighted column, or -1 for none.
	Cursor int

	RedColor       core.Color
	YellowColor    core.Color
	BoardColor     core.Color
	EmptyColor     core.Color
	HighlightColor core.Color
}

// DefaultDrawOptions returns the classic red/yellow on blue look.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		Cursor:         -1,
		RedColor:       core.ColorBrightRed,
		YellowColor:    core.ColorBrightYellow,
		BoardColor:     core.ColorBlue,
		EmptyColor:     core.ColorGray,
		HighlightColor: core.ColorBrightWhite,
	}
}

// MinScreenSize is the smallest screen Paint can lay the board out on.
func MinScreenSize() (w, h int) {
	return boardW, layoutH
}

// Paint renders the snapshot onto dst, centered. It clears dst first.
func Paint(dst *core.Screen, s Snapshot, opts DrawOptions) {
	dst.Clear()

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		drawTooSmall(dst)
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boardW, layoutH)
	x, y := area.X, area.Y

	dst.DrawTextCentered(y, "C O N N E C T  4", opts.BoardColor)
	dst.DrawTextCentered(y+1, StatusLine(s, opts.Names), statusColor(s, opts))

	drawCursor(dst, s, opts, x, y+2)

	box := core.NewRect(x, y+3, boardW, boardH)
	dst.DrawBox(box, opts.BoardColor)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			r, c := cellGlyph(s, opts, row, col)
			dst.SetColored(cellX(x, col), box.Y+1+row, r, c)
		}
	}

	labelY := box.Bottom()
	for col := 0; col < Columns; col++ {
		color := opts.EmptyColor
		if col == opts.Cursor {
			color = opts.HighlightColor
		}
		dst.SetColored(cellX(x, col), labelY, rune('1'+col), color)
	}

	dst.DrawTextCentered(labelY+1, ScoreLine(s, opts.Names), core.ColorDefault)
}

func cellX(boardX, col int) int {
	return boardX + 1 + col*cellWidth + cellWidth/2
}

func drawCursor(dst *core.Screen, s Snapshot, opts DrawOptions, boardX, y int) {
	if opts.Cursor < 0 || opts.Cursor >= Columns || s.Status.IsTerminal() {
		return
	}
	if s.Droppable[opts.Cursor] {
		dst.SetColored(cellX(boardX, opts.Cursor), y, glyphCursor, playerColor(s.Current, opts))
		return
	}
	dst.SetColored(cellX(boardX, opts.Cursor), y, glyphNoDrop, opts.EmptyColor)
}

func cellGlyph(s Snapshot, opts DrawOptions, row, col int) (rune, core.Color) {
	cell := s.Grid[row][col]
	switch {
	case cell != Empty && s.OnWinningLine(Pos{Row: row, Col: col}):
		return glyphWin, playerColor(cell, opts)
	case cell != Empty:
		return glyphToken, playerColor(cell, opts)
	case col == opts.Cursor && s.ActiveRows[col] == row:
		return glyphHover, opts.HighlightColor
	default:
		return glyphEmpty, opts.EmptyColor
	}
}

func playerColor(c Cell, opts DrawOptions) core.Color {
	switch c {
	case Red:
		return opts.RedColor
	case Yellow:
		return opts.YellowColor
	default:
		return opts.EmptyColor
	}
}

func statusColor(s Snapshot, opts DrawOptions) core.Color {
	switch s.Status.Kind {
	case StatusWon:
		return playerColor(s.Status.Winner, opts)
	case StatusDraw:
		return opts.HighlightColor
	default:
		return playerColor(s.Current, opts)
	}
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}
