package connect4

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

func TestTextRendererWin(t *testing.T) {
	s := New()
	play(t, s, 0, 0, 1, 1, 2, 2, 3)

	got := TextRenderer{}.Render(s.Snapshot())
	want := strings.Join([]string{
		" 1 2 3 4 5 6 7 ",
		"|. . . . . . .|",
		"|. . . . . . .|",
		"|. . . . . . .|",
		"|. . . . . . .|",
		"|Y Y Y . . . .|",
		"|r r r r . . .|",
		"+-------------+",
		"Winner: Red",
		"Red 1 : 0 Yellow",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTextRendererNamesAndHiddenScore(t *testing.T) {
	s := New()
	r := TextRenderer{Names: Names{Red: "Alice"}, HideScore: true}

	out := r.Render(s.Snapshot())
	if !strings.Contains(out, "Alice Goes First!") {
		t.Errorf("opening line missing, got:\n%s", out)
	}
	if strings.Contains(out, " : ") {
		t.Errorf("score line should be hidden, got:\n%s", out)
	}

	play(t, s, 3)
	out = r.Render(s.Snapshot())
	if !strings.Contains(out, "Yellow's Turn") {
		t.Errorf("unnamed player should fall back to colour name, got:\n%s", out)
	}
}

func TestScoreLine(t *testing.T) {
	snap := Snapshot{RedWins: 2, YellowWins: 5}
	if got := ScoreLine(snap, Names{Yellow: "Bob"}); got != "Red 2 : 5 Bob" {
		t.Errorf("ScoreLine() = %q", got)
	}
}

func TestPaintInProgress(t *testing.T) {
	s := New()
	play(t, s, 0)

	screen := core.NewScreen(80, 24)
	opts := DefaultDrawOptions()
	opts.Cursor = 3
	Paint(screen, s.Snapshot(), opts)

	// 23x13 layout centered on 80x24 starts at (28, 5).
	if !strings.Contains(screen.Row(5), "C O N N E C T  4") {
		t.Errorf("title row = %q", screen.Row(5))
	}
	if !strings.Contains(screen.Row(6), "Yellow's Turn") {
		t.Errorf("status row = %q", screen.Row(6))
	}

	cursor := screen.GetCell(39, 7)
	if cursor.Rune != glyphCursor || cursor.Color != opts.YellowColor {
		t.Errorf("cursor cell = %+v, want yellow %q", cursor, glyphCursor)
	}

	if c := screen.GetCell(28, 8); c.Rune != '┌' || c.Color != opts.BoardColor {
		t.Errorf("board corner = %+v", c)
	}

	token := screen.GetCell(30, 14)
	if token.Rune != glyphToken || token.Color != opts.RedColor {
		t.Errorf("red token cell = %+v", token)
	}
	hover := screen.GetCell(39, 14)
	if hover.Rune != glyphHover || hover.Color != opts.HighlightColor {
		t.Errorf("hover cell = %+v", hover)
	}
	if empty := screen.GetCell(33, 14); empty.Rune != glyphEmpty {
		t.Errorf("empty cell = %+v", empty)
	}

	if label := screen.GetCell(39, 16); label.Rune != '4' || label.Color != opts.HighlightColor {
		t.Errorf("cursor column label = %+v", label)
	}
	if !strings.Contains(screen.Row(17), "Red 0 : 0 Yellow") {
		t.Errorf("score row = %q", screen.Row(17))
	}
}

func TestPaintWinningLine(t *testing.T) {
	s := New()
	play(t, s, 0, 0, 1, 1, 2, 2, 3)

	screen := core.NewScreen(80, 24)
	opts := DefaultDrawOptions()
	opts.Cursor = 4
	Paint(screen, s.Snapshot(), opts)

	for col := 0; col < 4; col++ {
		c := screen.GetCell(30+col*cellWidth, 14)
		if c.Rune != glyphWin || c.Color != opts.RedColor {
			t.Errorf("winning cell %d = %+v", col, c)
		}
	}
	if c := screen.GetCell(30, 13); c.Rune != glyphToken || c.Color != opts.YellowColor {
		t.Errorf("yellow token = %+v", c)
	}
	if c := screen.GetCell(42, 7); c.Rune != ' ' {
		t.Errorf("no cursor should be drawn once the game is over, got %+v", c)
	}
	if c := screen.GetCell(42, 14); c.Rune != glyphEmpty {
		t.Errorf("no hover should be drawn once the game is over, got %+v", c)
	}
	if !strings.Contains(screen.Row(6), "Winner: Red") {
		t.Errorf("status row = %q", screen.Row(6))
	}
}

func TestPaintFullColumnCursor(t *testing.T) {
	s := New()
	play(t, s, 1, 1, 1, 1, 1, 1)

	screen := core.NewScreen(80, 24)
	opts := DefaultDrawOptions()
	opts.Cursor = 1
	Paint(screen, s.Snapshot(), opts)

	if c := screen.GetCell(33, 7); c.Rune != glyphNoDrop {
		t.Errorf("cursor over a full column = %+v, want %q", c, glyphNoDrop)
	}
}

func TestPaintTooSmall(t *testing.T) {
	screen := core.NewScreen(30, 6)
	Paint(screen, New().Snapshot(), DefaultDrawOptions())

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected a resize hint, got:\n%s", screen.String())
	}
	if strings.ContainsRune(screen.String(), '┌') {
		t.Error("board should not be drawn on a small screen")
	}
}
