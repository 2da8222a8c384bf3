package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Evaluate a saved board",
	Long: `Read a board and report its outcome.

The board is six lines of seven cells, top row first: R or r for Red, Y or y
for Yellow, '.' or a space for an empty cell. Blank lines are ignored. With
no file the board is read from stdin.

A line of four wins even on a full board. Boards no game could reach, such as
both players holding a line, are reported as invalid.

Examples:
  connect4 check board.txt
  printf '.......\n.......\n.......\n.......\nYYY....\nRRRR...\n' | connect4 check`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open board: %w", err)
			}
			defer f.Close()
			in = f
		}
		return checkBoard(in, cmd.OutOrStdout())
	},
}

// checkBoard parses a board from in and prints it with its outcome.
func checkBoard(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}

	grid, err := connect4.ParseGrid(string(data))
	if err != nil {
		return err
	}
	status, err := connect4.Evaluate(grid)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, grid)
	switch status.Kind {
	case connect4.StatusWon:
		fmt.Fprintf(out, "Winner: %s\n", status.Winner)
	case connect4.StatusDraw:
		fmt.Fprintln(out, "Draw!")
	default:
		fmt.Fprintln(out, "In progress")
	}
	return nil
}
