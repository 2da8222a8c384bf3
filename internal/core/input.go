package core

import "strconv"

// Action is a semantic input, abstracted from keys or typed commands.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // move the column cursor left
	ActionRight              // move the column cursor right
	ActionDrop               // drop at the cursor
	ActionColumn             // drop in Input.Column
	ActionReset              // start a new game
	ActionResetScores        // zero the win counters
	ActionScores             // show the scores
	ActionHelp               // toggle or print help
	ActionQuit               // leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionColumn:
		return "Column"
	case ActionReset:
		return "Reset"
	case ActionResetScores:
		return "ResetScores"
	case ActionScores:
		return "Scores"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded user intent.
type Input struct {
	Action Action
	// Column is the zero-based target column for ActionColumn.
	Column int
}

// DropIn returns the input for a drop in a zero-based column.
func DropIn(col int) Input {
	return Input{Action: ActionColumn, Column: col}
}

// String returns e.g. "Column(3)" or "Reset".
func (in Input) String() string {
	if in.Action == ActionColumn {
		return "Column(" + strconv.Itoa(in.Column) + ")"
	}
	return in.Action.String()
}
