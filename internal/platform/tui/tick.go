package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeTTL is how long a rejected-move notice stays on screen.
const noticeTTL = 3 * time.Second

// noticeExpiredMsg clears the notice with the matching sequence number.
// Newer notices bump the sequence, so stale timers are ignored.
type noticeExpiredMsg struct {
	seq int
}

// expireNotice returns a command that fires once the notice has been shown
// for the given duration.
func expireNotice(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
