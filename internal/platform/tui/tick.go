// Package tui is the Bubble Tea front end for Unicorn Dash. It turns keys
// into intents, drives the game machine from the frame ticker and draws each
// snapshot as colored ASCII. It holds no game rules.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per rendered frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate. The simulation itself
// catches up from wall-clock time, so a late frame only costs smoothness.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
