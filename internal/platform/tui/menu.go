package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/unicorn-dash/internal/core"
	"github.com/vovakirdan/unicorn-dash/internal/game"
)

var titleArt = []string{
	` _   _       _                       ____            _     `,
	`| | | |_ __ (_) ___ ___  _ __ _ __  |  _ \  __ _ ___| |__  `,
	`| | | | '_ \| |/ __/ _ \| '__| '_ \ | | | |/ _' / __| '_ \ `,
	`| |_| | | | | | (_| (_) | |  | | | || |_| | (_| \__ \ | | |`,
	` \___/|_| |_|_|\___\___/|_|  |_| |_||____/ \__,_|___/_| |_|`,
}

// DrawMenu paints the difficulty picker. cursor is the highlighted entry.
func DrawMenu(s *core.Screen, snap game.Snapshot, cursor core.Difficulty) {
	s.Clear()

	y := max((s.Height()-len(titleArt)-len(core.Difficulties)*2-6)/2, 0)
	if s.Width() >= len(titleArt[0])+2 {
		x := (s.Width() - len(titleArt[0])) / 2
		for i, line := range titleArt {
			s.DrawTextColor(x, y+i, line, core.ColorBrightMagenta)
		}
		y += len(titleArt) + 2
	} else {
		title := "UNICORN DASH"
		s.DrawTextColor((s.Width()-len(title))/2, y, title, core.ColorBrightMagenta)
		y += 2
	}

	for i, d := range core.Difficulties {
		line := fmt.Sprintf("  %d. %-8s best %6d", i+1, d.Title(), snap.HighScores[d])
		color := core.ColorWhite
		if d == cursor {
			line = ">" + line[1:]
			color = core.ColorBrightYellow
		}
		s.DrawTextColor((s.Width()-len(line))/2, y, line, color)
		y += 2
	}

	help := "Up/Down choose   Enter start   Q quit"
	s.DrawTextColor((s.Width()-len(help))/2, y+1, help, core.ColorGray)
}

// nextDifficulty moves the menu cursor by delta, clamped to the list.
func nextDifficulty(cursor core.Difficulty, delta int) core.Difficulty {
	idx := 0
	for i, d := range core.Difficulties {
		if d == cursor {
			idx = i
		}
	}
	idx = core.Clamp(idx+delta, 0, len(core.Difficulties)-1)
	return core.Difficulties[idx]
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
