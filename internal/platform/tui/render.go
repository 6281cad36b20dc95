package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/unicorn-dash/internal/core"
	"github.com/vovakirdan/unicorn-dash/internal/game"
	"github.com/vovakirdan/unicorn-dash/internal/runner"
)

var colorStyles = buildColorStyles()

// buildColorStyles maps every palette color to a lipgloss style.
func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Palette() {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			var run strings.Builder
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Layout rows, counted from the top and the bottom of the screen.
const (
	hudRows      = 2
	footerRows   = 1
	visibleApex  = 240.0 // World height mapped onto the playfield
	minPlayRows  = 4
	minPlayCols  = 20
	tooSmallHint = "Terminal too small"
)

// viewport converts world coordinates to screen cells.
type viewport struct {
	groundRow   int
	topRow      int
	colsPerUnit float64
	unitsPerRow float64
}

func newViewport(s *core.Screen, worldWidth float64) viewport {
	ground := s.Height() - footerRows - 1
	rows := ground - hudRows
	if worldWidth <= 0 {
		worldWidth = 900
	}
	return viewport{
		groundRow:   ground,
		topRow:      hudRows,
		colsPerUnit: float64(s.Width()) / worldWidth,
		unitsPerRow: visibleApex / float64(max(rows, 1)),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.colsPerUnit))
}

// row returns the screen row holding world height y (y=0 is just above ground).
func (v viewport) row(y float64) int {
	return v.groundRow - 1 - int(math.Floor(y/v.unitsPerRow))
}

// fillBox paints a world box, clipped to the playfield. Every box covers at
// least one cell so thin entities stay visible.
func (v viewport) fillBox(s *core.Screen, b core.Box, r rune, c core.Color) {
	x0 := v.col(b.X)
	x1 := max(v.col(b.Right()-1e-9), x0)
	yBottom := v.row(b.Y)
	yTop := min(v.row(b.Top()-1e-9), yBottom)
	yTop = max(yTop, v.topRow)
	yBottom = min(yBottom, v.groundRow-1)

	for y := yTop; y <= yBottom; y++ {
		for x := x0; x <= x1; x++ {
			s.SetColor(x, y, r, c)
		}
	}
}

func obstacleGlyph(o runner.Obstacle) (rune, core.Color) {
	switch o.Kind {
	case runner.ObstacleCrystal:
		return 'A', core.ColorBrightCyan
	case runner.ObstacleDragonHigh:
		return 'D', core.ColorBrightRed
	case runner.ObstacleDragonLow:
		return '=', core.ColorRed
	default:
		return '#', core.ColorGray
	}
}

func collectibleGlyph(c runner.Collectible) (rune, core.Color) {
	switch c.Kind {
	case runner.CollectibleStar:
		return '*', core.ColorBrightYellow
	case runner.CollectibleShield:
		return 'S', core.ColorBrightBlue
	case runner.CollectibleMagnet:
		return 'M', core.ColorBrightMagenta
	default:
		return 'o', core.ColorYellow
	}
}

// DrawSnapshot paints one frame of a run. worldWidth is the simulated
// viewport width in world units.
func DrawSnapshot(s *core.Screen, snap game.Snapshot, worldWidth float64) {
	s.Clear()
	if s.Width() < minPlayCols || s.Height() < hudRows+footerRows+minPlayRows {
		s.DrawTextCentered(s.Height()/2, tooSmallHint, core.ColorBrightYellow)
		return
	}
	if !snap.HasRun {
		return
	}

	f := snap.Frame
	v := newViewport(s, worldWidth)

	// Entities are drawn slightly ahead by the fraction of a step already
	// accumulated so scrolling looks smooth between fixed steps.
	lead := 0.0
	if snap.State == game.StatePlaying && !f.Paused {
		lead = f.Speed * f.Alpha
	}

	s.DrawHLine(0, v.groundRow, s.Width(), '_', core.ColorGreen)

	for _, c := range f.Collectibles {
		if c.Collected {
			continue
		}
		r, color := collectibleGlyph(c)
		b := c.Box()
		b.X -= lead
		v.fillBox(s, b, r, color)
	}
	for _, o := range f.Obstacles {
		r, color := obstacleGlyph(o)
		b := o.Box
		b.X -= lead
		v.fillBox(s, b, r, color)
	}

	playerRune, playerColor := 'U', core.ColorBrightMagenta
	switch {
	case f.Player.State == runner.StateDying || f.Player.State == runner.StateDead:
		playerRune, playerColor = 'x', core.ColorRed
	case f.Player.Shielded:
		playerColor = core.ColorBrightBlue
	}
	v.fillBox(s, f.Player.Hitbox, playerRune, playerColor)

	drawHUD(s, snap)

	switch snap.State {
	case game.StatePaused:
		drawOverlay(s, []string{"PAUSED", "", "P resume   M menu   Q quit"})
	case game.StateGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Score %d", snap.LastRun.Score)}
		if snap.NewBest {
			lines = append(lines, "NEW HIGH SCORE!")
		} else {
			lines = append(lines, fmt.Sprintf("Best %d", snap.HighScore))
		}
		if snap.LastRun.KilledBy != "" {
			lines = append(lines, "hit by "+snap.LastRun.KilledBy)
		}
		lines = append(lines, "", "R restart   M menu   Q quit")
		drawOverlay(s, lines)
	}
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	f := snap.Frame
	left := fmt.Sprintf(" %s  Score %d  Best %d", snap.Difficulty.Title(), f.Score, snap.HighScore)
	right := fmt.Sprintf("Speed %.1f ", f.Speed)
	s.DrawTextColor(0, 0, left, core.ColorBrightWhite)
	s.DrawTextColor(s.Width()-len(right), 0, right, core.ColorGray)

	status := fmt.Sprintf(" Jumps %d", f.Player.JumpsRemaining)
	if f.Player.Shielded {
		status += "  Shield"
	}
	if f.Player.MagnetActive {
		status += fmt.Sprintf("  Magnet %d", f.Player.MagnetTicks)
	}
	s.DrawTextColor(0, 1, status, core.ColorCyan)
	drawSpeedBar(s, 1, f.SpeedLevel)

	s.DrawTextColor(1, s.Height()-1, "Space jump  Down duck  P pause  M menu  Q quit", core.ColorGray)
}

func drawSpeedBar(s *core.Screen, y int, level float64) {
	const width = 10
	filled := int(math.Round(core.ClampF(level, 0, 1) * width))
	bar := "[" + strings.Repeat("|", filled) + strings.Repeat(" ", width-filled) + "]"
	s.DrawTextColor(s.Width()-len(bar)-1, y, bar, core.ColorOrange)
}

func drawOverlay(s *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	box := core.NewRect((s.Width()-width-4)/2, (s.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightMagenta)
	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		s.DrawTextColor(x, box.Y+1+i, l, core.ColorBrightYellow)
	}
}
