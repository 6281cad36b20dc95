package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/unicorn-dash/internal/core"
	"github.com/vovakirdan/unicorn-dash/internal/game"
)

// duckHoldFrames is how long one duck key press keeps the duck held.
// Terminals report no key-up events, so holding the key is seen as a stream
// of auto-repeat presses that keep refreshing the timer.
const duckHoldFrames = 12

// KeyMapper translates Bubble Tea key messages to intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key pressed during a run (playing, paused, dying or
// game over) to an intent. Unbound keys return an IntentNone intent.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state game.State) core.Intent {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.Quit()
	case " ", "up", "w", "k":
		return core.JumpPressed()
	case "down", "s", "j":
		return core.DuckHeld(true)
	case "p":
		return core.PauseToggled()
	case "esc", "b", "m":
		return core.ReturnToMenu()
	case "r", "enter":
		if state == game.StateGameOver {
			return core.Restart()
		}
	case "1":
		return core.DifficultySelected(core.DifficultyEasy)
	case "2":
		return core.DifficultySelected(core.DifficultyNormal)
	case "3":
		return core.DifficultySelected(core.DifficultyHard)
	}
	return core.Intent{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
	MenuActionEasy
	MenuActionNormal
	MenuActionHard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "1":
		return MenuActionEasy
	case "2":
		return MenuActionNormal
	case "3":
		return MenuActionHard
	}
	return MenuActionNone
}
