package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vporoshin/tetrois/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Space doubles as restart on
// the game over screen, so the mapping depends on whether the session has
// ended. Returns the action (may be ActionNone) and whether it's a quit
// request. Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, gameOver bool) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "s", "down":
		return core.ActionSoftDrop, false
	case "w", "up":
		return core.ActionRotate, false
	case " ":
		if gameOver {
			return core.ActionRestart, false
		}
		return core.ActionHardDrop, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. A newer key
// replaces any still-pending one. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, gameOver bool) bool {
	action, isQuit := km.MapKey(msg, gameOver)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
