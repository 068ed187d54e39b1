package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vporoshin/tetrois/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		gameOver bool
		expected core.Action
		isQuit   bool
	}{
		{"a", false, core.ActionLeft, false},
		{"left", false, core.ActionLeft, false},
		{"d", false, core.ActionRight, false},
		{"right", false, core.ActionRight, false},
		{"s", false, core.ActionSoftDrop, false},
		{"down", false, core.ActionSoftDrop, false},
		{"w", false, core.ActionRotate, false},
		{"up", false, core.ActionRotate, false},
		{" ", false, core.ActionHardDrop, false},
		{" ", true, core.ActionRestart, false},
		{"r", false, core.ActionRestart, false},
		{"r", true, core.ActionRestart, false},
		{"q", false, core.ActionQuit, true},
		{"ctrl+c", false, core.ActionQuit, true},
		{"x", false, core.ActionNone, false},
		{"esc", false, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, isQuit := km.MapKey(keyMsg(tc.key), tc.gameOver)
			if action != tc.expected {
				t.Errorf("MapKey(%q, gameOver=%v) action = %v, expected %v",
					tc.key, tc.gameOver, action, tc.expected)
			}
			if isQuit != tc.isQuit {
				t.Errorf("MapKey(%q) isQuit = %v, expected %v", tc.key, isQuit, tc.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameLatestWins(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("a"), &frame, false)
	km.MapKeyToFrame(keyMsg("d"), &frame, false)

	if !frame.Has(core.ActionRight) {
		t.Errorf("frame action = %v, expected the later key to win", frame.Action)
	}
}

func TestMapKeyToFrameIgnoresUnbound(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("a"), &frame, false)
	km.MapKeyToFrame(keyMsg("x"), &frame, false)

	if !frame.Has(core.ActionLeft) {
		t.Error("unbound key should not clear a pending action")
	}
}
