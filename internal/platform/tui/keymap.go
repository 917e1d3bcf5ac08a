package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunstkammer/dadaspiel/internal/core"
)

// KeyMapper translates Bubble Tea key messages to minigame actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Letter keys are not mapped
// to directions here; the typewriter round needs them as plain runes, so
// directions ride the arrow keys only.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "up":
		return core.ActionUp, false
	case "down":
		return core.ActionDown, false
	case "left":
		return core.ActionLeft, false
	case "right":
		return core.ActionRight, false
	case " ":
		return core.ActionHit, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message: the mapped
// action, plus the raw rune for rounds that read typed letters. Returns
// true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			frame.Type(r)
		}
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionDelete
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "x", "delete":
		return MenuActionDelete
	}

	return MenuActionNone
}
