package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rewind/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('a'), core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{runeKey('w'), core.ActionJump},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{runeKey('t'), core.ActionRewind},
		{runeKey('f'), core.ActionFreeze},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if quit {
			t.Errorf("key %q should not quit", tc.msg.String())
		}
		if action != tc.want {
			t.Errorf("key %q mapped to %v, want %v", tc.msg.String(), action, tc.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		if _, quit := km.MapKey(msg); !quit {
			t.Errorf("key %q should quit", msg.String())
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('a'), &frame)
	km.MapKeyToFrame(runeKey('t'), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionRewind) {
		t.Error("mapped keys should accumulate in the frame")
	}
	if frame.Has(core.ActionRight) {
		t.Error("unmapped action present in frame")
	}
}
