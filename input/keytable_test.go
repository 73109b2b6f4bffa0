package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateDefaultBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   tcell.Event
		want Intent
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), IntentDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentRight},
		{"vi k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), IntentUp},
		{"vi j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), IntentDown},
		{"vi h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentLeft},
		{"vi l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), IntentRight},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentConfirm},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentConfirm},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"hint", tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), IntentHint},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), IntentNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Translate(tt.ev); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIntentDelta(t *testing.T) {
	tests := []struct {
		in     Intent
		dx, dy int
	}{
		{IntentUp, 0, -1},
		{IntentDown, 0, 1},
		{IntentLeft, -1, 0},
		{IntentRight, 1, 0},
		{IntentConfirm, 0, 0},
		{IntentNone, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.in.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v: expected (%d,%d), got (%d,%d)", tt.in, tt.dx, tt.dy, dx, dy)
		}
		if tt.in.IsMotion() != (tt.dx != 0 || tt.dy != 0) {
			t.Errorf("%v: IsMotion mismatch", tt.in)
		}
	}
}
