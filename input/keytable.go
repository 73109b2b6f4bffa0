// Package input classifies terminal events into game intents.
package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable runes, matched case-sensitively
	Runes map[rune]Intent
}

// DefaultKeyTable returns arrow and vi-style bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEnter:  IntentConfirm,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'k': IntentUp,
			'j': IntentDown,
			'h': IntentLeft,
			'l': IntentRight,
			' ': IntentConfirm,
			'q': IntentQuit,
			'?': IntentHint,
		},
	}
}

// Translate classifies ev. Anything that is not a bound key maps to IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return IntentNone
	}

	if key.Key() == tcell.KeyRune {
		return kt.Runes[key.Rune()]
	}
	return kt.SpecialKeys[key.Key()]
}
