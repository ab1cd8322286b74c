package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable runes, matched case-insensitively
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyUp:     IntentJump,
			tcell.KeyEnter:  IntentConfirm,
		},
		Runes: map[rune]Intent{
			'a': IntentMoveLeft,
			'd': IntentMoveRight,
			'w': IntentJump,
			' ': IntentJump,
			'r': IntentRestart,
			'p': IntentPause,
			'm': IntentMute,
			'v': IntentToggleSight,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Resolve maps a key event to its intent
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}

	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}

	r := unicode.ToLower(ev.Rune())
	// Some terminals report Ctrl+letter as a rune with the modifier set
	if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'q' || r == 'c') {
		return IntentQuit
	}
	return kt.Runes[r]
}
