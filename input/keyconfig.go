package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Names accepted for special keys in the [keys] section
var specialKeyNames = map[string]tcell.Key{
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
	"ctrl-s": tcell.KeyCtrlS,
}

// ApplyBindings returns a copy of base with the key → action overrides applied
// Binding a key to "none" removes it
// Returns error on unknown action names or invalid key names
func ApplyBindings(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	kt := base.Clone()
	for keyStr, actionName := range bindings {
		if err := kt.Bind(keyStr, actionName); err != nil {
			return nil, err
		}
	}
	return kt, nil
}

// Bind binds a single key name to an action name
func (kt *KeyTable) Bind(keyStr, actionName string) error {
	intent, err := resolveAction(actionName)
	if err != nil {
		return fmt.Errorf("key %q: %w", keyStr, err)
	}

	if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
		if intent == IntentNone {
			delete(kt.SpecialKeys, k)
		} else {
			kt.SpecialKeys[k] = intent
		}
		return nil
	}

	r, err := resolveRune(keyStr)
	if err != nil {
		return err
	}
	if intent == IntentNone {
		delete(kt.Runes, r)
	} else {
		kt.Runes[r] = intent
	}
	return nil
}

// resolveRune converts a key string to a lowercase rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(strings.ToLower(s))
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or special key name)", s)
}

func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}
