package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestResolve_Defaults(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentMoveLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentMoveRight},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentJump},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"a", runeKey('a'), IntentMoveLeft},
		{"D uppercase", runeKey('D'), IntentMoveRight},
		{"space", runeKey(' '), IntentJump},
		{"r", runeKey('r'), IntentRestart},
		{"p", runeKey('p'), IntentPause},
		{"m", runeKey('m'), IntentMute},
		{"unbound rune", runeKey('z'), IntentNone},
		{"unbound special", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Resolve(tt.ev))
		})
	}
}

func TestResolve_Nil(t *testing.T) {
	assert.Equal(t, IntentNone, DefaultKeyTable().Resolve(nil))
}

func TestApplyBindings(t *testing.T) {
	base := DefaultKeyTable()

	kt, err := ApplyBindings(base, map[string]string{
		"j":     "move_left",
		"l":     "move_right",
		"a":     "none",
		"down":  "jump",
		"space": "confirm",
	})
	require.NoError(t, err)

	assert.Equal(t, IntentMoveLeft, kt.Resolve(runeKey('j')))
	assert.Equal(t, IntentMoveRight, kt.Resolve(runeKey('l')))
	assert.Equal(t, IntentNone, kt.Resolve(runeKey('a')))
	assert.Equal(t, IntentConfirm, kt.Resolve(runeKey(' ')))
	assert.Equal(t, IntentJump, kt.Resolve(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))

	// Base is untouched
	assert.Equal(t, IntentMoveLeft, base.Resolve(runeKey('a')))
	assert.Equal(t, IntentNone, base.Resolve(runeKey('j')))
}

func TestApplyBindings_Errors(t *testing.T) {
	_, err := ApplyBindings(DefaultKeyTable(), map[string]string{"x": "fly"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = ApplyBindings(DefaultKeyTable(), map[string]string{"pageup": "jump"})
	assert.ErrorContains(t, err, "invalid key")
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	assert.Contains(t, names, "move_left")
	assert.Contains(t, names, "toggle_sight")
	assert.True(t, IsActionName("none"))
	assert.False(t, IsActionName("fire"))

	intent, ok := ActionIntent("restart")
	require.True(t, ok)
	assert.Equal(t, IntentRestart, intent)
	assert.Equal(t, "restart", intent.String())
}
