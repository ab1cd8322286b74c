package input

// Intent is a semantic action resolved from a key event
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit
	IntentPause
	IntentMute
	IntentToggleSight

	// Player
	IntentMoveLeft
	IntentMoveRight
	IntentJump

	// Menus
	IntentConfirm
	IntentRestart
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentPause:       "pause",
	IntentMute:        "mute",
	IntentToggleSight: "toggle_sight",
	IntentMoveLeft:    "move_left",
	IntentMoveRight:   "move_right",
	IntentJump:        "jump",
	IntentConfirm:     "confirm",
	IntentRestart:     "restart",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// IsMovement reports whether the intent drives the player body
func (i Intent) IsMovement() bool {
	return i == IntentMoveLeft || i == IntentMoveRight || i == IntentJump
}
