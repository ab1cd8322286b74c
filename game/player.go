package game

import (
	"time"

	"github.com/lixenwraith/sentinel/input"
	"github.com/lixenwraith/sentinel/physics"
)

// Terminals report key presses and auto-repeats but no releases, so a move
// key stays held for this long after its last event
const holdWindow = 180 * time.Millisecond

// PlayerControl turns movement intents into body velocity
type PlayerControl struct {
	body  *physics.Body
	speed float64
	jump  float64

	dir        float64 // -1 left, +1 right, 0 idle
	hold       time.Duration
	jumpQueued bool
}

func NewPlayerControl(body *physics.Body, speed, jump float64) *PlayerControl {
	return &PlayerControl{body: body, speed: speed, jump: jump}
}

// Handle records a movement intent, applied on the next Update
func (p *PlayerControl) Handle(intent input.Intent) {
	switch intent {
	case input.IntentMoveLeft:
		p.dir, p.hold = -1, holdWindow
	case input.IntentMoveRight:
		p.dir, p.hold = 1, holdWindow
	case input.IntentJump:
		p.jumpQueued = true
	}
}

// Update sets the body velocity for this tick; jumps only from the ground
func (p *PlayerControl) Update(dt time.Duration) {
	if p.hold > 0 {
		p.hold -= dt
	}
	if p.hold <= 0 {
		p.dir = 0
	}
	p.body.SetHorizontalVelocity(p.dir * p.speed)

	if p.jumpQueued && p.body.Grounded() {
		p.body.SetVerticalVelocity(p.jump)
	}
	p.jumpQueued = false
}

// Moving reports whether a move key is held
func (p *PlayerControl) Moving() bool {
	return p.dir != 0
}
