package npc

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/sentinel/audio"
	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/vmath"
)

// Physics answers the world queries the controller issues each tick
type Physics interface {
	OverlapCircle(center vmath.Vec2, radius float64, mask physics.Mask) bool
	Raycast(origin, dir vmath.Vec2, maxDist float64, mask physics.Mask) (physics.Hit, bool)
	BoxCast(origin, size, dir vmath.Vec2, maxDist float64, mask physics.Mask) (physics.Hit, bool)
}

// Body is the NPC's own rigid body
type Body interface {
	Position() vmath.Vec2
	SetPosition(vmath.Vec2)
	SetVerticalVelocity(float64)
}

// Target exposes the position of the chased player
type Target interface {
	Position() vmath.Vec2
}

// CuePlayer plays one-shot audio cues without blocking
type CuePlayer interface {
	Play(audio.Cue) bool
}

// SightLine is the debug visualization of the facing ray
type SightLine interface {
	SetEndpoints(start, end vmath.Vec2)
	SetColor(Color)
}

// Labels shows the state descriptions and countdown
type Labels interface {
	SetLabelActive(LabelID, bool)
	SetLabelText(LabelID, string)
}

// Scenes accepts fire-and-forget scene load requests
type Scenes interface {
	RequestLoad(name string)
}

// Scheduler runs fn once delay of game time has passed
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Rand is the random source for decision coin flips
type Rand interface {
	Float64() float64
}

// globalRand uses the math/rand/v2 top-level source
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Color of the sight line
type Color int

const (
	ColorUnset Color = iota
	ColorNeutral
)

// LabelID identifies a UI text element
type LabelID int

const (
	LabelIdle LabelID = iota
	LabelPatrol
	LabelChase
	LabelCountdown
)

// Deps are the collaborators injected into a Controller
// SightLine, Labels and Rand are optional
type Deps struct {
	Physics   Physics
	Body      Body
	Player    Target
	Audio     CuePlayer
	Scenes    Scenes
	Scheduler Scheduler

	Sight  SightLine
	Labels Labels
	Rand   Rand
}

type noopSight struct{}

func (noopSight) SetEndpoints(vmath.Vec2, vmath.Vec2) {}
func (noopSight) SetColor(Color)                      {}

type noopLabels struct{}

func (noopLabels) SetLabelActive(LabelID, bool) {}
func (noopLabels) SetLabelText(LabelID, string) {}
