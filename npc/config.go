package npc

import (
	"fmt"
	"time"

	"github.com/lixenwraith/sentinel/audio"
	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/vmath"
)

// Default scene names requested by the collision resolver
const (
	DefaultVictoryScene = "Victory"
	DefaultDefeatScene  = "Defeat"
)

// Cues maps controller events to audio cues
type Cues struct {
	Collision    audio.Cue
	IdleToPatrol audio.Cue
	PatrolToIdle audio.Cue
	Chase        audio.Cue
}

// Config is static per controller instance
type Config struct {
	DecisionInterval  time.Duration
	ForcedSwitchAfter int

	Speed     float64 // units per second
	JumpSpeed float64 // vertical velocity applied on jump

	DetectionRange float64
	ConeThreshold  float64 // dot product threshold, 0.5 ~ 60 degree half-angle

	GroundCheckOffset vmath.Vec2
	GroundCheckRadius float64

	Waypoints         []vmath.Vec2
	WaypointTolerance float64

	PatrolProbeDistance float64
	ChaseProbeOffset    float64
	ChaseProbeSize      vmath.Vec2
	ChaseProbeDistance  float64

	SightMask  physics.Mask
	ProbeMask  physics.Mask
	GroundMask physics.Mask

	SceneLoadDelay time.Duration
	VictoryScene   string
	DefeatScene    string

	Cues Cues
}

// DefaultConfig returns the stock tuning with no waypoints
func DefaultConfig() Config {
	return Config{
		DecisionInterval:  5 * time.Second,
		ForcedSwitchAfter: 3,

		Speed:     2,
		JumpSpeed: 7,

		DetectionRange: 5,
		ConeThreshold:  0.5,

		GroundCheckOffset: vmath.V2(0, -0.5),
		GroundCheckRadius: 0.2,

		WaypointTolerance: 0.1,

		PatrolProbeDistance: 1.5,
		ChaseProbeOffset:    0.5,
		ChaseProbeSize:      vmath.V2(0.5, 0.5),
		ChaseProbeDistance:  0.1,

		SightMask:  physics.MaskOf(physics.CategoryPlayer),
		ProbeMask:  physics.MaskAll.Without(physics.CategoryNPC),
		GroundMask: physics.MaskOf(physics.CategoryGround, physics.CategoryObstacle),

		SceneLoadDelay: 500 * time.Millisecond,
		VictoryScene:   DefaultVictoryScene,
		DefeatScene:    DefaultDefeatScene,

		Cues: Cues{
			Collision:    audio.CueCollision,
			IdleToPatrol: audio.CueIdleToPatrol,
			PatrolToIdle: audio.CuePatrolToIdle,
			Chase:        audio.CueChase,
		},
	}
}

// Validate rejects configs the controller cannot run with
func (c Config) Validate() error {
	switch {
	case c.DecisionInterval <= 0:
		return fmt.Errorf("%w: decision interval must be positive, got %v", ErrInvalidConfig, c.DecisionInterval)
	case c.ForcedSwitchAfter < 1:
		return fmt.Errorf("%w: forced switch after must be at least 1, got %d", ErrInvalidConfig, c.ForcedSwitchAfter)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidConfig, c.Speed)
	case c.JumpSpeed <= 0:
		return fmt.Errorf("%w: jump speed must be positive, got %g", ErrInvalidConfig, c.JumpSpeed)
	case c.DetectionRange <= 0:
		return fmt.Errorf("%w: detection range must be positive, got %g", ErrInvalidConfig, c.DetectionRange)
	case c.ConeThreshold <= -1 || c.ConeThreshold >= 1:
		return fmt.Errorf("%w: cone threshold must be in (-1, 1), got %g", ErrInvalidConfig, c.ConeThreshold)
	case c.GroundCheckRadius <= 0:
		return fmt.Errorf("%w: ground check radius must be positive, got %g", ErrInvalidConfig, c.GroundCheckRadius)
	case c.WaypointTolerance <= 0:
		return fmt.Errorf("%w: waypoint tolerance must be positive, got %g", ErrInvalidConfig, c.WaypointTolerance)
	case c.PatrolProbeDistance < 0 || c.ChaseProbeDistance < 0 || c.ChaseProbeOffset < 0:
		return fmt.Errorf("%w: probe distances must not be negative", ErrInvalidConfig)
	case c.ChaseProbeSize.X <= 0 || c.ChaseProbeSize.Y <= 0:
		return fmt.Errorf("%w: chase probe size must be positive, got %v", ErrInvalidConfig, c.ChaseProbeSize)
	case c.SceneLoadDelay < 0:
		return fmt.Errorf("%w: scene load delay must not be negative, got %v", ErrInvalidConfig, c.SceneLoadDelay)
	case c.VictoryScene == "" || c.DefeatScene == "":
		return fmt.Errorf("%w: victory and defeat scenes are required", ErrInvalidConfig)
	}

	for _, cue := range []audio.Cue{c.Cues.Collision, c.Cues.IdleToPatrol, c.Cues.PatrolToIdle, c.Cues.Chase} {
		if !cue.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, cue)
		}
	}
	return nil
}
