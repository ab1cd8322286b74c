package npc

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sentinel/engine/fsm"
	"github.com/lixenwraith/sentinel/vmath"
)

// Controller drives one NPC: decision timer, perception, movement and the
// collision outcome. All methods must be called from the tick owner
type Controller struct {
	cfg    Config
	deps   Deps
	logger *zap.Logger

	machine *fsm.Machine[*Controller]

	timer      time.Duration // time until the next decision attempt
	decisions  int           // attempts since the last forced switch
	waypoint   int           // current patrol target index
	facingLeft bool
	grounded   bool
}

// New validates cfg and deps and builds a controller in Idle
func New(cfg Config, deps Deps, logger *zap.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if deps.Sight == nil {
		deps.Sight = noopSight{}
	}
	if deps.Labels == nil {
		deps.Labels = noopLabels{}
	}
	if deps.Rand == nil {
		deps.Rand = globalRand{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		cfg:    cfg,
		deps:   deps,
		logger: logger.With(zap.String("component", "npc")),
		timer:  cfg.DecisionInterval,
	}

	c.machine = newMachine(cfg.Cues)
	c.machine.OnTransition(func(from, to fsm.StateID, event fsm.EventType) {
		c.logger.Debug("state transition",
			zap.Stringer("from", State(from)),
			zap.Stringer("to", State(to)))
	})
	if err := c.machine.Init(c); err != nil {
		return nil, fmt.Errorf("npc state machine: %w", err)
	}
	return c, nil
}

func (d Deps) validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%w: %s", ErrMissingDependency, name)
	}
	switch {
	case d.Physics == nil:
		return missing("physics")
	case d.Body == nil:
		return missing("body")
	case d.Player == nil:
		return missing("player")
	case d.Audio == nil:
		return missing("audio")
	case d.Scenes == nil:
		return missing("scenes")
	case d.Scheduler == nil:
		return missing("scheduler")
	}
	return nil
}

// newMachine builds the Idle/Patrol/Chase graph; Chase has no exits
func newMachine(cues Cues) *fsm.Machine[*Controller] {
	m := fsm.NewMachine[*Controller]()
	m.AddState(StateIdle.id(), StateIdle.String())
	m.AddState(StatePatrol.id(), StatePatrol.String())
	m.AddState(StateChase.id(), StateChase.String())

	m.AddTransition(StateIdle.id(), fsm.Transition[*Controller]{
		TargetID: StatePatrol.id(),
		Event:    EventToggle,
		Actions:  []fsm.Action[*Controller]{playCue(cues.IdleToPatrol)},
	})
	m.AddTransition(StatePatrol.id(), fsm.Transition[*Controller]{
		TargetID: StateIdle.id(),
		Event:    EventToggle,
		Actions:  []fsm.Action[*Controller]{playCue(cues.PatrolToIdle)},
	})
	for _, from := range []State{StateIdle, StatePatrol} {
		m.AddTransition(from.id(), fsm.Transition[*Controller]{
			TargetID: StateChase.id(),
			Event:    EventPlayerSpotted,
			Actions:  []fsm.Action[*Controller]{playCue(cues.Chase)},
		})
	}
	return m
}

// Start publishes the initial UI
func (c *Controller) Start() {
	c.refreshUI()
	c.refreshCountdown()
	c.refreshSight()
}

// Tick advances the controller by dt
func (c *Controller) Tick(dt time.Duration) {
	c.machine.Update(c, dt)
	chasing := c.State() == StateChase

	if !chasing {
		c.timer -= dt
	}
	c.refreshCountdown()

	c.grounded = c.deps.Physics.OverlapCircle(c.groundCheck(), c.cfg.GroundCheckRadius, c.cfg.GroundMask)

	if !chasing {
		if !c.perceive() && c.timer <= 0 {
			c.decide()
		}
	}

	c.refreshSight()

	switch c.State() {
	case StatePatrol:
		c.patrol(dt)
	case StateChase:
		c.chase(dt)
	}
}

// State returns the active state
func (c *Controller) State() State {
	return State(c.machine.Active())
}

// Timer returns the time left until the next decision attempt
func (c *Controller) Timer() time.Duration {
	return c.timer
}

// Decisions returns the attempts made since the last forced switch
func (c *Controller) Decisions() int {
	return c.decisions
}

// Waypoint returns the current patrol target index
func (c *Controller) Waypoint() int {
	return c.waypoint
}

// FacingLeft reports the horizontal facing
func (c *Controller) FacingLeft() bool {
	return c.facingLeft
}

// Facing returns the facing unit vector
func (c *Controller) Facing() vmath.Vec2 {
	return vmath.Facing(c.facingLeft)
}

// Grounded returns the ground contact computed this tick
func (c *Controller) Grounded() bool {
	return c.grounded
}

// TimeInState returns the time since the last transition
func (c *Controller) TimeInState() time.Duration {
	return c.machine.TimeInState()
}

func (c *Controller) groundCheck() vmath.Vec2 {
	return vmath.V2Add(c.deps.Body.Position(), c.cfg.GroundCheckOffset)
}

// jump applies the jump impulse
func (c *Controller) jump() {
	c.deps.Body.SetVerticalVelocity(c.cfg.JumpSpeed)
}
