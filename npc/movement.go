package npc

import (
	"time"

	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/vmath"
)

// patrol walks the waypoint loop, jumping jump-tagged obstacles in the way
func (c *Controller) patrol(dt time.Duration) {
	n := len(c.cfg.Waypoints)
	if n == 0 {
		return
	}

	pos := c.deps.Body.Position()
	target := c.cfg.Waypoints[c.waypoint]
	dir := vmath.V2Normalize(vmath.V2Sub(target, pos))

	if hit, ok := c.deps.Physics.Raycast(pos, dir, c.cfg.PatrolProbeDistance, c.cfg.ProbeMask); ok {
		if hit.Tag == physics.TagJump && c.grounded {
			c.jump()
			return
		}
	}

	next := vmath.MoveTowards(pos, target, c.cfg.Speed*dt.Seconds())
	c.deps.Body.SetPosition(next)
	c.faceStep(pos, next)

	if vmath.V2Dist(next, target) < c.cfg.WaypointTolerance {
		c.waypoint = (c.waypoint + 1) % n
		// Completed loop forces a decision next tick
		if c.waypoint == 0 {
			c.timer = 0
		}
	}
}

// chase moves straight at the player, jumping jump-tagged obstacles ahead
func (c *Controller) chase(dt time.Duration) {
	pos := c.deps.Body.Position()
	facing := c.Facing()
	origin := vmath.V2Add(pos, vmath.V2Scale(facing, c.cfg.ChaseProbeOffset))

	hit, ok := c.deps.Physics.BoxCast(origin, c.cfg.ChaseProbeSize, facing, c.cfg.ChaseProbeDistance, c.cfg.ProbeMask)
	if ok && hit.Tag == physics.TagJump && c.grounded {
		c.jump()
		return
	}

	next := vmath.MoveTowards(pos, c.deps.Player.Position(), c.cfg.Speed*dt.Seconds())
	c.deps.Body.SetPosition(next)
	c.faceStep(pos, next)
}

// faceStep turns toward the horizontal part of a step
// A step with no horizontal part keeps the current facing
func (c *Controller) faceStep(from, to vmath.Vec2) {
	switch {
	case to.X < from.X:
		c.facingLeft = true
	case to.X > from.X:
		c.facingLeft = false
	}
}
