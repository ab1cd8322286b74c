package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/sentinel/vmath"
)

// Body is a gravity-driven box that resolves against solid colliders
// The collider it drives lives in the World; Body only adds velocity
type Body struct {
	world *World
	id    ColliderID

	Velocity    vmath.Vec2
	Gravity     float64 // world units/s², negative pulls down
	CollideMask Mask    // solid categories this body is blocked by

	grounded bool
}

// NewBody attaches a body to an existing collider
func NewBody(w *World, id ColliderID, gravity float64, collide Mask) *Body {
	return &Body{
		world:       w,
		id:          id,
		Gravity:     gravity,
		CollideMask: collide,
	}
}

// ID returns the driven collider
func (b *Body) ID() ColliderID {
	return b.id
}

// Position returns the collider center
func (b *Body) Position() vmath.Vec2 {
	c, _ := b.world.Get(b.id)
	return c.Box.Center
}

// SetPosition moves toward p with collision resolution, stopping at solid surfaces
func (b *Body) SetPosition(p vmath.Vec2) {
	b.MoveBy(vmath.V2Sub(p, b.Position()))
}

// SetVerticalVelocity overrides vertical velocity (jump impulse)
func (b *Body) SetVerticalVelocity(vy float64) {
	b.Velocity.Y = vy
}

// SetHorizontalVelocity overrides horizontal velocity
func (b *Body) SetHorizontalVelocity(vx float64) {
	b.Velocity.X = vx
}

// Grounded reports whether the last vertical move landed on a solid surface
func (b *Body) Grounded() bool {
	return b.grounded
}

// Step integrates gravity and velocity for dt: v = v + g*dt; p = p + v*dt
func (b *Body) Step(dt time.Duration) {
	secs := dt.Seconds()
	b.Velocity.Y += b.Gravity * secs
	b.MoveBy(vmath.V2Scale(b.Velocity, secs))
}

// MoveBy displaces the body one axis at a time, sweeping against solids so fast
// moves cannot tunnel through thin colliders
// Returns the displacement actually applied
func (b *Body) MoveBy(delta vmath.Vec2) vmath.Vec2 {
	c, ok := b.world.colliders[b.id]
	if !ok {
		return vmath.Vec2{}
	}
	start := c.Box.Center

	if delta.X != 0 {
		dx := b.sweep(c, delta.X, axisX)
		if dx != delta.X {
			b.Velocity.X = 0
		}
		c.Box.Center.X += dx
	}

	if delta.Y != 0 {
		dy := b.sweep(c, delta.Y, axisY)
		b.grounded = false
		if dy != delta.Y {
			if delta.Y < 0 {
				b.grounded = true
			}
			b.Velocity.Y = 0
		}
		c.Box.Center.Y += dy
	}

	return vmath.V2Sub(c.Box.Center, start)
}

type axis uint8

const (
	axisX axis = iota
	axisY
)

// contactEpsilon tolerates float drift for colliders resting exactly on an edge
const contactEpsilon = 1e-9

// sweep limits a single-axis displacement d to the nearest solid in the path
func (b *Body) sweep(c *Collider, d float64, ax axis) float64 {
	min, max := c.Box.Min(), c.Box.Max()

	for _, id := range b.world.order {
		if id == c.ID {
			continue
		}
		other := b.world.colliders[id]
		if !other.Solid || !b.CollideMask.Has(other.Category) {
			continue
		}
		omin, omax := other.Box.Min(), other.Box.Max()

		// Moving axis and the perpendicular extent that must overlap to block
		var lo, hi, olo, ohi float64
		if ax == axisX {
			if max.Y <= omin.Y || min.Y >= omax.Y {
				continue
			}
			lo, hi, olo, ohi = min.X, max.X, omin.X, omax.X
		} else {
			if max.X <= omin.X || min.X >= omax.X {
				continue
			}
			lo, hi, olo, ohi = min.Y, max.Y, omin.Y, omax.Y
		}

		if d > 0 && olo >= hi-contactEpsilon {
			if gap := olo - hi; gap < d {
				d = math.Max(gap, 0)
			}
		} else if d < 0 && ohi <= lo+contactEpsilon {
			if gap := ohi - lo; gap > d {
				d = math.Min(gap, 0)
			}
		}
	}

	return d
}
