package physics

import (
	"math"

	"github.com/lixenwraith/sentinel/vmath"
)

// ColliderID identifies a collider within a World
type ColliderID uint32

// Collider is a static or moving axis-aligned box in the world
type Collider struct {
	ID       ColliderID
	Box      vmath.AABB
	Category Category
	Tag      Tag
	Solid    bool // blocks bodies whose collide mask selects its category
}

// Hit is the first collider reported by a cast
type Hit struct {
	ID       ColliderID
	Tag      Tag
	Point    vmath.Vec2
	Distance float64
}

// World owns colliders and answers spatial queries
// Not safe for concurrent use; the game tick owns it
type World struct {
	colliders map[ColliderID]*Collider
	order     []ColliderID // insertion order for deterministic tie-breaking
	nextID    ColliderID
}

// NewWorld creates an empty collider world
func NewWorld() *World {
	return &World{
		colliders: make(map[ColliderID]*Collider),
		order:     make([]ColliderID, 0, 16),
		nextID:    1,
	}
}

// Add inserts a collider and returns its assigned ID
func (w *World) Add(c Collider) ColliderID {
	c.ID = w.nextID
	w.nextID++
	w.colliders[c.ID] = &c
	w.order = append(w.order, c.ID)
	return c.ID
}

// Remove deletes a collider, no-op if absent
func (w *World) Remove(id ColliderID) {
	if _, ok := w.colliders[id]; !ok {
		return
	}
	delete(w.colliders, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Get returns a copy of the collider
func (w *World) Get(id ColliderID) (Collider, bool) {
	c, ok := w.colliders[id]
	if !ok {
		return Collider{}, false
	}
	return *c, true
}

// SetCenter moves a collider without collision resolution
func (w *World) SetCenter(id ColliderID, center vmath.Vec2) {
	if c, ok := w.colliders[id]; ok {
		c.Box.Center = center
	}
}

// Colliders returns all colliders in insertion order
func (w *World) Colliders() []Collider {
	out := make([]Collider, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, *w.colliders[id])
	}
	return out
}

// Raycast returns the nearest collider selected by mask along a ray
// Colliders containing the origin report distance 0
func (w *World) Raycast(origin, dir vmath.Vec2, maxDist float64, mask Mask) (Hit, bool) {
	dir = vmath.V2Normalize(dir)
	if dir == (vmath.Vec2{}) {
		return Hit{}, false
	}
	return w.cast(origin, dir, maxDist, mask, vmath.Vec2{})
}

// BoxCast sweeps a box of the given full size along dir and returns the nearest hit
func (w *World) BoxCast(origin, size, dir vmath.Vec2, maxDist float64, mask Mask) (Hit, bool) {
	dir = vmath.V2Normalize(dir)
	if dir == (vmath.Vec2{}) {
		return Hit{}, false
	}
	return w.cast(origin, dir, maxDist, mask, vmath.V2Scale(size, 0.5))
}

// cast is a ray against colliders expanded by half (zero for rays)
func (w *World) cast(origin, dir vmath.Vec2, maxDist float64, mask Mask, half vmath.Vec2) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, id := range w.order {
		c := w.colliders[id]
		if !mask.Has(c.Category) {
			continue
		}
		dist, ok := c.Box.Expand(half).RayIntersect(origin, dir, maxDist)
		if !ok || dist >= best.Distance {
			continue
		}
		best = Hit{
			ID:       c.ID,
			Tag:      c.Tag,
			Point:    vmath.V2Add(origin, vmath.V2Scale(dir, dist)),
			Distance: dist,
		}
		found = true
	}

	return best, found
}

// OverlapCircle reports whether any collider selected by mask intersects the circle
func (w *World) OverlapCircle(center vmath.Vec2, radius float64, mask Mask) bool {
	for _, id := range w.order {
		c := w.colliders[id]
		if mask.Has(c.Category) && c.Box.OverlapsCircle(center, radius) {
			return true
		}
	}
	return false
}

// Overlapping returns IDs of colliders selected by mask that overlap collider id
func (w *World) Overlapping(id ColliderID, mask Mask) []ColliderID {
	self, ok := w.colliders[id]
	if !ok {
		return nil
	}

	var out []ColliderID
	for _, oid := range w.order {
		if oid == id {
			continue
		}
		c := w.colliders[oid]
		if mask.Has(c.Category) && self.Box.Overlaps(c.Box) {
			out = append(out, oid)
		}
	}
	return out
}
