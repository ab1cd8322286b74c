package vmath

import "math"

// AABB is an axis-aligned box described by its center and half extents
type AABB struct {
	Center Vec2
	Half   Vec2
}

// NewAABB creates a box centered at c with full size
func NewAABB(c, size Vec2) AABB {
	return AABB{Center: c, Half: V2Scale(size, 0.5)}
}

// Min returns the lower-left corner
func (b AABB) Min() Vec2 {
	return V2Sub(b.Center, b.Half)
}

// Max returns the upper-right corner
func (b AABB) Max() Vec2 {
	return V2Add(b.Center, b.Half)
}

// Contains checks if point is inside or on the boundary
func (b AABB) Contains(p Vec2) bool {
	min, max := b.Min(), b.Max()
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}

// Overlaps checks strict interior intersection; touching edges do not overlap
func (b AABB) Overlaps(o AABB) bool {
	return math.Abs(b.Center.X-o.Center.X) < b.Half.X+o.Half.X &&
		math.Abs(b.Center.Y-o.Center.Y) < b.Half.Y+o.Half.Y
}

// Expand returns the box grown by half extents on each side (Minkowski sum with a box)
func (b AABB) Expand(half Vec2) AABB {
	return AABB{Center: b.Center, Half: V2Add(b.Half, half)}
}

// OverlapsCircle checks intersection with a circle via closest point clamping
func (b AABB) OverlapsCircle(center Vec2, radius float64) bool {
	min, max := b.Min(), b.Max()
	closest := Vec2{
		X: clamp(center.X, min.X, max.X),
		Y: clamp(center.Y, min.Y, max.Y),
	}
	return V2MagSq(V2Sub(center, closest)) <= radius*radius
}

// RayIntersect returns entry distance along a unit direction using the slab method
// Origins inside the box report distance 0
func (b AABB) RayIntersect(origin, dir Vec2, maxDist float64) (float64, bool) {
	min, max := b.Min(), b.Max()
	tNear, tFar := 0.0, maxDist

	if !slab(origin.X, dir.X, min.X, max.X, &tNear, &tFar) {
		return 0, false
	}
	if !slab(origin.Y, dir.Y, min.Y, max.Y, &tNear, &tFar) {
		return 0, false
	}
	return tNear, true
}

// slab narrows [tNear, tFar] for one axis, false if the interval becomes empty
func slab(o, d, lo, hi float64, tNear, tFar *float64) bool {
	if d == 0 {
		return o >= lo && o <= hi
	}
	inv := 1.0 / d
	t1 := (lo - o) * inv
	t2 := (hi - o) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tNear {
		*tNear = t1
	}
	if t2 < *tFar {
		*tFar = t2
	}
	return *tNear <= *tFar
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
