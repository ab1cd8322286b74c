package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABBRayIntersect(t *testing.T) {
	box := NewAABB(V2(5, 0), V2(2, 2)) // x in [4,6], y in [-1,1]

	tests := []struct {
		name    string
		origin  Vec2
		dir     Vec2
		maxDist float64
		hit     bool
		dist    float64
	}{
		{"straight hit", V2(0, 0), V2Right, 10, true, 4},
		{"out of range", V2(0, 0), V2Right, 3, false, 0},
		{"pointing away", V2(0, 0), V2Left, 10, false, 0},
		{"passes above", V2(0, 2), V2Right, 10, false, 0},
		{"origin inside", V2(5, 0), V2Right, 10, true, 0},
		{"exactly at range", V2(0, 0), V2Right, 4, true, 4},
		{"diagonal", V2(0, -4), V2Normalize(V2(1, 1)), 10, true, 4 * 1.4142135623730951},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, ok := box.RayIntersect(tt.origin, tt.dir, tt.maxDist)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.dist, dist, 1e-9)
			}
		})
	}
}

func TestAABBOverlaps(t *testing.T) {
	a := NewAABB(V2(0, 0), V2(2, 2))

	assert.True(t, a.Overlaps(NewAABB(V2(1.5, 0), V2(2, 2))))
	// Touching edges are not an overlap
	assert.False(t, a.Overlaps(NewAABB(V2(2, 0), V2(2, 2))))
	assert.False(t, a.Overlaps(NewAABB(V2(0, 5), V2(2, 2))))
}

func TestAABBOverlapsCircle(t *testing.T) {
	ground := NewAABB(V2(0, -0.5), V2(10, 1)) // top surface at y=0

	assert.True(t, ground.OverlapsCircle(V2(0, 0.1), 0.2))
	assert.False(t, ground.OverlapsCircle(V2(0, 0.3), 0.2))
	assert.True(t, ground.OverlapsCircle(V2(5.1, 0.1), 0.2), "corner within radius")
}

func TestAABBExpand(t *testing.T) {
	b := NewAABB(V2(0, 0), V2(2, 2)).Expand(V2(0.5, 0.25))
	assert.Equal(t, V2(-1.5, -1.25), b.Min())
	assert.Equal(t, V2(1.5, 1.25), b.Max())
}
