package vmath

import (
	"math"
	"strconv"
)

// Vec2 is a float64 2D vector in world units, Y up
type Vec2 struct {
	X, Y float64
}

// Unit facing vectors
var (
	V2Right = Vec2{X: 1}
	V2Left  = Vec2{X: -1}
)

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return "(" + strconv.FormatFloat(v.X, 'f', 2, 64) + ", " + strconv.FormatFloat(v.Y, 'f', 2, 64) + ")"
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(b, a))
}

// MoveTowards moves current toward target by at most maxDelta without overshooting
func MoveTowards(current, target Vec2, maxDelta float64) Vec2 {
	delta := V2Sub(target, current)
	dist := V2Mag(delta)
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return V2Add(current, V2Scale(delta, maxDelta/dist))
}

// Facing returns the horizontal unit vector for a facing flag
func Facing(left bool) Vec2 {
	if left {
		return V2Left
	}
	return V2Right
}
