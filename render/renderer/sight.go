package renderer

import (
	"github.com/lixenwraith/sentinel/render"
)

// SightRenderer traces the NPC sight ray with Bresenham's algorithm
type SightRenderer struct {
	visible bool
}

func NewSightRenderer(visible bool) *SightRenderer {
	return &SightRenderer{visible: visible}
}

// IsVisible implements render.VisibilityToggle
func (r *SightRenderer) IsVisible() bool {
	return r.visible
}

// Toggle flips visibility and returns the new state
func (r *SightRenderer) Toggle() bool {
	r.visible = !r.visible
	return r.visible
}

func (r *SightRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	s := frame.Sight
	if s == nil || !s.Visible {
		return
	}
	style := render.SightStyle(s.Color)

	x0, y0 := ctx.WorldToCell(s.Start)
	x1, y1 := ctx.WorldToCell(s.End)

	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	err := dx + dy

	for {
		ctx.SetCell(x0, y0, '·', style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
