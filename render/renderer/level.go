package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/render"
)

// LevelRenderer fills static colliders: ground, crates and walls
type LevelRenderer struct{}

func NewLevelRenderer() *LevelRenderer {
	return &LevelRenderer{}
}

func (r *LevelRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	for _, c := range frame.Colliders {
		glyph, style, ok := levelGlyph(c)
		if !ok {
			continue
		}
		x0, y0, x1, y1 := ctx.CellRect(c.Box)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				ctx.SetCell(x, y, glyph, style)
			}
		}
	}
}

func levelGlyph(c physics.Collider) (rune, tcell.Style, bool) {
	switch {
	case c.Tag == physics.TagGround:
		return '▀', render.StyleGround, true
	case c.Tag == physics.TagJump:
		return '▒', render.StyleCrate, true
	case c.Category == physics.CategoryObstacle:
		return '█', render.StyleWall, true
	default:
		return 0, render.StyleDefault, false
	}
}
