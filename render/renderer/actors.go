package renderer

import (
	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/render"
)

// ActorRenderer draws the player and the NPC on top of the level
type ActorRenderer struct{}

func NewActorRenderer() *ActorRenderer {
	return &ActorRenderer{}
}

func (r *ActorRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	for _, c := range frame.Colliders {
		var glyph rune
		style := render.StyleDefault
		switch c.Tag {
		case physics.TagPlayer:
			glyph, style = '@', render.StylePlayer
		case physics.TagNPC:
			glyph, style = 'Ö', render.StyleNPC
		default:
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
