package renderer

import (
	"github.com/lixenwraith/sentinel/render"
)

// MenuRenderer centers the menu title and instructions
type MenuRenderer struct{}

func NewMenuRenderer() *MenuRenderer {
	return &MenuRenderer{}
}

func (r *MenuRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	m := frame.Menu
	if m == nil {
		return
	}

	y := (ctx.ScreenHeight - len(m.Lines) - 2) / 2
	render.DrawCentered(ctx, y, render.StyleTitle, m.Title)
	for i, line := range m.Lines {
		render.DrawCentered(ctx, y+2+i, render.StyleLabel, line)
	}
}
