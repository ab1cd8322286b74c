package renderer

import (
	"github.com/lixenwraith/sentinel/npc"
	"github.com/lixenwraith/sentinel/render"
)

// LabelRenderer draws the state descriptions top-left and the countdown top-right
type LabelRenderer struct{}

func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{}
}

func (r *LabelRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	b := frame.Labels
	if b == nil {
		return
	}

	y := 0
	for _, id := range []npc.LabelID{npc.LabelIdle, npc.LabelPatrol, npc.LabelChase} {
		text := b.Text(id)
		if text == "" {
			continue
		}
		style := render.StyleLabel
		if b.Active(id) {
			style = render.StyleLabelActive
		}
		y += render.DrawLines(ctx, 1, y, style, text)
	}

	if countdown := b.Text(npc.LabelCountdown); countdown != "" {
		x := ctx.ScreenWidth - render.TextWidth(countdown) - 1
		render.DrawText(ctx, x, 0, render.StyleLabel, countdown)
	}
}
