package renderer

import (
	"github.com/lixenwraith/sentinel/render"
)

// StatusRenderer writes the status line on the bottom row
type StatusRenderer struct{}

func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{}
}

func (r *StatusRenderer) Render(ctx render.RenderContext, frame *render.Frame) {
	if frame.Status == "" {
		return
	}
	render.DrawText(ctx, 0, ctx.ScreenHeight-1, render.StyleStatus, frame.Status)
}

// RegisterDefaults installs every renderer at its standard priority
// Returns the sight renderer so callers can toggle it
func RegisterDefaults(o *render.RenderOrchestrator) *SightRenderer {
	sight := NewSightRenderer(true)
	o.Register(NewLevelRenderer(), render.PriorityLevel)
	o.Register(sight, render.PrioritySight)
	o.Register(NewActorRenderer(), render.PriorityActors)
	o.Register(NewLabelRenderer(), render.PriorityUI)
	o.Register(NewMenuRenderer(), render.PriorityOverlay)
	o.Register(NewStatusRenderer(), render.PriorityDebug)
	return sight
}
