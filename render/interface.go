package render

// SystemRenderer draws one layer of a frame
type SystemRenderer interface {
	Render(ctx RenderContext, frame *Frame)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
