package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sentinel/vmath"
)

// Cells per world unit; terminal cells are about twice as tall as wide
const (
	CellsPerUnitX = 2.0
	CellsPerUnitY = 1.0
)

// RenderContext provides screen and viewport state for renderers, passed by value
type RenderContext struct {
	Screen tcell.Screen

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// World point drawn at the bottom-left cell of the screen
	OriginX float64
	OriginY float64
}

// NewRenderContext sizes the context from the screen, with the world
// origin placed at the bottom-left corner
func NewRenderContext(screen tcell.Screen, origin vmath.Vec2) RenderContext {
	w, h := screen.Size()
	return RenderContext{
		Screen:       screen,
		ScreenWidth:  w,
		ScreenHeight: h,
		OriginX:      origin.X,
		OriginY:      origin.Y,
	}
}

// WorldToCell maps a world point to a screen cell, Y up
func (c RenderContext) WorldToCell(p vmath.Vec2) (x, y int) {
	x = int(math.Floor((p.X - c.OriginX) * CellsPerUnitX))
	y = c.ScreenHeight - 1 - int(math.Floor((p.Y-c.OriginY)*CellsPerUnitY))
	return x, y
}

// CellRect returns the cell bounds covered by a box, inclusive min, exclusive max
func (c RenderContext) CellRect(box vmath.AABB) (x0, y0, x1, y1 int) {
	min, max := box.Min(), box.Max()
	x0 = int(math.Round((min.X - c.OriginX) * CellsPerUnitX))
	x1 = int(math.Round((max.X - c.OriginX) * CellsPerUnitX))
	y0 = c.ScreenHeight - int(math.Round((max.Y-c.OriginY)*CellsPerUnitY))
	y1 = c.ScreenHeight - int(math.Round((min.Y-c.OriginY)*CellsPerUnitY))
	return x0, y0, x1, y1
}

// InBounds reports whether a cell lies on screen
func (c RenderContext) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.ScreenWidth && y < c.ScreenHeight
}

// SetCell draws one rune if the cell is on screen
func (c RenderContext) SetCell(x, y int, r rune, style tcell.Style) {
	if c.InBounds(x, y) {
		c.Screen.SetContent(x, y, r, nil, style)
	}
}
