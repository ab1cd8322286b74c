package render

import (
	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/vmath"
)

// Menu is a centered title with instruction lines
type Menu struct {
	Title string
	Lines []string
}

// Frame is everything drawn in one refresh, built by the game on the loop goroutine
type Frame struct {
	Scene  string
	Origin vmath.Vec2 // world point at the bottom-left cell

	Colliders []physics.Collider
	Sight     *SightLine
	Labels    *LabelBoard
	Menu      *Menu
	Status    string
}
