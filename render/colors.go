package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sentinel/npc"
)

// Palette
var (
	StyleDefault = tcell.StyleDefault
	StyleGround  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleCrate   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(181, 137, 84))
	StyleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	StyleNPC     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	StyleLabel       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleLabelActive = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleTitle       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleStatus      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// SightStyle maps the controller's sight colour to a terminal style
func SightStyle(c npc.Color) tcell.Style {
	switch c {
	case npc.ColorNeutral:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}
