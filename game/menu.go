package game

import (
	"time"

	"github.com/lixenwraith/sentinel/render"
	"github.com/lixenwraith/sentinel/scene"
)

// MenuScene is a static screen waiting for a confirm or restart key
type MenuScene struct {
	name string
	menu render.Menu
}

func NewMenuScene(name string, menu render.Menu) *MenuScene {
	return &MenuScene{name: name, menu: menu}
}

func (m *MenuScene) Name() string            { return m.name }
func (m *MenuScene) Enter() error            { return nil }
func (m *MenuScene) Exit()                   {}
func (m *MenuScene) Update(dt time.Duration) {}

// Menu returns the text to draw
func (m *MenuScene) Menu() render.Menu {
	return m.menu
}

// defaultMenus are the start and outcome screens
func defaultMenus() []*MenuScene {
	return []*MenuScene{
		NewMenuScene(scene.Start, render.Menu{
			Title: "SENTINEL",
			Lines: []string{
				"Reach the sentinel without being seen",
				"",
				"Left/Right or A/D move, Up/W/Space jump",
				"P pause, M mute, V sight line, Esc quit",
				"",
				"Press Enter to play",
			},
		}),
		NewMenuScene(scene.Victory, render.Menu{
			Title: "VICTORY",
			Lines: []string{"You caught the sentinel off guard", "", "Press R to restart"},
		}),
		NewMenuScene(scene.Defeat, render.Menu{
			Title: "DEFEAT",
			Lines: []string{"The sentinel caught you", "", "Press R to restart"},
		}),
	}
}
