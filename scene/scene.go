package scene

import (
	"errors"
	"time"
)

// Scene names
const (
	Start   = "Start"
	Play    = "Play"
	Victory = "Victory"
	Defeat  = "Defeat"
)

var (
	ErrUnknownScene   = errors.New("unknown scene")
	ErrDuplicateScene = errors.New("scene already registered")
	ErrNoScene        = errors.New("no scene requested")
)

// Scene is a loadable unit of the game
// Enter builds scene state, Exit drops it; a scene may be entered again later
type Scene interface {
	Name() string
	Enter() error
	Exit()
	Update(dt time.Duration)
}

// Requester accepts fire-and-forget load requests
type Requester interface {
	RequestLoad(name string)
}

// Deferrer runs fn once delay of game time has passed
type Deferrer interface {
	After(delay time.Duration, fn func())
}

// LoadAfter requests name from scenes once delay has passed on clock
// The request is dropped with clock, so a scene owning clock cancels it on exit
func LoadAfter(scenes Requester, clock Deferrer, name string, delay time.Duration) {
	clock.After(delay, func() {
		scenes.RequestLoad(name)
	})
}

// Loader maps menu actions onto scene loads
type Loader struct {
	scenes Requester
}

// NewLoader creates a loader requesting loads from scenes
func NewLoader(scenes Requester) *Loader {
	return &Loader{scenes: scenes}
}

// LoadPlay starts a new play episode
func (l *Loader) LoadPlay() {
	l.scenes.RequestLoad(Play)
}

// Restart returns to the start menu
func (l *Loader) Restart() {
	l.scenes.RequestLoad(Start)
}
