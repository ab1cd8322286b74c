package game

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sentinel/config"
	"github.com/lixenwraith/sentinel/input"
	"github.com/lixenwraith/sentinel/npc"
	"github.com/lixenwraith/sentinel/render"
	"github.com/lixenwraith/sentinel/scene"
	"github.com/lixenwraith/sentinel/vmath"
)

// Game owns the scenes and routes intents to the active one
// Not safe for concurrent use: call from the loop goroutine
type Game struct {
	logger *zap.Logger

	scenes *scene.Manager
	loader *scene.Loader
	play   *PlayScene

	sight  *render.SightLine
	labels *render.LabelBoard
	origin vmath.Vec2

	paused bool
	muted  bool
}

// Option configures a Game
type Option func(*options)

type options struct {
	rand npc.Rand
}

// WithRand replaces the random source of the decision coin flips
func WithRand(r npc.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// New registers the play and menu scenes; call Start to show the first one
func New(cfg *config.Config, audio npc.CuePlayer, logger *zap.Logger, opts ...Option) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g := &Game{
		logger: logger,
		scenes: scene.NewManager(logger),
		sight:  &render.SightLine{},
		labels: &render.LabelBoard{},
	}
	g.loader = scene.NewLoader(g.scenes)

	// Leave the bottom row to the status line
	bounds := Bounds(cfg.Level)
	g.origin = vmath.V2(bounds.Min().X, bounds.Min().Y-1)

	g.play = NewPlayScene(cfg, audio, g.scenes, o.rand, g.sight, g.labels, logger)
	if err := g.scenes.Register(g.play); err != nil {
		return nil, err
	}
	for _, m := range defaultMenus() {
		if err := g.scenes.Register(m); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Start loads the start menu
func (g *Game) Start() error {
	if err := g.scenes.Load(scene.Start); err != nil {
		return fmt.Errorf("load start scene: %w", err)
	}
	return nil
}

// Update advances the active scene and applies pending scene loads
func (g *Game) Update(dt time.Duration) error {
	return g.scenes.Update(dt)
}

// HandleIntent routes a game intent to the active scene
// System intents (quit, pause, mute, sight) belong to the caller
func (g *Game) HandleIntent(intent input.Intent) {
	switch g.scenes.ActiveName() {
	case scene.Start:
		if intent == input.IntentConfirm {
			g.loader.LoadPlay()
		}
	case scene.Victory, scene.Defeat:
		if intent == input.IntentRestart || intent == input.IntentConfirm {
			g.loader.Restart()
		}
	case scene.Play:
		if intent == input.IntentRestart {
			g.loader.Restart()
			return
		}
		g.play.HandleIntent(intent)
	}
}

// SetPaused marks the status line paused
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// SetMuted marks the status line muted
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
}

// Scene returns the active scene name
func (g *Game) Scene() string {
	return g.scenes.ActiveName()
}

// Play returns the play scene
func (g *Game) Play() *PlayScene {
	return g.play
}

// Shutdown exits the active scene
func (g *Game) Shutdown() {
	g.scenes.Shutdown()
}

// Frame snapshots the active scene for drawing
func (g *Game) Frame() *render.Frame {
	f := &render.Frame{
		Scene:  g.scenes.ActiveName(),
		Origin: g.origin,
		Status: g.status(),
	}

	switch s := g.scenes.Active().(type) {
	case *PlayScene:
		f.Colliders = s.Colliders()
		f.Sight = g.sight
		f.Labels = g.labels
	case *MenuScene:
		m := s.Menu()
		f.Menu = &m
	}
	return f
}

func (g *Game) status() string {
	parts := []string{g.scenes.ActiveName()}
	if g.paused {
		parts = append(parts, "PAUSED")
	}
	if g.muted {
		parts = append(parts, "MUTED")
	}
	return strings.Join(parts, " | ")
}
