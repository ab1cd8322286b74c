package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/sentinel/config"
	"github.com/lixenwraith/sentinel/engine"
	"github.com/lixenwraith/sentinel/input"
	"github.com/lixenwraith/sentinel/npc"
	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/render"
	"github.com/lixenwraith/sentinel/scene"
)

// PlayScene is one episode: a fresh level, the NPC controller and the player
// All per-episode state is built in Enter and dropped in Exit
type PlayScene struct {
	cfg    *config.Config
	audio  npc.CuePlayer
	scenes npc.Scenes
	rand   npc.Rand
	logger *zap.Logger

	sight  *render.SightLine
	labels *render.LabelBoard

	episode   uuid.UUID
	level     *Level
	scheduler *engine.Scheduler
	npc       *npc.Controller
	player    *PlayerControl
	contacts  *physics.ContactTracker
}

// NewPlayScene wires the ports shared by every episode
// rand may be nil for the global source
func NewPlayScene(cfg *config.Config, audio npc.CuePlayer, scenes npc.Scenes, rand npc.Rand,
	sight *render.SightLine, labels *render.LabelBoard, logger *zap.Logger) *PlayScene {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlayScene{
		cfg:    cfg,
		audio:  audio,
		scenes: scenes,
		rand:   rand,
		logger: logger,
		sight:  sight,
		labels: labels,
	}
}

func (s *PlayScene) Name() string {
	return scene.Play
}

// Enter builds the level and a controller in Idle
func (s *PlayScene) Enter() error {
	s.sight.Reset()
	s.labels.Reset()

	s.episode = uuid.New()
	logger := s.logger.With(zap.String("episode", s.episode.String()))

	level := BuildLevel(s.cfg.Level)
	scheduler := engine.NewScheduler()

	deps := npc.Deps{
		Physics:   level.World,
		Body:      level.NPC,
		Player:    level.Player,
		Audio:     s.audio,
		Scenes:    s.scenes,
		Scheduler: scheduler,
		Sight:     s.sight,
		Labels:    s.labels,
		Rand:      s.rand,
	}

	ctrl, err := npc.New(s.cfg.NPC.ToControllerConfig(), deps, logger)
	if err != nil {
		return fmt.Errorf("build npc: %w", err)
	}
	ctrl.Start()

	s.level = level
	s.scheduler = scheduler
	s.npc = ctrl
	s.player = NewPlayerControl(level.Player, s.cfg.Level.PlayerSpeed, s.cfg.Level.PlayerJump)
	s.contacts = physics.NewContactTracker(level.World, level.NPC.ID(), physics.MaskOf(physics.CategoryPlayer))

	logger.Info("episode started",
		zap.Stringer("npc", level.NPC.Position()),
		zap.Stringer("player", level.Player.Position()))
	return nil
}

// Exit drops the episode; delayed actions still pending are discarded
func (s *PlayScene) Exit() {
	if s.npc != nil {
		s.logger.Info("episode ended",
			zap.String("episode", s.episode.String()),
			zap.Stringer("state", s.npc.State()),
			zap.Duration("duration", s.scheduler.Now()))
	}
	s.level = nil
	s.scheduler = nil
	s.npc = nil
	s.player = nil
	s.contacts = nil
	s.sight.Reset()
	s.labels.Reset()
}

// Update runs one tick: delayed actions, player input, bodies, contacts,
// then the controller
func (s *PlayScene) Update(dt time.Duration) {
	if s.npc == nil {
		return
	}

	s.scheduler.Tick(dt)

	s.player.Update(dt)
	s.level.Player.Step(dt)
	s.level.NPC.Step(dt)

	s.contacts.Update(func(c physics.Collider) {
		s.npc.OnCollision(c.Tag)
	})

	s.npc.Tick(dt)
}

// HandleIntent forwards movement intents to the player
func (s *PlayScene) HandleIntent(intent input.Intent) {
	if s.player != nil && intent.IsMovement() {
		s.player.Handle(intent)
	}
}

// Colliders returns a snapshot of the world for drawing
func (s *PlayScene) Colliders() []physics.Collider {
	if s.level == nil {
		return nil
	}
	return s.level.World.Colliders()
}

// Controller returns the episode's NPC controller, nil outside an episode
func (s *PlayScene) Controller() *npc.Controller {
	return s.npc
}

// Level returns the episode's level, nil outside an episode
func (s *PlayScene) Level() *Level {
	return s.level
}

// Episode returns the current episode id
func (s *PlayScene) Episode() uuid.UUID {
	return s.episode
}
