package npc

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/scene"
)

// OnCollision resolves contact with another collider
// Player contact plays the collision cue now and requests the outcome scene
// after SceneLoadDelay: defeat when chasing, victory otherwise
func (c *Controller) OnCollision(tag physics.Tag) {
	if tag != physics.TagPlayer {
		return
	}

	c.deps.Audio.Play(c.cfg.Cues.Collision)

	outcome := c.cfg.VictoryScene
	if c.State() == StateChase {
		outcome = c.cfg.DefeatScene
	}

	c.logger.Info("player contact",
		zap.Stringer("state", c.State()),
		zap.String("scene", outcome),
		zap.Duration("delay", c.cfg.SceneLoadDelay))

	scene.LoadAfter(c.deps.Scenes, c.deps.Scheduler, outcome, c.cfg.SceneLoadDelay)
}
