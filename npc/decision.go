package npc

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/sentinel/audio"
	"github.com/lixenwraith/sentinel/engine/fsm"
)

// coinFlip is the probability threshold of a random toggle
const coinFlip = 0.5

// decide runs one decision attempt: forced toggle every ForcedSwitchAfter
// attempts, otherwise a coin flip. The timer restarts either way
func (c *Controller) decide() {
	from := c.State()
	c.decisions++

	forced := c.decisions >= c.cfg.ForcedSwitchAfter
	switched := false
	if forced {
		c.decisions = 0
		switched = c.machine.HandleEvent(c, EventToggle)
	} else if c.deps.Rand.Float64() > coinFlip {
		switched = c.machine.HandleEvent(c, EventToggle)
	}

	c.timer = c.cfg.DecisionInterval
	c.refreshUI()

	c.logger.Debug("decision attempt",
		zap.Bool("forced", forced),
		zap.Bool("switched", switched),
		zap.Int("attempt", c.decisions),
		zap.Stringer("from", from),
		zap.Stringer("to", c.State()))
}

// playCue is the transition action emitting a direction-keyed cue
func playCue(cue audio.Cue) fsm.Action[*Controller] {
	return fsm.Action[*Controller]{
		Func: func(c *Controller, args any) {
			c.deps.Audio.Play(args.(audio.Cue))
		},
		Args: cue,
	}
}
