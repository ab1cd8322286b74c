package npc

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/vmath"
)

// perceive runs the cone check and sight ray, switching to Chase on a hit
// Returns true if the player was spotted this tick
func (c *Controller) perceive() bool {
	pos := c.deps.Body.Position()
	toPlayer := vmath.V2Normalize(vmath.V2Sub(c.deps.Player.Position(), pos))

	if vmath.V2Dot(toPlayer, c.Facing()) > c.cfg.ConeThreshold {
		hit, ok := c.deps.Physics.Raycast(pos, toPlayer, c.cfg.DetectionRange, c.cfg.SightMask)
		if ok && hit.Tag == physics.TagPlayer {
			from := c.State()
			c.machine.HandleEvent(c, EventPlayerSpotted)
			c.refreshUI()
			c.logger.Info("player spotted",
				zap.Stringer("from", from),
				zap.Float64("distance", hit.Distance))
			return true
		}
	}

	c.deps.Sight.SetColor(ColorNeutral)
	return false
}

// refreshSight redraws the sight ray along the facing out to detection range
func (c *Controller) refreshSight() {
	start := c.deps.Body.Position()
	end := vmath.V2Add(start, vmath.V2Scale(c.Facing(), c.cfg.DetectionRange))
	c.deps.Sight.SetEndpoints(start, end)
}
