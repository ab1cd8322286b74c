package game

import (
	"math"

	"github.com/lixenwraith/sentinel/config"
	"github.com/lixenwraith/sentinel/physics"
	"github.com/lixenwraith/sentinel/vmath"
)

// Actors are unit boxes
var actorSize = vmath.V2(1, 1)

// Bodies are blocked by ground and obstacles, never by each other
var bodyMask = physics.MaskOf(physics.CategoryGround, physics.CategoryObstacle)

// Level is one built play field
type Level struct {
	World  *physics.World
	Player *physics.Body
	NPC    *physics.Body
}

// BuildLevel populates a fresh world from cfg
// Ground and crates are solid; crates carry the jump tag
func BuildLevel(cfg config.LevelConfig) *Level {
	w := physics.NewWorld()

	for _, b := range cfg.Ground {
		w.Add(physics.Collider{Box: b.AABB(), Category: physics.CategoryGround, Tag: physics.TagGround, Solid: true})
	}
	for _, b := range cfg.Crates {
		w.Add(physics.Collider{Box: b.AABB(), Category: physics.CategoryObstacle, Tag: physics.TagJump, Solid: true})
	}
	for _, b := range cfg.Walls {
		w.Add(physics.Collider{Box: b.AABB(), Category: physics.CategoryObstacle, Tag: physics.TagNone, Solid: true})
	}

	playerID := w.Add(physics.Collider{
		Box:      vmath.NewAABB(cfg.PlayerStart.Vec2(), actorSize),
		Category: physics.CategoryPlayer,
		Tag:      physics.TagPlayer,
	})
	npcID := w.Add(physics.Collider{
		Box:      vmath.NewAABB(cfg.NPCStart.Vec2(), actorSize),
		Category: physics.CategoryNPC,
		Tag:      physics.TagNPC,
	})

	return &Level{
		World:  w,
		Player: physics.NewBody(w, playerID, cfg.Gravity, bodyMask),
		NPC:    physics.NewBody(w, npcID, cfg.Gravity, bodyMask),
	}
}

// Bounds returns the box enclosing every static collider and start point
func Bounds(cfg config.LevelConfig) vmath.AABB {
	min := vmath.V2(math.Inf(1), math.Inf(1))
	max := vmath.V2(math.Inf(-1), math.Inf(-1))

	grow := func(b vmath.AABB) {
		bmin, bmax := b.Min(), b.Max()
		min = vmath.V2(math.Min(min.X, bmin.X), math.Min(min.Y, bmin.Y))
		max = vmath.V2(math.Max(max.X, bmax.X), math.Max(max.Y, bmax.Y))
	}

	for _, group := range [][]config.Box{cfg.Ground, cfg.Crates, cfg.Walls} {
		for _, b := range group {
			grow(b.AABB())
		}
	}
	grow(vmath.NewAABB(cfg.PlayerStart.Vec2(), actorSize))
	grow(vmath.NewAABB(cfg.NPCStart.Vec2(), actorSize))

	size := vmath.V2Sub(max, min)
	return vmath.NewAABB(vmath.V2Add(min, vmath.V2Scale(size, 0.5)), size)
}
