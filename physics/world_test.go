package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sentinel/vmath"
)

// newTestWorld builds ground (top at y=0), a jump crate at x=4 and a player at x=8
func newTestWorld(t *testing.T) (*World, map[string]ColliderID) {
	t.Helper()
	w := NewWorld()
	ids := map[string]ColliderID{
		"ground": w.Add(Collider{Box: vmath.NewAABB(vmath.V2(0, -0.5), vmath.V2(40, 1)), Category: CategoryGround, Tag: TagGround, Solid: true}),
		"crate":  w.Add(Collider{Box: vmath.NewAABB(vmath.V2(4, 0.5), vmath.V2(1, 1)), Category: CategoryObstacle, Tag: TagJump, Solid: true}),
		"player": w.Add(Collider{Box: vmath.NewAABB(vmath.V2(8, 0.5), vmath.V2(1, 1)), Category: CategoryPlayer, Tag: TagPlayer}),
		"npc":    w.Add(Collider{Box: vmath.NewAABB(vmath.V2(0, 0.5), vmath.V2(1, 1)), Category: CategoryNPC, Tag: TagNPC}),
	}
	return w, ids
}

func TestWorldRaycast_NearestHit(t *testing.T) {
	w, ids := newTestWorld(t)

	hit, ok := w.Raycast(vmath.V2(0, 0.5), vmath.V2Right, 20, MaskAll.Without(CategoryNPC, CategoryGround))
	require.True(t, ok)
	assert.Equal(t, ids["crate"], hit.ID)
	assert.Equal(t, TagJump, hit.Tag)
	assert.InDelta(t, 3.5, hit.Distance, 1e-9)
	assert.InDelta(t, 3.5, hit.Point.X, 1e-9)
}

func TestWorldRaycast_MaskFiltersCategories(t *testing.T) {
	w, ids := newTestWorld(t)

	// Only the player category is visible, crate is skipped
	hit, ok := w.Raycast(vmath.V2(0, 0.5), vmath.V2Right, 20, MaskOf(CategoryPlayer))
	require.True(t, ok)
	assert.Equal(t, ids["player"], hit.ID)

	// Origin inside own collider is reported when not masked out
	hit, ok = w.Raycast(vmath.V2(0, 0.5), vmath.V2Right, 20, MaskOf(CategoryNPC))
	require.True(t, ok)
	assert.Equal(t, ids["npc"], hit.ID)
	assert.Zero(t, hit.Distance)
}

func TestWorldRaycast_RangeAndZeroDirection(t *testing.T) {
	w, _ := newTestWorld(t)

	_, ok := w.Raycast(vmath.V2(0, 0.5), vmath.V2Right, 3, MaskOf(CategoryObstacle))
	assert.False(t, ok, "crate starts at 3.5")

	_, ok = w.Raycast(vmath.V2(0, 0.5), vmath.Vec2{}, 10, MaskAll)
	assert.False(t, ok)
}

func TestWorldBoxCast(t *testing.T) {
	w, ids := newTestWorld(t)

	// 0.5 box swept from x=3 toward the crate face at 3.5: edge reaches it after 0.25
	hit, ok := w.BoxCast(vmath.V2(3, 0.5), vmath.V2(0.5, 0.5), vmath.V2Right, 0.3, MaskOf(CategoryObstacle))
	require.True(t, ok)
	assert.Equal(t, ids["crate"], hit.ID)
	assert.InDelta(t, 0.25, hit.Distance, 1e-9)

	_, ok = w.BoxCast(vmath.V2(3, 0.5), vmath.V2(0.5, 0.5), vmath.V2Right, 0.1, MaskOf(CategoryObstacle))
	assert.False(t, ok)

	_, ok = w.BoxCast(vmath.V2(3, 0.5), vmath.V2(0.5, 0.5), vmath.V2Left, 1, MaskOf(CategoryObstacle))
	assert.False(t, ok)
}

func TestWorldOverlapCircle(t *testing.T) {
	w, _ := newTestWorld(t)

	assert.True(t, w.OverlapCircle(vmath.V2(-2, 0.1), 0.2, MaskOf(CategoryGround)))
	assert.False(t, w.OverlapCircle(vmath.V2(-2, 1.0), 0.2, MaskOf(CategoryGround)))
	assert.False(t, w.OverlapCircle(vmath.V2(-2, 0.1), 0.2, MaskOf(CategoryPlayer)))
}

func TestWorldRemove(t *testing.T) {
	w, ids := newTestWorld(t)

	w.Remove(ids["crate"])
	_, ok := w.Get(ids["crate"])
	assert.False(t, ok)
	assert.Len(t, w.Colliders(), 3)

	hit, ok := w.Raycast(vmath.V2(0, 0.5), vmath.V2Right, 20, MaskAll.Without(CategoryNPC, CategoryGround))
	require.True(t, ok)
	assert.Equal(t, ids["player"], hit.ID)

	// Removing twice is a no-op
	w.Remove(ids["crate"])
	assert.Len(t, w.Colliders(), 3)
}

func TestMask(t *testing.T) {
	m := MaskOf(CategoryGround, CategoryObstacle)
	assert.True(t, m.Has(CategoryGround))
	assert.False(t, m.Has(CategoryNPC))
	assert.False(t, MaskAll.Without(CategoryNPC).Has(CategoryNPC))
	assert.True(t, MaskAll.Without(CategoryNPC).Has(CategoryPlayer))
	assert.Equal(t, "jump", TagJump.String())
}
