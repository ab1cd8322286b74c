package physics

// ContactTracker reports contact-enter events between one collider and a mask
// A contact fires once when overlap begins and re-arms after separation
type ContactTracker struct {
	world    *World
	self     ColliderID
	mask     Mask
	touching map[ColliderID]struct{}
}

// NewContactTracker watches collider self against colliders selected by mask
func NewContactTracker(w *World, self ColliderID, mask Mask) *ContactTracker {
	return &ContactTracker{
		world:    w,
		self:     self,
		mask:     mask,
		touching: make(map[ColliderID]struct{}),
	}
}

// Update recomputes overlaps and calls onEnter for each new contact
func (ct *ContactTracker) Update(onEnter func(Collider)) {
	current := ct.world.Overlapping(ct.self, ct.mask)

	seen := make(map[ColliderID]struct{}, len(current))
	for _, id := range current {
		seen[id] = struct{}{}
		if _, was := ct.touching[id]; was {
			continue
		}
		if c, ok := ct.world.Get(id); ok {
			onEnter(c)
		}
	}
	ct.touching = seen
}
