package physics

// Category is a single collision category bit
type Category uint32

const (
	CategoryGround Category = 1 << iota
	CategoryObstacle
	CategoryNPC
	CategoryPlayer
)

// Mask selects a set of categories for queries
type Mask uint32

const (
	MaskNone Mask = 0
	MaskAll  Mask = ^Mask(0)
)

// MaskOf builds a mask from categories
func MaskOf(cats ...Category) Mask {
	var m Mask
	for _, c := range cats {
		m |= Mask(c)
	}
	return m
}

// Has reports whether category c is selected by the mask
func (m Mask) Has(c Category) bool {
	return m&Mask(c) != 0
}

// Without clears categories from the mask
func (m Mask) Without(cats ...Category) Mask {
	return m &^ MaskOf(cats...)
}

// Tag classifies a collider for gameplay reactions, independent of category
type Tag uint8

const (
	TagNone Tag = iota
	TagGround
	TagJump // obstacle the NPC jumps over when probed
	TagPlayer
	TagNPC
)

func (t Tag) String() string {
	switch t {
	case TagGround:
		return "ground"
	case TagJump:
		return "jump"
	case TagPlayer:
		return "player"
	case TagNPC:
		return "npc"
	default:
		return "none"
	}
}
