package npc

import "github.com/lixenwraith/sentinel/engine/fsm"

// State is the active behavior of the NPC
type State int

const (
	StateIdle State = iota + 1
	StatePatrol
	StateChase
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePatrol:
		return "Patrol"
	case StateChase:
		return "Chase"
	default:
		return "Unknown"
	}
}

func (s State) id() fsm.StateID {
	return fsm.StateID(s)
}

// Machine events
const (
	EventToggle        fsm.EventType = iota + 1 // Idle <-> Patrol
	EventPlayerSpotted                          // Idle/Patrol -> Chase
)
