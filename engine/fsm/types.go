package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// EventType identifies an external trigger routed through HandleEvent
type EventType int

// EventTick is reserved for automatic transitions evaluated by Update
const EventTick EventType = 0

// Machine is a flat event-driven finite state machine
// T is the context type passed to actions and guards (e.g., *npc.Controller)
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes   map[StateID]*Node[T]
	initial StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration

	// Observer called after every completed transition
	onTransition func(from, to StateID, event EventType)

	// Accumulated graph construction errors, reported by Validate
	buildErr error
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation priority order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // EventTick = auto-transition
	Guard    GuardFunc[T] // nil = always true
	Actions  []Action[T]  // run between source exit and target enter
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)
