package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// OnTransition registers an observer called after every transition
func (m *Machine[T]) OnTransition(fn func(from, to StateID, event EventType)) {
	m.onTransition = fn
}

// Init validates the graph and enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	if err := m.Validate(); err != nil {
		return err
	}

	m.activeStateID = m.initial
	m.timeInState = 0
	runActions(ctx, m.nodes[m.initial].OnEnter)
	return nil
}

// Update advances time in state, runs OnUpdate and evaluates tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	node := m.nodes[m.activeStateID]
	runActions(ctx, node.OnUpdate)

	for _, trans := range node.Transitions {
		if trans.Event == EventTick && (trans.Guard == nil || trans.Guard(ctx)) {
			m.transition(ctx, trans, EventTick)
			return
		}
	}
}

// HandleEvent fires the first matching transition of the active state
// Returns true if a transition happened
func (m *Machine[T]) HandleEvent(ctx T, event EventType) bool {
	if m.activeStateID == StateNone || event == EventTick {
		return false
	}

	node := m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event == event && (trans.Guard == nil || trans.Guard(ctx)) {
			m.transition(ctx, trans, event)
			return true
		}
	}
	return false
}

// transition runs source exit, transition actions and target enter
func (m *Machine[T]) transition(ctx T, trans Transition[T], event EventType) {
	target, ok := m.nodes[trans.TargetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", trans.TargetID))
	}

	from := m.activeStateID
	runActions(ctx, m.nodes[from].OnExit)

	m.activeStateID = target.ID
	m.timeInState = 0

	runActions(ctx, trans.Actions)
	runActions(ctx, target.OnEnter)

	if m.onTransition != nil {
		m.onTransition(from, target.ID, event)
	}
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// Active returns the current state ID
func (m *Machine[T]) Active() StateID {
	return m.activeStateID
}

// TimeInState returns the time spent in the current state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

