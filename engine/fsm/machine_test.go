package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stateA StateID = iota + 1
	stateB
	stateC
)

const (
	eventGo EventType = iota + 1
	eventJump
)

type recorder struct {
	log   []string
	allow bool
}

func record(msg string) Action[*recorder] {
	return Action[*recorder]{
		Func: func(r *recorder, args any) { r.log = append(r.log, args.(string)) },
		Args: msg,
	}
}

func newTestMachine() *Machine[*recorder] {
	m := NewMachine[*recorder]()

	a := m.AddState(stateA, "A")
	a.OnEnter = []Action[*recorder]{record("enter A")}
	a.OnExit = []Action[*recorder]{record("exit A")}

	b := m.AddState(stateB, "B")
	b.OnEnter = []Action[*recorder]{record("enter B")}
	b.OnUpdate = []Action[*recorder]{record("update B")}

	m.AddState(stateC, "C")

	m.AddTransition(stateA, Transition[*recorder]{
		TargetID: stateB,
		Event:    eventGo,
		Actions:  []Action[*recorder]{record("A->B")},
	})
	m.AddTransition(stateB, Transition[*recorder]{TargetID: stateA, Event: eventGo})
	m.AddTransition(stateA, Transition[*recorder]{
		TargetID: stateC,
		Event:    eventJump,
		Guard:    func(r *recorder) bool { return r.allow },
	})
	return m
}

func TestMachine_InitEntersFirstState(t *testing.T) {
	m := newTestMachine()
	r := &recorder{}

	require.NoError(t, m.Init(r))
	assert.Equal(t, stateA, m.Active())
	assert.Equal(t, []string{"enter A"}, r.log)
}

func TestMachine_TransitionActionOrder(t *testing.T) {
	m := newTestMachine()
	r := &recorder{}
	require.NoError(t, m.Init(r))

	var observed []StateID
	m.OnTransition(func(from, to StateID, event EventType) {
		assert.Equal(t, eventGo, event)
		observed = append(observed, from, to)
	})

	assert.True(t, m.HandleEvent(r, eventGo))
	assert.Equal(t, stateB, m.Active())
	assert.Equal(t, []string{"enter A", "exit A", "A->B", "enter B"}, r.log)
	assert.Equal(t, []StateID{stateA, stateB}, observed)
}

func TestMachine_GuardBlocks(t *testing.T) {
	m := newTestMachine()
	r := &recorder{}
	require.NoError(t, m.Init(r))

	assert.False(t, m.HandleEvent(r, eventJump))
	assert.Equal(t, stateA, m.Active())

	r.allow = true
	assert.True(t, m.HandleEvent(r, eventJump))
	assert.Equal(t, stateC, m.Active())

	// C has no outgoing transitions
	assert.False(t, m.HandleEvent(r, eventGo))
	assert.Equal(t, stateC, m.Active())
}

func TestMachine_UpdateTracksTimeInState(t *testing.T) {
	m := newTestMachine()
	r := &recorder{}
	require.NoError(t, m.Init(r))

	m.Update(r, 100*time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, m.TimeInState())

	m.HandleEvent(r, eventGo)
	assert.Equal(t, time.Duration(0), m.TimeInState())

	m.Update(r, 50*time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, m.TimeInState())
	assert.Contains(t, r.log, "update B")
}

func TestMachine_TickTransition(t *testing.T) {
	m := NewMachine[*recorder]()
	m.AddState(stateA, "A")
	m.AddState(stateB, "B")
	m.AddTransition(stateA, Transition[*recorder]{
		TargetID: stateB,
		Guard:    func(*recorder) bool { return m.TimeInState() >= time.Second },
	})

	r := &recorder{}
	require.NoError(t, m.Init(r))

	m.Update(r, 500*time.Millisecond)
	assert.Equal(t, stateA, m.Active())
	m.Update(r, 500*time.Millisecond)
	assert.Equal(t, stateB, m.Active())
}

func TestMachine_ValidateRejectsBadGraph(t *testing.T) {
	empty := NewMachine[*recorder]()
	assert.ErrorIs(t, empty.Init(&recorder{}), ErrNoStates)

	m := NewMachine[*recorder]()
	m.AddState(stateA, "A")
	m.AddTransition(stateA, Transition[*recorder]{TargetID: stateC, Event: eventGo})
	assert.ErrorIs(t, m.Validate(), ErrUnknownState)

	dup := NewMachine[*recorder]()
	dup.AddState(stateA, "A")
	dup.AddState(stateA, "A again")
	assert.ErrorIs(t, dup.Validate(), ErrDuplicateNode)
}
