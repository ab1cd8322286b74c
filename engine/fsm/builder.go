package fsm

import (
	"errors"
	"fmt"
)

var (
	ErrNoStates      = errors.New("fsm has no states")
	ErrUnknownState  = errors.New("unknown state")
	ErrDuplicateNode = errors.New("duplicate state")
)

// AddState adds a node to the machine, the first added state becomes the initial one
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	if _, exists := m.nodes[id]; exists {
		m.buildErr = errors.Join(m.buildErr, fmt.Errorf("%w: %d (%s)", ErrDuplicateNode, id, name))
	}
	m.nodes[id] = node
	if m.initial == StateNone {
		m.initial = id
	}
	return node
}

// AddTransition adds a transition to a specific node, unknown sources are ignored
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// Validate checks the graph: initial state and every transition target must exist
func (m *Machine[T]) Validate() error {
	if len(m.nodes) == 0 {
		return ErrNoStates
	}
	if m.buildErr != nil {
		return m.buildErr
	}
	if _, ok := m.nodes[m.initial]; !ok {
		return fmt.Errorf("initial %w: %d", ErrUnknownState, m.initial)
	}
	for id, node := range m.nodes {
		for _, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state %d (%s) transition target %w: %d", id, node.Name, ErrUnknownState, t.TargetID)
			}
		}
	}
	return nil
}
