package scene

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Manager owns the registered scenes and switches between them at frame
// boundaries. Not safe for concurrent use: call from the loop goroutine
type Manager struct {
	logger *zap.Logger

	scenes map[string]Scene
	active Scene

	pending    string
	hasPending bool

	onChange func(from, to string)
}

// NewManager creates a manager with no active scene
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		logger: logger.With(zap.String("component", "scene")),
		scenes: make(map[string]Scene),
	}
}

// Register adds a scene under its name
func (m *Manager) Register(s Scene) error {
	name := s.Name()
	if _, exists := m.scenes[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScene, name)
	}
	m.scenes[name] = s
	return nil
}

// OnChange registers an observer called after each successful switch
func (m *Manager) OnChange(fn func(from, to string)) {
	m.onChange = fn
}

// RequestLoad records a load applied at the next frame boundary
// A later request in the same frame replaces an earlier one
func (m *Manager) RequestLoad(name string) {
	if m.hasPending && m.pending != name {
		m.logger.Debug("scene request replaced",
			zap.String("previous", m.pending),
			zap.String("scene", name))
	}
	m.pending = name
	m.hasPending = true
}

// Pending returns the requested scene not yet applied
func (m *Manager) Pending() (string, bool) {
	return m.pending, m.hasPending
}

// Update advances the active scene, then applies any pending request
func (m *Manager) Update(dt time.Duration) error {
	if m.active != nil {
		m.active.Update(dt)
	}
	return m.Apply()
}

// Apply performs the pending switch: exit the active scene, enter the new one
// Unknown names are rejected and the active scene is kept
func (m *Manager) Apply() error {
	if !m.hasPending {
		return nil
	}
	name := m.pending
	m.pending, m.hasPending = "", false

	next, ok := m.scenes[name]
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownScene, name)
		m.logger.Error("scene load rejected", zap.Error(err))
		return err
	}

	prev := m.active
	from := ""
	if prev != nil {
		from = prev.Name()
		prev.Exit()
	}

	if err := next.Enter(); err != nil {
		m.active = nil
		m.logger.Error("scene enter failed", zap.String("scene", name), zap.Error(err))
		if prev != nil {
			if rerr := prev.Enter(); rerr == nil {
				m.active = prev
			}
		}
		return fmt.Errorf("enter scene %s: %w", name, err)
	}

	m.active = next
	m.logger.Info("scene loaded", zap.String("from", from), zap.String("scene", name))
	if m.onChange != nil {
		m.onChange(from, name)
	}
	return nil
}

// Load requests name and applies it immediately
func (m *Manager) Load(name string) error {
	m.RequestLoad(name)
	return m.Apply()
}

// Active returns the active scene, nil before the first load
func (m *Manager) Active() Scene {
	return m.active
}

// ActiveName returns the active scene name, empty before the first load
func (m *Manager) ActiveName() string {
	if m.active == nil {
		return ""
	}
	return m.active.Name()
}

// Shutdown exits the active scene and drops any pending request
func (m *Manager) Shutdown() {
	m.pending, m.hasPending = "", false
	if m.active != nil {
		m.active.Exit()
		m.active = nil
	}
}
