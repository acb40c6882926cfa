package engine

import (
	"sync"
	"sync/atomic"

	"github.com/athahersirnaik/json-conditions/internal/core"
	"github.com/athahersirnaik/json-conditions/internal/validation"
)

// Manager holds the current rule settings and evaluates references against
// them. Settings can be swapped at runtime; evaluations running during a
// swap keep the snapshot they started with.
type Manager struct {
	current atomic.Pointer[core.Settings]
	mu      sync.Mutex
}

// NewManager creates a Manager with the given initial settings.
func NewManager(initial *core.Settings) *Manager {
	m := &Manager{}
	m.current.Store(initial)
	return m
}

// Settings returns the settings snapshot evaluations currently use.
func (m *Manager) Settings() *core.Settings {
	return m.current.Load()
}

// Evaluate runs the current settings against the reference.
func (m *Manager) Evaluate(reference any) (*core.Report, error) {
	return Evaluate(m.current.Load(), reference)
}

// Update validates the candidate settings and swaps them in.
func (m *Manager) Update(candidate *core.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if candidate != nil {
		if err := validation.ValidateRules(candidate.Rules); err != nil {
			return err
		}
	}
	m.current.Store(candidate)
	return nil
}
