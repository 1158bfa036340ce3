package preset

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/stackquote/stackquote/pkg/models"
)

var (
	// ErrEmptyName is returned when a preset is saved without a name.
	ErrEmptyName = errors.New("preset name is required")
	// ErrNotFound is returned when a preset index or name does not exist.
	ErrNotFound = errors.New("preset not found")
)

// Manager holds the preset list in memory and writes the whole list back to
// its Store after every mutation. It is safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	store   Store
	presets []models.Project
}

// Open loads the stored presets and returns a Manager over them.
func Open(ctx context.Context, store Store) (*Manager, error) {
	presets, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("open presets: %w", err)
	}
	return &Manager{store: store, presets: presets}, nil
}

// List returns copies of all presets in save order.
func (m *Manager) List() []models.Project {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Project, len(m.presets))
	for i, p := range m.presets {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of presets.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.presets)
}

// Add snapshots project under name and appends it to the list. The name is
// trimmed; duplicate names are kept as separate entries.
func (m *Manager) Add(ctx context.Context, name string, project models.Project) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, ErrEmptyName
	}
	snapshot := project.Clone()
	snapshot.Name = name

	m.mu.Lock()
	defer m.mu.Unlock()

	next := append(slices.Clip(m.presets), snapshot)
	if err := m.commit(ctx, next); err != nil {
		return models.Project{}, err
	}
	return snapshot.Clone(), nil
}

// Get returns the first preset with the given name.
func (m *Manager) Get(name string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.presets, func(p models.Project) bool { return p.Name == name })
	if i < 0 {
		return models.Project{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return m.presets[i].Clone(), nil
}

// At returns the preset at index.
func (m *Manager) At(index int) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.presets) {
		return models.Project{}, fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	return m.presets[index].Clone(), nil
}

// Delete removes the preset at index.
func (m *Manager) Delete(ctx context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.presets) {
		return fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	next := slices.Delete(slices.Clone(m.presets), index, index+1)
	return m.commit(ctx, next)
}

// DeleteByName removes every preset with the given name and reports how many
// were removed.
func (m *Manager) DeleteByName(ctx context.Context, name string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(m.presets), func(p models.Project) bool { return p.Name == name })
	removed := len(m.presets) - len(next)
	if removed == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err := m.commit(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

// commit persists next and only then swaps it in, so a failed save leaves
// the in-memory list unchanged. Callers hold m.mu.
func (m *Manager) commit(ctx context.Context, next []models.Project) error {
	if err := m.store.Save(ctx, next); err != nil {
		return err
	}
	m.presets = next
	return nil
}
