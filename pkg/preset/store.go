// Package preset persists named project snapshots.
//
// Presets are stored as one serialized list. Store implementations load and
// save that list as a whole; Manager applies mutations and rewrites the list
// after each one.
package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/stackquote/stackquote/pkg/models"
)

// DefaultKey is the key the preset list is stored under.
const DefaultKey = "costCalculatorPresets"

// Store loads and saves the full preset list.
type Store interface {
	// Load returns the stored presets, or an empty list if nothing was saved yet.
	Load(ctx context.Context) ([]models.Project, error)
	// Save replaces the stored presets.
	Save(ctx context.Context, presets []models.Project) error
}

func encode(presets []models.Project) ([]byte, error) {
	if presets == nil {
		presets = []models.Project{}
	}
	data, err := json.Marshal(presets)
	if err != nil {
		return nil, fmt.Errorf("encode presets: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]models.Project, error) {
	var presets []models.Project
	if len(data) == 0 {
		return presets, nil
	}
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return presets, nil
}

// MemoryStore keeps presets in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decode(m.data)
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, presets []models.Project) error {
	data, err := encode(presets)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	return nil
}
