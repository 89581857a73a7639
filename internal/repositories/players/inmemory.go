package players

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the player equipment
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*equipment.PlayerData
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		records: make(map[string]*equipment.PlayerData),
	}
}

// Save stores a player's full equipment state
func (r *InMemoryRepository) Save(ctx context.Context, playerID string, data *equipment.PlayerData) error {
	if playerID == "" {
		return lferr.InvalidArgument("player ID is required")
	}
	if data == nil {
		return lferr.InvalidArgument("player data cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to avoid external modifications
	r.records[playerID] = data.Clone()

	return nil
}

// Load retrieves a player's equipment state
func (r *InMemoryRepository) Load(ctx context.Context, playerID string) (*equipment.PlayerData, error) {
	if playerID == "" {
		return nil, lferr.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.records[playerID]
	if !exists {
		return nil, lferr.NotFoundf("player '%s' has no stored equipment", playerID).
			WithMeta("player_id", playerID)
	}

	return data.Clone(), nil
}

// LoadMany retrieves state for several players at once
func (r *InMemoryRepository) LoadMany(ctx context.Context, playerIDs []string) (map[string]*equipment.PlayerData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*equipment.PlayerData, len(playerIDs))
	for _, id := range playerIDs {
		if data, exists := r.records[id]; exists {
			result[id] = data.Clone()
		}
	}
	return result, nil
}

// Delete removes a player's stored state
func (r *InMemoryRepository) Delete(ctx context.Context, playerID string) error {
	if playerID == "" {
		return lferr.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, playerID)

	return nil
}

// ListPlayers returns the IDs of all players with stored state
func (r *InMemoryRepository) ListPlayers(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
