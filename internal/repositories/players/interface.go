package players

//go:generate mockgen -destination=mock/mock.go -package=mockplayers -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
)

// Repository defines the interface for player equipment persistence
type Repository interface {
	// Save stores a player's full equipment state, overwriting any previous state
	Save(ctx context.Context, playerID string, data *equipment.PlayerData) error

	// Load retrieves a player's equipment state. Returns a NotFound error when
	// the player has no stored state.
	Load(ctx context.Context, playerID string) (*equipment.PlayerData, error)

	// LoadMany retrieves state for several players at once. Players with no
	// stored state are omitted from the result.
	LoadMany(ctx context.Context, playerIDs []string) (map[string]*equipment.PlayerData, error)

	// Delete removes a player's stored state
	Delete(ctx context.Context, playerID string) error

	// ListPlayers returns the IDs of all players with stored state
	ListPlayers(ctx context.Context) ([]string, error)
}
