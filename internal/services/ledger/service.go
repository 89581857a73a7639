package ledger

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
	"github.com/KirkDiggler/loot-forge/internal/events"
	"github.com/KirkDiggler/loot-forge/internal/repositories/players"
	"github.com/KirkDiggler/loot-forge/internal/services/currency"
	"github.com/KirkDiggler/loot-forge/internal/services/generator"
	"github.com/KirkDiggler/loot-forge/internal/services/stats"
)

// Service owns live player equipment state and coordinates generation,
// crafting, persistence, and client notification
type Service interface {
	// CreatePlayer loads a player's stored state or initializes a fresh one
	// with starting currency
	CreatePlayer(ctx context.Context, playerID string) error

	// RemovePlayer drops a player from the live ledger and deletes stored
	// state
	RemovePlayer(ctx context.Context, playerID string) error

	// RestoreAll loads every stored player into the live ledger
	RestoreAll(ctx context.Context) error

	// GetPlayerData returns a copy of a player's current state
	GetPlayerData(ctx context.Context, playerID string) (*equipment.PlayerData, error)

	// Equip moves an inventory item into an equip slot, swapping out any
	// occupant
	Equip(ctx context.Context, playerID, itemID string, slot shared.Slot) error

	// Unequip moves an equipped item back into the inventory
	Unequip(ctx context.Context, playerID string, slot shared.Slot) error

	// Discard permanently removes an inventory item
	Discard(ctx context.Context, playerID, itemID string) error

	// AddToInventory places an item into a player's inventory
	AddToInventory(ctx context.Context, playerID string, item *equipment.Item) error

	// AddCurrency grants currency to a player
	AddCurrency(ctx context.Context, playerID string, cur shared.Currency, amount int) error

	// UseCurrency spends one orb on an inventory item
	UseCurrency(ctx context.Context, playerID string, cur shared.Currency, itemID string) error

	// DropForPlayer generates a random drop for the given monster level and
	// adds it to the player's inventory
	DropForPlayer(ctx context.Context, playerID string, monsterLevel int) (*equipment.Item, error)

	// TotalStats aggregates the player's equipped items
	TotalStats(ctx context.Context, playerID string) (*stats.Bundle, error)

	// PublishState pushes the player's current snapshot and stats to clients
	PublishState(ctx context.Context, playerID string) error
}

type service struct {
	repo      players.Repository
	generator generator.Service
	currency  currency.Service
	bus       *events.Bus

	maxInventory     int
	startingCurrency map[shared.Currency]int

	mu    sync.Mutex
	state map[string]*equipment.PlayerData
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository players.Repository
	Generator  generator.Service
	Currency   currency.Service
	Bus        *events.Bus // Optional - nil disables client notification

	MaxInventory     int // Optional - defaults to 60
	StartingCurrency map[shared.Currency]int
}

// NewService creates a new equipment ledger service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig is required")
	}
	if cfg.Repository == nil || cfg.Generator == nil || cfg.Currency == nil {
		panic("Repository, Generator, and Currency are required")
	}

	maxInventory := cfg.MaxInventory
	if maxInventory <= 0 {
		maxInventory = 60
	}

	starting := map[shared.Currency]int{
		shared.CurrencyExalted: 5,
		shared.CurrencyChaos:   10,
		shared.CurrencyDivine:  3,
	}
	if cfg.StartingCurrency != nil {
		starting = cfg.StartingCurrency
	}

	return &service{
		repo:             cfg.Repository,
		generator:        cfg.Generator,
		currency:         cfg.Currency,
		bus:              cfg.Bus,
		maxInventory:     maxInventory,
		startingCurrency: starting,
		state:            make(map[string]*equipment.PlayerData),
	}
}

// CreatePlayer loads or initializes a player
func (s *service) CreatePlayer(ctx context.Context, playerID string) error {
	if playerID == "" {
		return lferr.InvalidArgument("player ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.state[playerID]; exists {
		return nil
	}

	data, err := s.repo.Load(ctx, playerID)
	if err != nil {
		if !lferr.IsNotFound(err) {
			return err
		}
		data = equipment.NewPlayerData()
		for cur, amount := range s.startingCurrency {
			data.Currency[cur] = amount
		}
		if err := s.repo.Save(ctx, playerID, data); err != nil {
			return err
		}
	}

	s.state[playerID] = data
	s.publishLocked(playerID, data)
	return nil
}

// RemovePlayer drops a player and deletes stored state
func (s *service) RemovePlayer(ctx context.Context, playerID string) error {
	if playerID == "" {
		return lferr.InvalidArgument("player ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.state, playerID)
	return s.repo.Delete(ctx, playerID)
}

// RestoreAll loads every stored player into the live ledger
func (s *service) RestoreAll(ctx context.Context) error {
	ids, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	loaded, err := s.repo.LoadMany(ctx, ids)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, data := range loaded {
		s.state[id] = data
	}
	log.Printf("Restored equipment state for %d players", len(loaded))
	return nil
}

// GetPlayerData returns a copy of a player's current state
func (s *service) GetPlayerData(ctx context.Context, playerID string) (*equipment.PlayerData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return nil, err
	}
	return data.Clone(), nil
}

// Equip moves an inventory item into an equip slot
func (s *service) Equip(ctx context.Context, playerID, itemID string, slot shared.Slot) error {
	if !slot.Valid() {
		return lferr.InvalidArgumentf("unknown slot '%s'", slot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return err
	}

	item, idx := data.FindInventory(itemID)
	if item == nil {
		return lferr.NotFoundf("item '%s' not in inventory", itemID).
			WithMeta("player_id", playerID)
	}
	if item.Slot().Canonical() != slot.Canonical() {
		return lferr.FailedPreconditionf("item '%s' does not fit slot %s", item.Name, slot)
	}

	// Swap in place so inventory count never changes
	previous := data.Equipped[slot]
	data.Equipped[slot] = item
	if previous != nil {
		data.Inventory[idx] = previous
	} else {
		data.RemoveInventoryAt(idx)
	}

	return s.commitLocked(ctx, playerID, data)
}

// Unequip moves an equipped item back into the inventory
func (s *service) Unequip(ctx context.Context, playerID string, slot shared.Slot) error {
	if !slot.Valid() {
		return lferr.InvalidArgumentf("unknown slot '%s'", slot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return err
	}

	item := data.Equipped[slot]
	if item == nil {
		return lferr.FailedPreconditionf("slot %s is empty", slot)
	}
	if len(data.Inventory) >= s.maxInventory {
		return lferr.FailedPrecondition("inventory is full")
	}

	data.Equipped[slot] = nil
	data.Inventory = append(data.Inventory, item)

	return s.commitLocked(ctx, playerID, data)
}

// Discard permanently removes an inventory item
func (s *service) Discard(ctx context.Context, playerID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return err
	}

	item, idx := data.FindInventory(itemID)
	if item == nil {
		return lferr.NotFoundf("item '%s' not in inventory", itemID).
			WithMeta("player_id", playerID)
	}
	data.RemoveInventoryAt(idx)

	return s.commitLocked(ctx, playerID, data)
}

// AddToInventory places an item into a player's inventory
func (s *service) AddToInventory(ctx context.Context, playerID string, item *equipment.Item) error {
	if item == nil {
		return lferr.InvalidArgument("item cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return err
	}

	if len(data.Inventory) >= s.maxInventory {
		return lferr.FailedPrecondition("inventory is full")
	}
	data.Inventory = append(data.Inventory, item)

	return s.commitLocked(ctx, playerID, data)
}

// AddCurrency grants currency to a player
func (s *service) AddCurrency(ctx context.Context, playerID string, cur shared.Currency, amount int) error {
	if !cur.Valid() {
		return lferr.InvalidArgumentf("unknown currency '%s'", cur)
	}
	if amount <= 0 {
		return lferr.InvalidArgument("amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return err
	}

	data.Currency[cur] += amount

	return s.commitLocked(ctx, playerID, data)
}

// UseCurrency spends one orb on an inventory item
func (s *service) UseCurrency(ctx context.Context, playerID string, cur shared.Currency, itemID string) error {
	if !cur.Valid() {
		return lferr.InvalidArgumentf("unknown currency '%s'", cur)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return err
	}

	if data.Currency[cur] < 1 {
		return lferr.FailedPreconditionf("not enough %s", cur.Name())
	}

	item, _ := data.FindInventory(itemID)
	if item == nil {
		return lferr.NotFoundf("item '%s' not in inventory", itemID).
			WithMeta("player_id", playerID)
	}

	if err := s.currency.Apply(item, cur); err != nil {
		return err
	}
	data.Currency[cur]--

	return s.commitLocked(ctx, playerID, data)
}

// DropForPlayer generates a random drop and adds it to the inventory
func (s *service) DropForPlayer(ctx context.Context, playerID string, monsterLevel int) (*equipment.Item, error) {
	if monsterLevel < 1 {
		return nil, lferr.InvalidArgument("monster level must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return nil, err
	}

	if len(data.Inventory) >= s.maxInventory {
		return nil, lferr.FailedPrecondition("inventory is full")
	}

	item := s.generator.DropForLevel(monsterLevel)
	data.Inventory = append(data.Inventory, item)

	if err := s.commitLocked(ctx, playerID, data); err != nil {
		return nil, err
	}
	return item.Clone(), nil
}

// TotalStats aggregates the player's equipped items
func (s *service) TotalStats(ctx context.Context, playerID string) (*stats.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return nil, err
	}
	return stats.CalculateTotalStats(data), nil
}

// PublishState pushes the player's current snapshot and stats to clients
func (s *service) PublishState(ctx context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.dataLocked(playerID)
	if err != nil {
		return err
	}
	s.publishLocked(playerID, data)
	return nil
}

// dataLocked returns the live state for a player; the caller holds s.mu
func (s *service) dataLocked(playerID string) (*equipment.PlayerData, error) {
	if playerID == "" {
		return nil, lferr.InvalidArgument("player ID is required")
	}
	data, exists := s.state[playerID]
	if !exists {
		return nil, lferr.NotFoundf("player '%s' is not in the ledger", playerID).
			WithMeta("player_id", playerID)
	}
	return data, nil
}

// commitLocked persists a mutated state and notifies clients; the caller
// holds s.mu
func (s *service) commitLocked(ctx context.Context, playerID string, data *equipment.PlayerData) error {
	if err := s.repo.Save(ctx, playerID, data); err != nil {
		return err
	}
	s.publishLocked(playerID, data)
	return nil
}

func (s *service) publishLocked(playerID string, data *equipment.PlayerData) {
	if s.bus == nil {
		return
	}

	snapshot := equipment.BuildSnapshot(playerID, data)
	if err := s.bus.Emit(events.NewEvent(events.EventUpdated, playerID).
		WithContext("snapshot", snapshot)); err != nil {
		log.Printf("Failed to emit equipment update for %s: %v", playerID, err)
	}

	bundle := stats.CalculateTotalStats(data)
	if err := s.bus.Emit(events.NewEvent(events.EventStats, playerID).
		WithContext("stats", stats.CharacterStatsFrom(bundle)).
		WithContext("bundle", bundle)); err != nil {
		log.Printf("Failed to emit stats update for %s: %v", playerID, err)
	}
}
