package equipment

import (
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// PlayerData is one player's complete equipment state: equipped slots,
// inventory, and currency balances
type PlayerData struct {
	Equipped  map[shared.Slot]*Item   `json:"equipped"`
	Inventory []*Item                 `json:"inventory"`
	Currency  map[shared.Currency]int `json:"currency"`
}

// NewPlayerData returns an empty state with every equip slot present and
// unoccupied and every currency balance at zero
func NewPlayerData() *PlayerData {
	equipped := make(map[shared.Slot]*Item, len(shared.SlotOrder))
	for _, slot := range shared.SlotOrder {
		equipped[slot] = nil
	}
	currency := make(map[shared.Currency]int, len(shared.CurrencyOrder))
	for _, c := range shared.CurrencyOrder {
		currency[c] = 0
	}
	return &PlayerData{
		Equipped:  equipped,
		Inventory: make([]*Item, 0),
		Currency:  currency,
	}
}

// FindInventory returns the inventory item with the given id and its index,
// or (nil, -1) when absent
func (d *PlayerData) FindInventory(itemID string) (*Item, int) {
	for idx, item := range d.Inventory {
		if item != nil && item.ID == itemID {
			return item, idx
		}
	}
	return nil, -1
}

// RemoveInventoryAt removes the item at the given index, preserving order
func (d *PlayerData) RemoveInventoryAt(idx int) {
	if idx < 0 || idx >= len(d.Inventory) {
		return
	}
	d.Inventory = append(d.Inventory[:idx], d.Inventory[idx+1:]...)
}

// Clone returns a deep copy of the player data
func (d *PlayerData) Clone() *PlayerData {
	if d == nil {
		return nil
	}
	clone := NewPlayerData()
	for slot, item := range d.Equipped {
		clone.Equipped[slot] = item.Clone()
	}
	clone.Inventory = make([]*Item, 0, len(d.Inventory))
	for _, item := range d.Inventory {
		clone.Inventory = append(clone.Inventory, item.Clone())
	}
	for c, amount := range d.Currency {
		clone.Currency[c] = amount
	}
	return clone
}
