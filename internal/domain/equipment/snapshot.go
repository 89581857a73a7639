package equipment

import (
	"log"
	"strconv"
	"strings"

	"github.com/KirkDiggler/loot-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// AffixView is a display-ready rendering of one rolled affix
type AffixView struct {
	AffixID     string `json:"affix_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        int    `json:"tier"`
	Value       int    `json:"value"`
	IsPercent   bool   `json:"is_percent"`
	Position    string `json:"position"`
}

// ItemView is a display-ready rendering of one item instance
type ItemView struct {
	ID          string      `json:"id"`
	BaseTypeID  string      `json:"base_type_id"`
	Name        string      `json:"name"`
	BaseName    string      `json:"base_name"`
	Icon        string      `json:"icon"`
	Slot        string      `json:"slot"`
	Rarity      int         `json:"rarity"`
	RarityName  string      `json:"rarity_name"`
	RarityColor string      `json:"rarity_color"`
	ItemLevel   int         `json:"item_level"`
	Affixes     []AffixView `json:"affixes"`
	Identified  bool        `json:"identified"`
	Corrupted   bool        `json:"corrupted"`
}

// Snapshot is the full display-ready state pushed to clients after every
// successful mutation
type Snapshot struct {
	PlayerID  string               `json:"player_id"`
	Equipped  map[string]*ItemView `json:"equipped"`
	Inventory []*ItemView          `json:"inventory"`
	Currency  map[string]int       `json:"currency"`
}

// BuildSnapshot renders a player's state for display. Affixes whose
// definitions are missing from the catalog render with a placeholder rather
// than dropping silently.
func BuildSnapshot(playerID string, data *PlayerData) *Snapshot {
	snap := &Snapshot{
		PlayerID:  playerID,
		Equipped:  make(map[string]*ItemView, len(shared.SlotOrder)),
		Inventory: make([]*ItemView, 0, len(data.Inventory)),
		Currency:  make(map[string]int, len(shared.CurrencyOrder)),
	}
	for _, slot := range shared.SlotOrder {
		if item := data.Equipped[slot]; item != nil {
			snap.Equipped[string(slot)] = buildItemView(item)
		}
	}
	for _, item := range data.Inventory {
		if item != nil {
			snap.Inventory = append(snap.Inventory, buildItemView(item))
		}
	}
	for _, c := range shared.CurrencyOrder {
		snap.Currency[string(c)] = data.Currency[c]
	}
	return snap
}

func buildItemView(item *Item) *ItemView {
	baseName := item.BaseTypeID
	icon := ""
	slot := item.Slot()
	if def, ok := rulebook.BaseTypeByID(item.BaseTypeID); ok {
		baseName = def.Name
		icon = def.Icon
	}

	view := &ItemView{
		ID:          item.ID,
		BaseTypeID:  item.BaseTypeID,
		Name:        item.Name,
		BaseName:    baseName,
		Icon:        icon,
		Slot:        string(slot),
		Rarity:      int(item.Rarity),
		RarityName:  item.Rarity.Name(),
		RarityColor: item.Rarity.Color(),
		ItemLevel:   item.ItemLevel,
		Affixes:     make([]AffixView, 0, item.AffixCount()),
		Identified:  item.Identified,
		Corrupted:   item.Corrupted,
	}
	for _, a := range item.Prefixes {
		view.Affixes = append(view.Affixes, buildAffixView(a))
	}
	for _, a := range item.Suffixes {
		view.Affixes = append(view.Affixes, buildAffixView(a))
	}
	return view
}

func buildAffixView(a Affix) AffixView {
	view := AffixView{
		AffixID:  string(a.AffixID),
		Tier:     a.Tier,
		Value:    a.Value,
		Position: string(a.Position),
	}
	def, ok := rulebook.AffixByID(a.AffixID)
	if !ok {
		log.Printf("Unknown affix id %s in item view, rendering placeholder", a.AffixID)
		view.Name = string(a.AffixID)
		view.Description = strconv.Itoa(a.Value)
		return view
	}
	view.Name = def.Name
	view.Description = RenderDescription(def.Description, a.Value)
	view.IsPercent = def.IsPercent
	return view
}

// RenderDescription substitutes the rolled value into a description template
func RenderDescription(template string, value int) string {
	return strings.ReplaceAll(template, "{value}", strconv.Itoa(value))
}
