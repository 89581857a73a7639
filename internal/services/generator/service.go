package generator

import (
	"log"

	"github.com/KirkDiggler/loot-forge/internal/dice"
	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
	"github.com/KirkDiggler/loot-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
	"github.com/KirkDiggler/loot-forge/internal/uuid"
)

// Service defines the item generation service interface
type Service interface {
	// CreateItem builds a fresh item instance of the given base, rarity, and
	// item level, with affixes rolled to the rarity's budget and a flavored
	// name. Unknown base type IDs fall back to the default base.
	CreateItem(baseTypeID string, rarity shared.Rarity, itemLevel int) *equipment.Item

	// RollOneAffix rolls a single new affix onto the item in the given
	// position, honoring slot restrictions, item level gates, and the
	// no-duplicate rule. Returns a failed precondition error when no affix
	// in the catalog is eligible.
	RollOneAffix(item *equipment.Item, position shared.AffixPosition) error

	// RollAffixes clears the item's affixes and rolls a full set for its
	// rarity
	RollAffixes(item *equipment.Item)

	// GenerateName produces a display name for the item from its base name
	// and rarity
	GenerateName(item *equipment.Item) string

	// RollRarity draws a drop rarity for the given monster level
	RollRarity(monsterLevel int) shared.Rarity

	// DropForLevel generates a complete random drop for a monster of the
	// given level
	DropForLevel(monsterLevel int) *equipment.Item
}

type service struct {
	roller        dice.Roller
	uuidGenerator uuid.Generator
	policy        RarityPolicy
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller        dice.Roller    // Optional - defaults to a time-seeded roller
	UUIDGenerator uuid.Generator // Optional - defaults to google UUIDs
	Policy        *RarityPolicy  // Optional - defaults to DefaultRarityPolicy
}

// NewService creates a new item generation service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		roller:        dice.NewRandomRoller(),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		policy:        DefaultRarityPolicy(),
	}

	if cfg != nil {
		if cfg.Roller != nil {
			svc.roller = cfg.Roller
		}
		if cfg.UUIDGenerator != nil {
			svc.uuidGenerator = cfg.UUIDGenerator
		}
		if cfg.Policy != nil {
			svc.policy = *cfg.Policy
		}
	}

	return svc
}

// CreateItem builds a fresh item instance
func (s *service) CreateItem(baseTypeID string, rarity shared.Rarity, itemLevel int) *equipment.Item {
	if _, ok := rulebook.BaseTypeByID(baseTypeID); !ok {
		log.Printf("Unknown base type %q, falling back to %s", baseTypeID, rulebook.DefaultBaseTypeID)
		baseTypeID = rulebook.DefaultBaseTypeID
	}
	if !rarity.Valid() {
		rarity = shared.RarityNormal
	}
	if itemLevel < 1 {
		itemLevel = 1
	}

	item := &equipment.Item{
		ID:         s.uuidGenerator.New(),
		BaseTypeID: baseTypeID,
		Rarity:     rarity,
		ItemLevel:  itemLevel,
		Prefixes:   make([]equipment.Affix, 0),
		Suffixes:   make([]equipment.Affix, 0),
		Identified: rarity == shared.RarityNormal,
	}
	s.RollAffixes(item)
	return item
}

// RollAffixes clears and rerolls the item's full affix set for its rarity
func (s *service) RollAffixes(item *equipment.Item) {
	item.Prefixes = item.Prefixes[:0]
	item.Suffixes = item.Suffixes[:0]

	prefixCount, suffixCount := s.rollAffixCounts(item.Rarity)
	for i := 0; i < prefixCount; i++ {
		if err := s.RollOneAffix(item, shared.AffixPrefix); err != nil {
			break
		}
	}
	for i := 0; i < suffixCount; i++ {
		if err := s.RollOneAffix(item, shared.AffixSuffix); err != nil {
			break
		}
	}

	item.Name = s.GenerateName(item)
}

// rollAffixCounts draws how many prefixes and suffixes a fresh roll gets.
// Magic items get one or two affixes total; a single affix lands on either
// side with even odds. Rare items get two or three of each. Legendary items
// always roll full.
func (s *service) rollAffixCounts(rarity shared.Rarity) (prefixes, suffixes int) {
	switch rarity {
	case shared.RarityMagic:
		if s.roller.Roll(1, 2) == 1 {
			if s.roller.Roll(1, 2) == 1 {
				return 1, 0
			}
			return 0, 1
		}
		return 1, 1
	case shared.RarityRare:
		return s.roller.Roll(2, 3), s.roller.Roll(2, 3)
	case shared.RarityLegendary:
		return 3, 3
	default:
		return 0, 0
	}
}

// RollOneAffix rolls a single new affix onto the item
func (s *service) RollOneAffix(item *equipment.Item, position shared.AffixPosition) error {
	slot := item.Slot()

	var candidates []*rulebook.AffixDefinition
	for _, def := range rulebook.AffixPool() {
		if def.Position != position {
			continue
		}
		if !def.AllowsSlot(slot) {
			continue
		}
		if item.HasAffix(def.ID) {
			continue
		}
		if _, ok := def.BestEligibleTier(item.ItemLevel); !ok {
			continue
		}
		candidates = append(candidates, def)
	}

	def, ok := dice.WeightedChoice(s.roller, candidates, func(d *rulebook.AffixDefinition) int {
		tier, _ := d.BestEligibleTier(item.ItemLevel)
		return tier.Weight
	})
	if !ok {
		return lferr.FailedPreconditionf("no eligible %s affix for item level %d in slot %s",
			position, item.ItemLevel, slot)
	}

	tiers := def.EligibleTiers(item.ItemLevel)
	tier, ok := dice.WeightedChoice(s.roller, tiers, func(t rulebook.AffixTier) int {
		return t.Weight
	})
	if !ok {
		return lferr.Internalf("affix %s has no weighted tier at item level %d", def.ID, item.ItemLevel)
	}

	affix := equipment.Affix{
		AffixID:  def.ID,
		Tier:     tier.Tier,
		Value:    s.roller.Roll(tier.MinValue, tier.MaxValue),
		Position: position,
	}
	if position == shared.AffixPrefix {
		item.Prefixes = append(item.Prefixes, affix)
	} else {
		item.Suffixes = append(item.Suffixes, affix)
	}
	return nil
}

// GenerateName produces a display name for the item
func (s *service) GenerateName(item *equipment.Item) string {
	baseName := item.BaseTypeID
	if def, ok := rulebook.BaseTypeByID(item.BaseTypeID); ok {
		baseName = def.Name
	}

	switch item.Rarity {
	case shared.RarityMagic:
		if s.roller.Roll(1, 2) == 1 {
			return s.flavorPrefix() + " " + baseName
		}
		return baseName + " " + s.flavorSuffix()
	case shared.RarityRare, shared.RarityLegendary:
		return s.flavorPrefix() + " " + baseName + " " + s.flavorSuffix()
	default:
		return baseName
	}
}

func (s *service) flavorPrefix() string {
	return rulebook.FlavorPrefixes[s.roller.Roll(1, len(rulebook.FlavorPrefixes))-1]
}

func (s *service) flavorSuffix() string {
	return rulebook.FlavorSuffixes[s.roller.Roll(1, len(rulebook.FlavorSuffixes))-1]
}

// RollRarity draws a drop rarity for the given monster level
func (s *service) RollRarity(monsterLevel int) shared.Rarity {
	return s.policy.Roll(s.roller, monsterLevel)
}

// DropForLevel generates a complete random drop
func (s *service) DropForLevel(monsterLevel int) *equipment.Item {
	itemLevel := monsterLevel + s.roller.Roll(-2, 2)
	if itemLevel < 1 {
		itemLevel = 1
	}

	var candidates []*rulebook.BaseTypeDefinition
	for _, def := range rulebook.BaseTypes() {
		if def.RequiredLevel <= itemLevel {
			candidates = append(candidates, def)
		}
	}

	base, ok := dice.WeightedChoice(s.roller, candidates, func(d *rulebook.BaseTypeDefinition) int {
		return d.DropWeight
	})
	if !ok {
		// Level-1 bases always qualify, so this only fires on an empty catalog
		base, _ = rulebook.BaseTypeByID(rulebook.DefaultBaseTypeID)
	}

	rarity := s.RollRarity(monsterLevel)
	return s.CreateItem(base.ID, rarity, itemLevel)
}
