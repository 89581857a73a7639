package currency

import (
	"log"

	"github.com/KirkDiggler/loot-forge/internal/dice"
	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
	"github.com/KirkDiggler/loot-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
	"github.com/KirkDiggler/loot-forge/internal/services/generator"
)

// Service applies crafting currency to items
type Service interface {
	// Apply mutates the item according to the currency's effect. The item is
	// untouched when an error is returned.
	Apply(item *equipment.Item, currency shared.Currency) error
}

type service struct {
	roller    dice.Roller
	generator generator.Service
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller    dice.Roller // Optional - defaults to a time-seeded roller
	Generator generator.Service
}

// NewService creates a new currency service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Generator == nil {
		panic("ServiceConfig and Generator are required")
	}

	svc := &service{
		roller:    dice.NewRandomRoller(),
		generator: cfg.Generator,
	}
	if cfg.Roller != nil {
		svc.roller = cfg.Roller
	}

	return svc
}

// Apply mutates the item according to the currency's effect
func (s *service) Apply(item *equipment.Item, currency shared.Currency) error {
	if item == nil {
		return lferr.InvalidArgument("item cannot be nil")
	}
	if item.Corrupted {
		return lferr.FailedPrecondition("corrupted items cannot be modified").
			WithMeta("item_id", item.ID)
	}

	switch currency {
	case shared.CurrencyExalted:
		return s.addAffix(item)
	case shared.CurrencyChaos:
		return s.rerollAffixes(item)
	case shared.CurrencyDivine:
		return s.rerollValues(item)
	default:
		return lferr.InvalidArgumentf("unknown currency '%s'", currency)
	}
}

// addAffix adds one new affix to a rare item with an open slot
func (s *service) addAffix(item *equipment.Item) error {
	if item.Rarity != shared.RarityRare {
		return lferr.FailedPreconditionf("exalted orbs only apply to rare items, item is %s", item.Rarity)
	}

	limit := item.Rarity.AffixLimit()
	prefixOpen := len(item.Prefixes) < limit.MaxPrefix
	suffixOpen := len(item.Suffixes) < limit.MaxSuffix
	if !prefixOpen && !suffixOpen {
		return lferr.FailedPrecondition("item has no open affix slot")
	}

	var position shared.AffixPosition
	switch {
	case prefixOpen && suffixOpen:
		if s.roller.Roll(1, 2) == 1 {
			position = shared.AffixPrefix
		} else {
			position = shared.AffixSuffix
		}
	case prefixOpen:
		position = shared.AffixPrefix
	default:
		position = shared.AffixSuffix
	}

	return s.generator.RollOneAffix(item, position)
}

// rerollAffixes replaces every affix on a rare item with a fresh roll
func (s *service) rerollAffixes(item *equipment.Item) error {
	if item.Rarity != shared.RarityRare {
		return lferr.FailedPreconditionf("chaos orbs only apply to rare items, item is %s", item.Rarity)
	}

	s.generator.RollAffixes(item)
	return nil
}

// rerollValues rerolls every affix value in place, keeping affix identities
// and tiers
func (s *service) rerollValues(item *equipment.Item) error {
	if item.Rarity == shared.RarityNormal {
		return lferr.FailedPrecondition("normal items have no affix values to reroll")
	}
	if item.AffixCount() == 0 {
		return lferr.FailedPrecondition("item has no affixes to reroll")
	}

	rerollList(s.roller, item.Prefixes)
	rerollList(s.roller, item.Suffixes)
	return nil
}

func rerollList(roller dice.Roller, affixes []equipment.Affix) {
	for i := range affixes {
		def, ok := rulebook.AffixByID(affixes[i].AffixID)
		if !ok {
			log.Printf("Affix %s missing from catalog, keeping its value", affixes[i].AffixID)
			continue
		}
		tier, ok := def.TierByNumber(affixes[i].Tier)
		if !ok {
			log.Printf("Affix %s tier %d missing from catalog, keeping its value",
				affixes[i].AffixID, affixes[i].Tier)
			continue
		}
		affixes[i].Value = roller.Roll(tier.MinValue, tier.MaxValue)
	}
}
