package services

import (
	"github.com/KirkDiggler/loot-forge/internal/config"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
	"github.com/KirkDiggler/loot-forge/internal/events"
	"github.com/KirkDiggler/loot-forge/internal/repositories/players"
	currencyService "github.com/KirkDiggler/loot-forge/internal/services/currency"
	generatorService "github.com/KirkDiggler/loot-forge/internal/services/generator"
	ledgerService "github.com/KirkDiggler/loot-forge/internal/services/ledger"
)

// Provider holds all service instances
type Provider struct {
	GeneratorService generatorService.Service
	CurrencyService  currencyService.Service
	LedgerService    ledgerService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PlayerRepository players.Repository
	Bus              *events.Bus
	Game             *config.GameConfig
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	playerRepo := cfg.PlayerRepository
	if playerRepo == nil {
		playerRepo = players.NewInMemoryRepository()
	}

	genService := generatorService.NewService(&generatorService.ServiceConfig{})

	curService := currencyService.NewService(&currencyService.ServiceConfig{
		Generator: genService,
	})

	ledgerCfg := &ledgerService.ServiceConfig{
		Repository: playerRepo,
		Generator:  genService,
		Currency:   curService,
		Bus:        cfg.Bus,
	}
	if cfg.Game != nil {
		ledgerCfg.MaxInventory = cfg.Game.MaxInventory
		ledgerCfg.StartingCurrency = map[shared.Currency]int{
			shared.CurrencyExalted: cfg.Game.StartingExalted,
			shared.CurrencyChaos:   cfg.Game.StartingChaos,
			shared.CurrencyDivine:  cfg.Game.StartingDivine,
		}
	}
	ledgerSvc := ledgerService.NewService(ledgerCfg)

	return &Provider{
		GeneratorService: genService,
		CurrencyService:  curService,
		LedgerService:    ledgerSvc,
	}
}
