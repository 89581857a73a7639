package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/loot-forge/internal/dice"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
	"github.com/KirkDiggler/loot-forge/internal/events"
	"github.com/KirkDiggler/loot-forge/internal/repositories/players"
	"github.com/KirkDiggler/loot-forge/internal/services/currency"
	"github.com/KirkDiggler/loot-forge/internal/services/generator"
	"github.com/KirkDiggler/loot-forge/internal/services/ledger"
	"github.com/KirkDiggler/loot-forge/internal/testutils"
)

type capture struct {
	id     string
	events []*events.Event
}

func (c *capture) HandleEvent(event *events.Event) error {
	c.events = append(c.events, event)
	return nil
}

func (c *capture) Priority() int { return 0 }
func (c *capture) ID() string    { return c.id }

func newTestGateway(t *testing.T) (*events.Bus, ledger.Service, *capture, *capture) {
	t.Helper()

	roller := dice.NewSeededRoller(1)
	gen := generator.NewService(&generator.ServiceConfig{Roller: roller})
	bus := events.NewBus()
	svc := ledger.NewService(&ledger.ServiceConfig{
		Repository: players.NewInMemoryRepository(),
		Generator:  gen,
		Currency:   currency.NewService(&currency.ServiceConfig{Roller: roller, Generator: gen}),
		Bus:        bus,
	})

	handler := NewHandler(&HandlerConfig{Ledger: svc, Bus: bus})
	handler.Register()

	updates := &capture{id: "capture-updates"}
	errs := &capture{id: "capture-errors"}
	bus.Subscribe(events.EventUpdated, updates)
	bus.Subscribe(events.EventError, errs)

	return bus, svc, updates, errs
}

func TestGateway_EquipRequest(t *testing.T) {
	bus, svc, updates, errs := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("sword-a", "sword_iron")))
	before := len(updates.events)

	require.NoError(t, bus.Emit(events.NewEvent(events.EventRequestEquip, "p1").
		WithContext("item_id", "sword-a").
		WithContext("slot", "weapon")))

	assert.Empty(t, errs.events)
	assert.Greater(t, len(updates.events), before, "successful equip pushes a snapshot")

	data, err := svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "sword-a", data.Equipped[shared.SlotWeapon].ID)
}

func TestGateway_DataRequest(t *testing.T) {
	bus, svc, updates, errs := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, svc.CreatePlayer(ctx, "p1"))
	before := len(updates.events)

	require.NoError(t, bus.Emit(events.NewEvent(events.EventRequestData, "p1")))

	assert.Empty(t, errs.events)
	assert.Equal(t, before+1, len(updates.events))
}

func TestGateway_RejectedRequestBecomesErrorEvent(t *testing.T) {
	bus, svc, _, errs := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, svc.CreatePlayer(ctx, "p1"))

	// Equipping an item the player does not own is an expected failure: it
	// must come back as an error event, not break the bus
	require.NoError(t, bus.Emit(events.NewEvent(events.EventRequestEquip, "p1").
		WithContext("item_id", "ghost").
		WithContext("slot", "weapon")))

	require.Len(t, errs.events, 1)
	assert.Equal(t, "p1", errs.events[0].PlayerID)
	code, ok := errs.events[0].GetString("code")
	require.True(t, ok)
	assert.Equal(t, "not_found", code)
}

func TestGateway_MalformedRequestBecomesErrorEvent(t *testing.T) {
	bus, svc, _, errs := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, svc.CreatePlayer(ctx, "p1"))

	require.NoError(t, bus.Emit(events.NewEvent(events.EventRequestEquip, "p1")))

	require.Len(t, errs.events, 1)
	code, _ := errs.events[0].GetString("code")
	assert.Equal(t, "invalid_argument", code)
}

func TestGateway_UseCurrencyRequest(t *testing.T) {
	bus, svc, _, errs := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, svc.AddToInventory(ctx, "p1", testutils.CreateTestRareItem("craft-me")))

	require.NoError(t, bus.Emit(events.NewEvent(events.EventRequestUseCurrency, "p1").
		WithContext("item_id", "craft-me").
		WithContext("currency", "chaos")))

	assert.Empty(t, errs.events)

	data, err := svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 9, data.Currency[shared.CurrencyChaos])
}

func TestGateway_UnequipAndDiscardRequests(t *testing.T) {
	bus, svc, _, errs := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("sword-a", "sword_iron")))
	require.NoError(t, svc.Equip(ctx, "p1", "sword-a", shared.SlotWeapon))

	require.NoError(t, bus.Emit(events.NewEvent(events.EventRequestUnequip, "p1").
		WithContext("slot", "weapon")))
	require.NoError(t, bus.Emit(events.NewEvent(events.EventRequestDiscard, "p1").
		WithContext("item_id", "sword-a")))

	assert.Empty(t, errs.events)

	data, err := svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, data.Equipped[shared.SlotWeapon])
	assert.Empty(t, data.Inventory)
}
