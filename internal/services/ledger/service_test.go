package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/loot-forge/internal/dice"
	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
	"github.com/KirkDiggler/loot-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
	"github.com/KirkDiggler/loot-forge/internal/events"
	"github.com/KirkDiggler/loot-forge/internal/repositories/players"
	"github.com/KirkDiggler/loot-forge/internal/services/currency"
	"github.com/KirkDiggler/loot-forge/internal/services/generator"
	"github.com/KirkDiggler/loot-forge/internal/services/stats"
	"github.com/KirkDiggler/loot-forge/internal/testutils"
)

type captureListener struct {
	id     string
	events []*events.Event
}

func (l *captureListener) HandleEvent(event *events.Event) error {
	l.events = append(l.events, event)
	return nil
}

func (l *captureListener) Priority() int { return 0 }
func (l *captureListener) ID() string    { return l.id }

type testEnv struct {
	svc     Service
	repo    players.Repository
	bus     *events.Bus
	updates *captureListener
	statsEv *captureListener
}

func newTestEnv(t *testing.T, seed int64) *testEnv {
	t.Helper()

	roller := dice.NewSeededRoller(seed)
	gen := generator.NewService(&generator.ServiceConfig{Roller: roller})
	cur := currency.NewService(&currency.ServiceConfig{Roller: roller, Generator: gen})
	repo := players.NewInMemoryRepository()
	bus := events.NewBus()

	updates := &captureListener{id: "capture-updates"}
	statsEv := &captureListener{id: "capture-stats"}
	bus.Subscribe(events.EventUpdated, updates)
	bus.Subscribe(events.EventStats, statsEv)

	svc := NewService(&ServiceConfig{
		Repository:   repo,
		Generator:    gen,
		Currency:     cur,
		Bus:          bus,
		MaxInventory: 5,
		StartingCurrency: map[shared.Currency]int{
			shared.CurrencyExalted: 5,
			shared.CurrencyChaos:   10,
			shared.CurrencyDivine:  3,
		},
	})

	return &testEnv{svc: svc, repo: repo, bus: bus, updates: updates, statsEv: statsEv}
}

func TestCreatePlayer_FreshGetsStartingCurrency(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))

	data, err := env.svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, data.Currency[shared.CurrencyExalted])
	assert.Equal(t, 10, data.Currency[shared.CurrencyChaos])
	assert.Equal(t, 3, data.Currency[shared.CurrencyDivine])
	assert.Empty(t, data.Inventory)

	// Fresh players are persisted immediately
	stored, err := env.repo.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Currency[shared.CurrencyChaos])
}

func TestCreatePlayer_ExistingStateSurvives(t *testing.T) {
	env := newTestEnv(t, 2)
	ctx := context.Background()

	stored := testutils.CreateTestPlayerData()
	require.NoError(t, env.repo.Save(ctx, "p1", stored))

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))

	data, err := env.svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, data.Currency[shared.CurrencyExalted], "stored balance beats starting grant")
	assert.NotNil(t, data.Equipped[shared.SlotWeapon])
}

func TestCreatePlayer_Idempotent(t *testing.T) {
	env := newTestEnv(t, 3)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddCurrency(ctx, "p1", shared.CurrencyChaos, 5))
	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))

	data, err := env.svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 15, data.Currency[shared.CurrencyChaos], "second create must not reset state")
}

func TestRemovePlayer(t *testing.T) {
	env := newTestEnv(t, 4)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.RemovePlayer(ctx, "p1"))

	_, err := env.svc.GetPlayerData(ctx, "p1")
	assert.True(t, lferr.IsNotFound(err))

	_, err = env.repo.Load(ctx, "p1")
	assert.True(t, lferr.IsNotFound(err))
}

func TestRestoreAll(t *testing.T) {
	env := newTestEnv(t, 5)
	ctx := context.Background()

	require.NoError(t, env.repo.Save(ctx, "p1", testutils.CreateTestPlayerData()))
	require.NoError(t, env.repo.Save(ctx, "p2", equipment.NewPlayerData()))

	require.NoError(t, env.svc.RestoreAll(ctx))

	for _, id := range []string{"p1", "p2"} {
		_, err := env.svc.GetPlayerData(ctx, id)
		assert.NoError(t, err, "player %s should be restored", id)
	}
}

func TestEquip_SwapKeepsInventoryCount(t *testing.T) {
	env := newTestEnv(t, 6)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("sword-a", "sword_iron")))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("sword-b", "sword_steel")))

	require.NoError(t, env.svc.Equip(ctx, "p1", "sword-a", shared.SlotWeapon))

	data, err := env.svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "sword-a", data.Equipped[shared.SlotWeapon].ID)
	assert.Len(t, data.Inventory, 1)

	// Swap: the old weapon lands back in the inventory at the same position
	require.NoError(t, env.svc.Equip(ctx, "p1", "sword-b", shared.SlotWeapon))

	data, err = env.svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "sword-b", data.Equipped[shared.SlotWeapon].ID)
	require.Len(t, data.Inventory, 1)
	assert.Equal(t, "sword-a", data.Inventory[0].ID)
}

func TestEquip_WrongSlotRejected(t *testing.T) {
	env := newTestEnv(t, 7)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("helm", "helmet_leather")))

	err := env.svc.Equip(ctx, "p1", "helm", shared.SlotWeapon)
	require.Error(t, err)
	assert.True(t, lferr.IsFailedPrecondition(err))

	data, _ := env.svc.GetPlayerData(ctx, "p1")
	assert.Nil(t, data.Equipped[shared.SlotWeapon])
	assert.Len(t, data.Inventory, 1)
}

func TestEquip_RingFitsEitherRingSlot(t *testing.T) {
	env := newTestEnv(t, 8)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("ring-a", "ring_iron")))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("ring-b", "ring_gold")))

	require.NoError(t, env.svc.Equip(ctx, "p1", "ring-a", shared.SlotRing1))
	require.NoError(t, env.svc.Equip(ctx, "p1", "ring-b", shared.SlotRing2))

	data, err := env.svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "ring-a", data.Equipped[shared.SlotRing1].ID)
	assert.Equal(t, "ring-b", data.Equipped[shared.SlotRing2].ID)
}

func TestEquip_UnknownItem(t *testing.T) {
	env := newTestEnv(t, 9)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))

	err := env.svc.Equip(ctx, "p1", "ghost", shared.SlotWeapon)
	assert.True(t, lferr.IsNotFound(err))
}

func TestUnequip(t *testing.T) {
	env := newTestEnv(t, 10)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("sword-a", "sword_iron")))
	require.NoError(t, env.svc.Equip(ctx, "p1", "sword-a", shared.SlotWeapon))

	require.NoError(t, env.svc.Unequip(ctx, "p1", shared.SlotWeapon))

	data, err := env.svc.GetPlayerData(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, data.Equipped[shared.SlotWeapon])
	require.Len(t, data.Inventory, 1)
	assert.Equal(t, "sword-a", data.Inventory[0].ID)
}

func TestUnequip_EmptySlot(t *testing.T) {
	env := newTestEnv(t, 11)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))

	err := env.svc.Unequip(ctx, "p1", shared.SlotWeapon)
	assert.True(t, lferr.IsFailedPrecondition(err))
}

func TestUnequip_FullInventoryFailsCleanly(t *testing.T) {
	env := newTestEnv(t, 12)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("sword-a", "sword_iron")))
	require.NoError(t, env.svc.Equip(ctx, "p1", "sword-a", shared.SlotWeapon))

	// MaxInventory is 5 in the test env
	for i := 0; i < 5; i++ {
		item := testutils.CreateTestItem("filler", "helmet_leather")
		item.ID = item.ID + string(rune('a'+i))
		require.NoError(t, env.svc.AddToInventory(ctx, "p1", item))
	}

	err := env.svc.Unequip(ctx, "p1", shared.SlotWeapon)
	require.Error(t, err)
	assert.True(t, lferr.IsFailedPrecondition(err))

	data, _ := env.svc.GetPlayerData(ctx, "p1")
	assert.NotNil(t, data.Equipped[shared.SlotWeapon], "item stays equipped on failure")
	assert.Len(t, data.Inventory, 5)
}

func TestDiscard(t *testing.T) {
	env := newTestEnv(t, 13)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("junk", "belt_cloth")))

	require.NoError(t, env.svc.Discard(ctx, "p1", "junk"))

	data, _ := env.svc.GetPlayerData(ctx, "p1")
	assert.Empty(t, data.Inventory)

	err := env.svc.Discard(ctx, "p1", "junk")
	assert.True(t, lferr.IsNotFound(err))
}

func TestAddToInventory_CapacityEnforced(t *testing.T) {
	env := newTestEnv(t, 14)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	for i := 0; i < 5; i++ {
		item := testutils.CreateTestItem("filler", "belt_cloth")
		item.ID = item.ID + string(rune('a'+i))
		require.NoError(t, env.svc.AddToInventory(ctx, "p1", item))
	}

	err := env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("overflow", "belt_cloth"))
	assert.True(t, lferr.IsFailedPrecondition(err))
}

func TestAddCurrency_Validation(t *testing.T) {
	env := newTestEnv(t, 15)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))

	assert.True(t, lferr.IsInvalidArgument(env.svc.AddCurrency(ctx, "p1", "mirror", 1)))
	assert.True(t, lferr.IsInvalidArgument(env.svc.AddCurrency(ctx, "p1", shared.CurrencyChaos, 0)))
	assert.True(t, lferr.IsInvalidArgument(env.svc.AddCurrency(ctx, "p1", shared.CurrencyChaos, -3)))
}

func TestUseCurrency_DecrementsOnSuccessOnly(t *testing.T) {
	env := newTestEnv(t, 16)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestRareItem("craft-me")))

	require.NoError(t, env.svc.UseCurrency(ctx, "p1", shared.CurrencyChaos, "craft-me"))

	data, _ := env.svc.GetPlayerData(ctx, "p1")
	assert.Equal(t, 9, data.Currency[shared.CurrencyChaos])

	// Exalted on a normal item fails; the orb is kept
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("plain", "helmet_leather")))
	err := env.svc.UseCurrency(ctx, "p1", shared.CurrencyExalted, "plain")
	require.Error(t, err)
	assert.True(t, lferr.IsFailedPrecondition(err))

	data, _ = env.svc.GetPlayerData(ctx, "p1")
	assert.Equal(t, 5, data.Currency[shared.CurrencyExalted])
}

func TestUseCurrency_InsufficientBalance(t *testing.T) {
	env := newTestEnv(t, 17)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestRareItem("craft-me")))

	for i := 0; i < 3; i++ {
		require.NoError(t, env.svc.UseCurrency(ctx, "p1", shared.CurrencyDivine, "craft-me"))
	}
	err := env.svc.UseCurrency(ctx, "p1", shared.CurrencyDivine, "craft-me")
	require.Error(t, err)
	assert.True(t, lferr.IsFailedPrecondition(err))
}

func TestUseCurrency_EquippedItemNotTargetable(t *testing.T) {
	env := newTestEnv(t, 18)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestRareItem("craft-me")))
	require.NoError(t, env.svc.Equip(ctx, "p1", "craft-me", shared.SlotWeapon))

	err := env.svc.UseCurrency(ctx, "p1", shared.CurrencyChaos, "craft-me")
	assert.True(t, lferr.IsNotFound(err))
}

func TestDropForPlayer(t *testing.T) {
	env := newTestEnv(t, 19)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))

	item, err := env.svc.DropForPlayer(ctx, "p1", 30)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.GreaterOrEqual(t, item.ItemLevel, 28)
	assert.LessOrEqual(t, item.ItemLevel, 32)

	data, _ := env.svc.GetPlayerData(ctx, "p1")
	require.Len(t, data.Inventory, 1)
	assert.Equal(t, item.ID, data.Inventory[0].ID)
}

func TestTotalStats(t *testing.T) {
	env := newTestEnv(t, 20)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestRareItem("sword")))
	require.NoError(t, env.svc.Equip(ctx, "p1", "sword", shared.SlotWeapon))

	bundle, err := env.svc.TotalStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 16, bundle.Values[rulebook.StatStrength])
	assert.Equal(t, 20, bundle.Values[rulebook.StatFireResistance])
	assert.Equal(t, 15, bundle.Values[rulebook.StatAttackDamage], "base stat from the sword")
}

func TestMutationsEmitSnapshotAndStats(t *testing.T) {
	env := newTestEnv(t, 21)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	require.NoError(t, env.svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("sword-a", "sword_iron")))
	require.NoError(t, env.svc.Equip(ctx, "p1", "sword-a", shared.SlotWeapon))

	// create + add + equip
	require.Len(t, env.updates.events, 3)
	require.Len(t, env.statsEv.events, 3)

	last := env.updates.events[2]
	assert.Equal(t, "p1", last.PlayerID)
	snap, ok := last.Context["snapshot"].(*equipment.Snapshot)
	require.True(t, ok)
	assert.Contains(t, snap.Equipped, "weapon")

	statsEvent := env.statsEv.events[2]
	_, ok = statsEvent.Context["stats"].(stats.CharacterStats)
	assert.True(t, ok)
}

func TestFailedMutationEmitsNothing(t *testing.T) {
	env := newTestEnv(t, 22)
	ctx := context.Background()

	require.NoError(t, env.svc.CreatePlayer(ctx, "p1"))
	emitted := len(env.updates.events)

	err := env.svc.Equip(ctx, "p1", "ghost", shared.SlotWeapon)
	require.Error(t, err)
	assert.Len(t, env.updates.events, emitted, "failed mutations must not push snapshots")
}
