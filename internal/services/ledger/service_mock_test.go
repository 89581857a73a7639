package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/loot-forge/internal/dice"
	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
	mockplayers "github.com/KirkDiggler/loot-forge/internal/repositories/players/mock"
	"github.com/KirkDiggler/loot-forge/internal/services/currency"
	"github.com/KirkDiggler/loot-forge/internal/services/generator"
	"github.com/KirkDiggler/loot-forge/internal/testutils"
)

func newMockedService(t *testing.T) (*mockplayers.MockRepository, Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mockplayers.NewMockRepository(ctrl)

	roller := dice.NewSeededRoller(1)
	gen := generator.NewService(&generator.ServiceConfig{Roller: roller})
	svc := NewService(&ServiceConfig{
		Repository: repo,
		Generator:  gen,
		Currency:   currency.NewService(&currency.ServiceConfig{Roller: roller, Generator: gen}),
	})

	return repo, svc
}

func TestCreatePlayer_RepositoryErrorPropagates(t *testing.T) {
	repo, svc := newMockedService(t)
	ctx := context.Background()

	repo.EXPECT().Load(ctx, "p1").Return(nil, lferr.Internal("redis down"))

	err := svc.CreatePlayer(ctx, "p1")
	require.Error(t, err)
	assert.False(t, lferr.IsNotFound(err))
}

func TestCreatePlayer_SaveFailureLeavesLedgerEmpty(t *testing.T) {
	repo, svc := newMockedService(t)
	ctx := context.Background()

	repo.EXPECT().Load(ctx, "p1").Return(nil, lferr.NotFound("no state"))
	repo.EXPECT().Save(ctx, "p1", gomock.Any()).Return(errors.New("write failed"))

	require.Error(t, svc.CreatePlayer(ctx, "p1"))

	_, err := svc.GetPlayerData(ctx, "p1")
	assert.True(t, lferr.IsNotFound(err), "failed create must not leave live state behind")
}

func TestAddToInventory_SaveFailurePropagates(t *testing.T) {
	repo, svc := newMockedService(t)
	ctx := context.Background()

	repo.EXPECT().Load(ctx, "p1").Return(testutils.CreateTestPlayerData(), nil)
	require.NoError(t, svc.CreatePlayer(ctx, "p1"))

	repo.EXPECT().Save(ctx, "p1", gomock.Any()).Return(errors.New("write failed"))

	err := svc.AddToInventory(ctx, "p1", testutils.CreateTestItem("new-item", "belt_cloth"))
	require.Error(t, err)
}
