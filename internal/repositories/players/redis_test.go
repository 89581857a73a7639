package players

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
	"github.com/KirkDiggler/loot-forge/internal/testutils"
)

func TestRedis_SavePipelinesSetAndIndex(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	data := testutils.CreateTestPlayerData()
	payload, err := json.Marshal(toData(data))
	require.NoError(t, err)

	mock.ExpectTxPipeline()
	mock.ExpectSet("equipment:player:p1", payload, 0).SetVal("OK")
	mock.ExpectSAdd("equipment:players", "p1").SetVal(1)
	mock.ExpectTxPipelineExec()

	require.NoError(t, repo.Save(context.Background(), "p1", data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_LoadMissingIsNotFound(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	mock.ExpectGet("equipment:player:ghost").RedisNil()

	_, err := repo.Load(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, lferr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_LoadPropagatesErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	mock.ExpectGet("equipment:player:p1").SetErr(errors.New("connection refused"))

	_, err := repo.Load(context.Background(), "p1")
	require.Error(t, err)
	assert.False(t, lferr.IsNotFound(err))
}

func TestRedis_DeleteRemovesKeyAndIndex(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	mock.ExpectTxPipeline()
	mock.ExpectDel("equipment:player:p1").SetVal(1)
	mock.ExpectSRem("equipment:players", "p1").SetVal(1)
	mock.ExpectTxPipelineExec()

	require.NoError(t, repo.Delete(context.Background(), "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_ListPlayersSorted(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	mock.ExpectSMembers("equipment:players").SetVal([]string{"zeta", "alpha"})

	ids, err := repo.ListPlayers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, ids)
}

func TestRedis_Validation(t *testing.T) {
	client, _ := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})
	ctx := context.Background()

	assert.True(t, lferr.IsInvalidArgument(repo.Save(ctx, "", testutils.CreateTestPlayerData())))
	assert.True(t, lferr.IsInvalidArgument(repo.Save(ctx, "p1", nil)))

	_, err := repo.Load(ctx, "")
	assert.True(t, lferr.IsInvalidArgument(err))
}
