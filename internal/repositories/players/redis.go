package players

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
	"github.com/KirkDiggler/loot-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
	lferr "github.com/KirkDiggler/loot-forge/internal/errors"
)

const (
	playerKeyPrefix = "equipment:player:"
	playerSetKey    = "equipment:players"
)

// affixData is the serialized form of one rolled affix
type affixData struct {
	AffixID  string `json:"affix_id"`
	Tier     int    `json:"tier"`
	Value    int    `json:"value"`
	Position string `json:"position"`
}

// affixList decodes both the current array form and the legacy keyed-object
// form ({"1": {...}, "2": {...}}) some old records carry
type affixList []affixData

func (l *affixList) UnmarshalJSON(data []byte) error {
	var arr []affixData
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var keyed map[string]affixData
	if err := json.Unmarshal(data, &keyed); err != nil {
		return fmt.Errorf("affix list is neither array nor keyed object: %w", err)
	}

	keys := make([]int, 0, len(keyed))
	index := make(map[int]affixData, len(keyed))
	for k, v := range keyed {
		n, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("affix list has non-numeric key %q", k)
		}
		keys = append(keys, n)
		index[n] = v
	}
	sort.Ints(keys)

	out := make([]affixData, 0, len(keys))
	for _, k := range keys {
		out = append(out, index[k])
	}
	*l = out
	return nil
}

// itemData is the serialized form of an item instance
type itemData struct {
	ID         string    `json:"id"`
	BaseTypeID string    `json:"base_type_id"`
	Name       string    `json:"name"`
	Rarity     int       `json:"rarity"`
	ItemLevel  int       `json:"item_level"`
	Prefixes   affixList `json:"prefixes"`
	Suffixes   affixList `json:"suffixes"`
	Identified bool      `json:"identified"`
	Corrupted  bool      `json:"corrupted"`
}

// Data represents the serialized form of a player's equipment state in Redis
type Data struct {
	Equipped  map[string]*itemData `json:"equipped"`
	Inventory []*itemData          `json:"inventory"`
	Currency  map[string]int       `json:"currency"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepo implements Repository using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed player equipment repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

// Save stores a player's full equipment state
func (r *redisRepo) Save(ctx context.Context, playerID string, data *equipment.PlayerData) error {
	if playerID == "" {
		return lferr.InvalidArgument("player ID is required")
	}
	if data == nil {
		return lferr.InvalidArgument("player data cannot be nil")
	}

	payload, err := json.Marshal(toData(data))
	if err != nil {
		return lferr.Wrapf(err, "failed to marshal player data for '%s'", playerID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playerKey(playerID), payload, 0)
	pipe.SAdd(ctx, playerSetKey, playerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return lferr.Wrapf(err, "failed to save player data for '%s'", playerID)
	}

	return nil
}

// Load retrieves a player's equipment state
func (r *redisRepo) Load(ctx context.Context, playerID string) (*equipment.PlayerData, error) {
	if playerID == "" {
		return nil, lferr.InvalidArgument("player ID is required")
	}

	raw, err := r.client.Get(ctx, playerKey(playerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, lferr.NotFoundf("player '%s' has no stored equipment", playerID).
				WithMeta("player_id", playerID)
		}
		return nil, lferr.Wrapf(err, "failed to load player data for '%s'", playerID)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, lferr.Wrapf(err, "failed to unmarshal player data for '%s'", playerID)
	}

	return fromData(&data), nil
}

// LoadMany retrieves state for several players concurrently
func (r *redisRepo) LoadMany(ctx context.Context, playerIDs []string) (map[string]*equipment.PlayerData, error) {
	result := make(map[string]*equipment.PlayerData, len(playerIDs))
	results := make([]*equipment.PlayerData, len(playerIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range playerIDs {
		i, id := i, id
		g.Go(func() error {
			data, err := r.Load(gctx, id)
			if err != nil {
				if lferr.IsNotFound(err) {
					return nil
				}
				return err
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, id := range playerIDs {
		if results[i] != nil {
			result[id] = results[i]
		}
	}
	return result, nil
}

// Delete removes a player's stored state
func (r *redisRepo) Delete(ctx context.Context, playerID string) error {
	if playerID == "" {
		return lferr.InvalidArgument("player ID is required")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, playerKey(playerID))
	pipe.SRem(ctx, playerSetKey, playerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return lferr.Wrapf(err, "failed to delete player data for '%s'", playerID)
	}

	return nil
}

// ListPlayers returns the IDs of all players with stored state
func (r *redisRepo) ListPlayers(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, playerSetKey).Result()
	if err != nil {
		return nil, lferr.Wrap(err, "failed to list players")
	}
	sort.Strings(ids)
	return ids, nil
}

func toData(data *equipment.PlayerData) *Data {
	out := &Data{
		Equipped:  make(map[string]*itemData, len(data.Equipped)),
		Inventory: make([]*itemData, 0, len(data.Inventory)),
		Currency:  make(map[string]int, len(data.Currency)),
	}
	for slot, item := range data.Equipped {
		if item != nil {
			out.Equipped[string(slot)] = itemToData(item)
		}
	}
	for _, item := range data.Inventory {
		if item != nil {
			out.Inventory = append(out.Inventory, itemToData(item))
		}
	}
	for c, amount := range data.Currency {
		out.Currency[string(c)] = amount
	}
	return out
}

func fromData(data *Data) *equipment.PlayerData {
	out := equipment.NewPlayerData()
	for slot, item := range data.Equipped {
		s := shared.Slot(slot)
		if !s.Valid() || item == nil {
			continue
		}
		out.Equipped[s] = dataToItem(item)
	}
	for _, item := range data.Inventory {
		if item != nil {
			out.Inventory = append(out.Inventory, dataToItem(item))
		}
	}
	for c, amount := range data.Currency {
		cur := shared.Currency(c)
		if cur.Valid() {
			out.Currency[cur] = amount
		}
	}
	return out
}

func itemToData(item *equipment.Item) *itemData {
	return &itemData{
		ID:         item.ID,
		BaseTypeID: item.BaseTypeID,
		Name:       item.Name,
		Rarity:     int(item.Rarity),
		ItemLevel:  item.ItemLevel,
		Prefixes:   affixesToData(item.Prefixes),
		Suffixes:   affixesToData(item.Suffixes),
		Identified: item.Identified,
		Corrupted:  item.Corrupted,
	}
}

func dataToItem(data *itemData) *equipment.Item {
	return &equipment.Item{
		ID:         data.ID,
		BaseTypeID: data.BaseTypeID,
		Name:       data.Name,
		Rarity:     shared.Rarity(data.Rarity),
		ItemLevel:  data.ItemLevel,
		Prefixes:   dataToAffixes(data.Prefixes),
		Suffixes:   dataToAffixes(data.Suffixes),
		Identified: data.Identified,
		Corrupted:  data.Corrupted,
	}
}

func affixesToData(affixes []equipment.Affix) affixList {
	out := make(affixList, 0, len(affixes))
	for _, a := range affixes {
		out = append(out, affixData{
			AffixID:  string(a.AffixID),
			Tier:     a.Tier,
			Value:    a.Value,
			Position: string(a.Position),
		})
	}
	return out
}

func dataToAffixes(list affixList) []equipment.Affix {
	out := make([]equipment.Affix, 0, len(list))
	for _, a := range list {
		out = append(out, equipment.Affix{
			AffixID:  rulebook.AffixID(a.AffixID),
			Tier:     a.Tier,
			Value:    a.Value,
			Position: shared.AffixPosition(a.Position),
		})
	}
	return out
}
