package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/l1jgo/bestiary/internal/lore"
)

// RedisLoreStore keeps every record as one JSON field of a single hash,
// keyed by race id.
type RedisLoreStore struct {
	client *redis.Client
	key    string
}

// NewRedisLoreStore connects to addr and checks the connection.
func NewRedisLoreStore(ctx context.Context, addr string, db int, prefix string) (*RedisLoreStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	if prefix == "" {
		prefix = "bestiary"
	}
	return &RedisLoreStore{client: client, key: prefix + ":lore"}, nil
}

func (s *RedisLoreStore) Load(ctx context.Context) ([]lore.Record, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("load lore: %w", err)
	}
	result := make([]lore.Record, 0, len(fields))
	for field, raw := range fields {
		var row LoreRow
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			return nil, fmt.Errorf("decode lore %s: %w", field, err)
		}
		rec, err := row.Record()
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RaceID < result[j].RaceID })
	return result, nil
}

func (s *RedisLoreStore) Save(ctx context.Context, recs []lore.Record) error {
	if len(recs) == 0 {
		return nil
	}
	values := make([]any, 0, 2*len(recs))
	for _, rec := range recs {
		raw, err := json.Marshal(RowFromRecord(rec))
		if err != nil {
			return fmt.Errorf("encode lore race %d: %w", rec.RaceID, err)
		}
		values = append(values, strconv.Itoa(rec.RaceID), raw)
	}
	if err := s.client.HSet(ctx, s.key, values...).Err(); err != nil {
		return fmt.Errorf("save lore: %w", err)
	}
	return nil
}

func (s *RedisLoreStore) Close() error {
	return s.client.Close()
}
