package store

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dentio:slot:"

// Redis keeps each slot in a redis string key. Used when several dentio
// instances should see the same records (still last-writer-wins per slot).
type Redis struct {
	rdb *goredis.Client
}

func NewRedis(rdb *goredis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) key(slot string) string { return redisKeyPrefix + slot }

func (r *Redis) Load(ctx context.Context, slot string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, r.key(slot)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load slot %q: %w", slot, err)
	}
	return data, nil
}

func (r *Redis) Save(ctx context.Context, slot string, data []byte) error {
	if err := r.rdb.Set(ctx, r.key(slot), data, 0).Err(); err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

func (r *Redis) Has(ctx context.Context, slot string) (bool, error) {
	n, err := r.rdb.Exists(ctx, r.key(slot)).Result()
	if err != nil {
		return false, fmt.Errorf("stat slot %q: %w", slot, err)
	}
	return n > 0, nil
}

func (r *Redis) Delete(ctx context.Context, slot string) error {
	if err := r.rdb.Del(ctx, r.key(slot)).Err(); err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}
