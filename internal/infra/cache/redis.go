package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
)

const (
	keyPrefix     = "agenda:listing"
	versionPrefix = "agenda:listing-version"

	versionTTL = 24 * time.Hour
)

type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListingCache(client *redis.Client, ttl time.Duration) *RedisListingCache {
	return &RedisListingCache{client: client, ttl: ttl}
}

// Dial parses a redis:// URL and checks the server answers.
func Dial(ctx context.Context, url string, ttl time.Duration) (*RedisListingCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewRedisListingCache(client, ttl), nil
}

func ListingKey(ownerID uuid.UUID, key invalidation.Key) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, ownerID, key)
}

// VersionKey holds the eviction counter of a listing key.
func VersionKey(ownerID uuid.UUID, key invalidation.Key) string {
	return fmt.Sprintf("%s:%s:%s", versionPrefix, ownerID, key)
}

func (r *RedisListingCache) Load(
	ctx context.Context,
	ownerID uuid.UUID,
	key invalidation.Key,
	dest any,
) (invalidation.Version, bool, error) {

	pipe := r.client.Pipeline()
	get := pipe.Get(ctx, ListingKey(ownerID, key))
	ver := pipe.Get(ctx, VersionKey(ownerID, key))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, err
	}

	seen, err := versionOf(ver)
	if err != nil {
		return 0, false, err
	}

	raw, err := get.Bytes()
	if errors.Is(err, redis.Nil) {
		return seen, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return 0, false, fmt.Errorf("decode cached listing: %w", err)
	}
	return seen, true, nil
}

// Store writes value only while the version of key is still seen.
func (r *RedisListingCache) Store(
	ctx context.Context,
	ownerID uuid.UUID,
	key invalidation.Key,
	seen invalidation.Version,
	value any,
) error {

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}

	vkey := VersionKey(ownerID, key)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := versionOf(tx.Get(ctx, vkey))
		if err != nil {
			return err
		}
		if current != seen {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, ListingKey(ownerID, key), raw, r.ttl)
			return nil
		})
		return err
	}, vkey)

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate deletes the keys and bumps their versions in one transaction.
func (r *RedisListingCache) Invalidate(
	ctx context.Context,
	ownerID uuid.UUID,
	keys ...invalidation.Key,
) error {

	if len(keys) == 0 {
		return nil
	}

	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, k := range keys {
			vkey := VersionKey(ownerID, k)
			p.Del(ctx, ListingKey(ownerID, k))
			p.Incr(ctx, vkey)
			p.Expire(ctx, vkey, versionTTL)
		}
		return nil
	})
	return err
}

func versionOf(cmd *redis.StringCmd) (invalidation.Version, error) {
	v, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read listing version: %w", err)
	}
	return invalidation.Version(v), nil
}

func (r *RedisListingCache) Close() error {
	return r.client.Close()
}

var _ invalidation.Cache = (*RedisListingCache)(nil)
