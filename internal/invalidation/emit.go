package invalidation

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/logging"
)

// Emit reports keys to n and returns them. The write has already
// happened, so a notifier failure is only logged.
func Emit(
	ctx context.Context,
	n Notifier,
	log logging.Logger,
	ownerID uuid.UUID,
	keys ...Key,
) []Key {

	if n != nil {
		if err := n.Invalidate(ctx, ownerID, keys...); err != nil {
			log.Warn(ctx, "invalidation failed",
				"owner", ownerID,
				"keys", Strings(keys),
				"err", err,
			)
		}
	}
	return keys
}

// Cached serves key from c when present and otherwise calls load and
// stores its result. The store is skipped when key was evicted while load
// ran. Cache failures degrade to a direct load.
func Cached[T any](
	ctx context.Context,
	c Cache,
	log logging.Logger,
	ownerID uuid.UUID,
	key Key,
	load func(context.Context) (T, error),
) (T, error) {

	var (
		out      T
		seen     Version
		storable bool
	)
	if c != nil {
		v, hit, err := c.Load(ctx, ownerID, key, &out)
		if err != nil {
			log.Warn(ctx, "listing cache read failed", "key", string(key), "err", err)
		}
		if hit {
			return out, nil
		}
		seen, storable = v, err == nil
	}

	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	if storable {
		if err := c.Store(ctx, ownerID, key, seen, out); err != nil {
			log.Warn(ctx, "listing cache write failed", "key", string(key), "err", err)
		}
	}
	return out, nil
}
