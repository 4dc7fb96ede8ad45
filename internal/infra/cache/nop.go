package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
)

// Nop is used when no Redis is configured: every read misses and every
// write or eviction succeeds.
type Nop struct{}

func (Nop) Load(context.Context, uuid.UUID, invalidation.Key, any) (invalidation.Version, bool, error) {
	return 0, false, nil
}

func (Nop) Store(context.Context, uuid.UUID, invalidation.Key, invalidation.Version, any) error {
	return nil
}

func (Nop) Invalidate(context.Context, uuid.UUID, ...invalidation.Key) error { return nil }

var _ invalidation.Cache = Nop{}
