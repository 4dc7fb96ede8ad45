// Package invalidation names the listing views that a mutation makes stale
// and defines how the presentation side is told about them.
package invalidation

import (
	"context"

	"github.com/google/uuid"
)

// Key is a listing path as the client application knows it.
type Key string

const (
	Dashboard      Key = "/"
	Clients        Key = "/clients"
	Procedures     Key = "/procedures"
	Appointments   Key = "/appointments"
	BookingOptions Key = "/appointments/new"
)

// Notifier receives the stale keys of an owner after a successful write.
type Notifier interface {
	Invalidate(ctx context.Context, ownerID uuid.UUID, keys ...Key) error
}

// Result is what a mutation hands back: the written value and the views it
// made stale.
type Result[T any] struct {
	Value T
	Stale []Key
}

// Strings is a convenience for JSON responses.
func Strings(keys []Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

// Version counts the evictions of one listing key. A cache write carries
// the version seen before the rows were loaded and is dropped if an
// eviction happened since.
type Version int64

// Cache stores rendered listing rows per owner and evicts them when a
// mutation reports them stale.
type Cache interface {
	Notifier
	Load(ctx context.Context, ownerID uuid.UUID, key Key, dest any) (Version, bool, error)
	Store(ctx context.Context, ownerID uuid.UUID, key Key, seen Version, value any) error
}
