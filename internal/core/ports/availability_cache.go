package ports

import "context"

// AvailabilityCache memoises username/email availability lookups for a short
// TTL. It is advisory only: callers fall through to the repository on a miss
// or error, and the store's unique indexes remain the source of truth.
type AvailabilityCache interface {
	// Get returns the cached availability and whether an entry was found.
	Get(ctx context.Context, kind, value string) (available bool, found bool)
	Set(ctx context.Context, kind, value string, available bool)
}
