// Package cache keeps fetched profile data keyed by the endpoint it came from.
// Entries go stale after a TTL and mutations invalidate them by key prefix,
// so the next read refetches from the provider.
package cache

import (
	"context"
	"strconv"
	"time"
)

// DefaultTTL is how long a fetched result is served before refetching
const DefaultTTL = 60 * time.Second

// ProfilesKey identifies the profile list. Invalidating it also drops every
// single-profile entry since those share the prefix.
const ProfilesKey = "/api/profiles"

// ProfileKey identifies one profile
func ProfileKey(id int64) string {
	return ProfilesKey + "/" + strconv.FormatInt(id, 10)
}

// Store is a query cache. Values are stored as JSON so callers always get
// their own copy back.
type Store interface {
	// Get decodes the entry into dst and reports whether it was present and fresh
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Invalidate drops every entry whose key starts with prefix
	Invalidate(ctx context.Context, prefix string) error
	Health(ctx context.Context) error
	Close() error
}
