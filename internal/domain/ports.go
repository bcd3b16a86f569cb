package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrFeedUnavailable = errors.New("hotel feed unavailable")
)

// FeedClient fetches the raw hotel listing from the upstream feed.
// Records come back pre-enrichment as loosely-typed JSON objects.
type FeedClient interface {
	FetchHotels(ctx context.Context) ([]map[string]any, error)
}

// ImageProber checks gallery URLs for reachability. It returns the
// subsequence of urls that answered successfully, preserving relative
// order; per-URL failures are isolated and never an error.
type ImageProber interface {
	Validate(ctx context.Context, urls []string) []string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Snapshots holds the process-wide hotel list. The list is replaced
// wholesale on refresh and never patched in place; Snapshot returns the
// current list plus a version that increments on every replace.
type Snapshots interface {
	Replace(hotels []Hotel) uint64
	Snapshot() ([]Hotel, uint64)
	Get(id int64) (Hotel, bool)
	Stats() SnapshotStats
	SetRefreshError(msg string)
}

type SnapshotStats struct {
	Version     uint64    `json:"version"`
	Count       int       `json:"count"`
	RefreshedAt time.Time `json:"refreshedAt"`
	LastError   string    `json:"lastError,omitempty"`
}
