package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

// QueryService derives read views from the current snapshot. Results are
// cached per (snapshot version, filter hash); a refresh bumps the version
// so stale entries simply age out.
type QueryService struct {
	store    domain.Snapshots
	cache    domain.Cache // nil-safe: no cache means recompute every time
	cacheTTL time.Duration
}

func NewQueryService(store domain.Snapshots, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: store, cache: cache, cacheTTL: ttl}
}

func (s *QueryService) ListHotels(ctx context.Context, f domain.Filters) []domain.Hotel {
	hotels, version := s.store.Snapshot()
	if s.cache == nil {
		return ApplyFilters(hotels, f)
	}

	key := fmt.Sprintf("hotels:%d:%s", version, filterKey(f))
	var cached []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached
	}

	out := ApplyFilters(hotels, f)

	// size guard; oversized derived views are cheap enough to recompute
	if b, _ := json.Marshal(out); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, out, s.cacheTTL)
	}
	return out
}

func (s *QueryService) GetHotel(id int64) (domain.Hotel, error) {
	h, ok := s.store.Get(id)
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

func (s *QueryService) Cities() []domain.City {
	return shared.Cities
}

func (s *QueryService) City(name string) (domain.City, error) {
	c, ok := shared.CityByName(name)
	if !ok {
		return domain.City{}, domain.ErrNotFound
	}
	return c, nil
}

// CityHotels scopes the filters to one city; unknown city names are not an
// error here, they just match nothing.
func (s *QueryService) CityHotels(ctx context.Context, name string, f domain.Filters) []domain.Hotel {
	f.City = name
	return s.ListHotels(ctx, f)
}

func (s *QueryService) Stats() domain.SnapshotStats {
	return s.store.Stats()
}

// filterKey hashes the canonical JSON of the filter state. Struct field
// order is fixed, so identical filters always share a key.
func filterKey(f domain.Filters) string {
	b, _ := json.Marshal(f)
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
