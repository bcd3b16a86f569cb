package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
	"stayfinder/internal/store/memory"
)

type fakeCache struct {
	store map[string][]byte
	gets  int
	hits  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.gets++
	if c.store == nil {
		return false, nil
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func seededStore() *memory.Store {
	s := memory.New()
	s.Replace([]domain.Hotel{
		hotel(1, "Grand Hotel", "Paris", 100, 4, 4.5, 1),
		hotel(2, "Budget Inn", "London", 80, 3, 4.8, 2),
	})
	return s
}

func TestListHotels_CacheMissThenHit(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(seededStore(), cache, 10*time.Minute)
	ctx := context.Background()
	f := domain.Filters{SortBy: domain.SortPriceAsc}

	first := q.ListHotels(ctx, f)
	if len(first) != 2 || first[0].ID != 2 {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if cache.hits != 0 || len(cache.store) != 1 {
		t.Fatalf("expected a populated cache after miss: hits=%d entries=%d", cache.hits, len(cache.store))
	}

	second := q.ListHotels(ctx, f)
	if cache.hits != 1 {
		t.Fatalf("expected cache hit on identical query, hits=%d", cache.hits)
	}
	if len(second) != 2 || second[0].ID != 2 {
		t.Fatalf("unexpected cached result: %+v", second)
	}
}

func TestListHotels_VersionBumpInvalidates(t *testing.T) {
	store := seededStore()
	cache := &fakeCache{}
	q := app.NewQueryService(store, cache, 10*time.Minute)
	ctx := context.Background()
	f := domain.Filters{}

	if got := q.ListHotels(ctx, f); len(got) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(got))
	}

	// wholesale replace bumps the version; the old entry is unreachable
	store.Replace([]domain.Hotel{hotel(3, "Fresh Place", "Rome", 50, 2, 6, 0.5)})
	got := q.ListHotels(ctx, f)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected fresh snapshot after replace, got %+v", got)
	}
}

func TestListHotels_NoCacheConfigured(t *testing.T) {
	q := app.NewQueryService(seededStore(), nil, time.Minute)
	if got := q.ListHotels(context.Background(), domain.Filters{Query: "grand"}); len(got) != 1 {
		t.Fatalf("expected direct pipeline result, got %+v", got)
	}
}

func TestGetHotel(t *testing.T) {
	q := app.NewQueryService(seededStore(), nil, time.Minute)

	h, err := q.GetHotel(1)
	if err != nil || h.Name != "Grand Hotel" {
		t.Fatalf("GetHotel(1) = %+v, %v", h, err)
	}
	if _, err := q.GetHotel(404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCities(t *testing.T) {
	q := app.NewQueryService(seededStore(), nil, time.Minute)

	if len(q.Cities()) == 0 {
		t.Fatalf("expected bundled cities")
	}
	c, err := q.City("paris")
	if err != nil || c.Country != "France" {
		t.Fatalf("City(paris) = %+v, %v", c, err)
	}
	if _, err := q.City("Gotham"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown city, got %v", err)
	}
}

func TestCityHotels_ScopesToCity(t *testing.T) {
	q := app.NewQueryService(seededStore(), nil, time.Minute)

	got := q.CityHotels(context.Background(), "London", domain.Filters{})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("city scoping failed: %+v", got)
	}
}
