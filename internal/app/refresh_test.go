package app_test

import (
	"context"
	"errors"
	"testing"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
	"stayfinder/internal/store/memory"
)

// ---- fakes ----

type fakeFeed struct {
	hotels []map[string]any
	err    error
	calls  int
}

func (f *fakeFeed) FetchHotels(ctx context.Context) ([]map[string]any, error) {
	f.calls++
	return f.hotels, f.err
}

type fakeProber struct {
	dead map[string]bool
}

func (p *fakeProber) Validate(ctx context.Context, urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if !p.dead[u] {
			out = append(out, u)
		}
	}
	return out
}

// ---- tests ----

func TestRefresh_EnrichesAndInstallsSnapshot(t *testing.T) {
	feed := &fakeFeed{hotels: []map[string]any{
		{
			"id":   1.0,
			"name": "Thames View",
			"location": map[string]any{
				"city": "London", "latitude": 51.5033, "longitude": -0.1196,
			},
			"price": 150.0, "currency": "GBP",
			"gallery":          []any{"https://img.example/ok.jpg", "https://img.example/dead.jpg"},
			"distanceToCenter": 42.0, // untrusted, must be recomputed
		},
		{
			"id":   2.0,
			"name": "Nowhere Lodge",
			"location": map[string]any{
				"city": "Atlantis", "latitude": 10.0, "longitude": 10.0,
			},
			"price": 60.0, "currency": "USD",
		},
	}}
	prober := &fakeProber{dead: map[string]bool{"https://img.example/dead.jpg": true}}
	store := memory.New()

	svc := app.NewRefreshService(feed, prober, store, 4)
	n, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 hotels, got %d", n)
	}

	h, ok := store.Get(1)
	if !ok {
		t.Fatalf("hotel 1 missing from snapshot")
	}
	// ~0.75 km from the London center; certainly not the feed's 42
	if h.DistanceToCenter <= 0 || h.DistanceToCenter > 2 {
		t.Fatalf("distance not recomputed: %v", h.DistanceToCenter)
	}
	if len(h.Gallery) != 1 || h.Gallery[0] != "https://img.example/ok.jpg" {
		t.Fatalf("gallery not validated: %v", h.Gallery)
	}

	h2, _ := store.Get(2)
	if h2.DistanceToCenter != 0 {
		t.Fatalf("unknown city must yield distance 0, got %v", h2.DistanceToCenter)
	}
}

func TestRefresh_FeedFailureKeepsPreviousSnapshot(t *testing.T) {
	store := memory.New()
	store.Replace([]domain.Hotel{{ID: 9, Name: "Keeper"}})

	feed := &fakeFeed{err: domain.ErrFeedUnavailable}
	svc := app.NewRefreshService(feed, nil, store, 4)

	if _, err := svc.Refresh(context.Background()); !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Fatalf("expected feed error, got %v", err)
	}

	hs, v := store.Snapshot()
	if v != 1 || len(hs) != 1 || hs[0].Name != "Keeper" {
		t.Fatalf("previous snapshot lost: v=%d %+v", v, hs)
	}
	if st := store.Stats(); st.LastError == "" {
		t.Fatalf("refresh error not recorded")
	}
}

func TestRefresh_NilProberSkipsValidation(t *testing.T) {
	feed := &fakeFeed{hotels: []map[string]any{
		{"id": 1.0, "name": "A", "gallery": []any{"https://img.example/x.jpg"}},
	}}
	store := memory.New()

	svc := app.NewRefreshService(feed, nil, store, 4)
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	h, _ := store.Get(1)
	if len(h.Gallery) != 1 {
		t.Fatalf("gallery should pass through unprobed: %v", h.Gallery)
	}
}
