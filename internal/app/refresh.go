package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
	"stayfinder/internal/geo"
	"stayfinder/internal/shared"
)

// RefreshService fetches the feed, maps and enriches the records, and
// installs them as the new snapshot. A failed fetch leaves the previous
// snapshot untouched and records the error for the status surface.
type RefreshService struct {
	feed    domain.FeedClient
	prober  domain.ImageProber // nil disables gallery validation
	store   domain.Snapshots
	workers int64
}

func NewRefreshService(feed domain.FeedClient, prober domain.ImageProber, store domain.Snapshots, workers int) *RefreshService {
	if workers <= 0 {
		workers = 8
	}
	return &RefreshService{feed: feed, prober: prober, store: store, workers: int64(workers)}
}

// Refresh runs one fetch-map-enrich-swap cycle and returns the number of
// hotels installed.
func (s *RefreshService) Refresh(ctx context.Context) (int, error) {
	raw, err := s.feed.FetchHotels(ctx)
	if err != nil {
		s.store.SetRefreshError(err.Error())
		observability.ObserveRefresh("error")
		return 0, err
	}

	hotels := mapHotels(raw)
	for i := range hotels {
		hotels[i].DistanceToCenter = distanceToCenter(hotels[i])
	}

	if s.prober != nil {
		s.validateGalleries(ctx, hotels)
	}

	version := s.store.Replace(hotels)
	observability.ObserveRefresh("ok")
	log.Info().Int("hotels", len(hotels)).Uint64("version", version).Msg("snapshot installed")
	return len(hotels), nil
}

// Run refreshes on the given interval until ctx is canceled. Failures are
// logged and the loop keeps going with the previous snapshot.
func (s *RefreshService) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := s.Refresh(ctx); err != nil {
				log.Warn().Err(err).Msg("scheduled refresh failed; keeping previous snapshot")
			}
		}
	}
}

// distanceToCenter recomputes the km distance from the hotel to its city
// center. An unmatched city yields 0 rather than an error.
func distanceToCenter(h domain.Hotel) float64 {
	center, ok := shared.CenterFor(h.Location.City)
	if !ok {
		return 0
	}
	return geo.Distance(
		h.Location.Latitude, h.Location.Longitude,
		center.Latitude, center.Longitude,
	)
}

// validateGalleries probes each hotel's gallery with bounded concurrency
// across hotels; the prober fans out per URL internally. Probe failures
// only shrink galleries, never fail the refresh.
func (s *RefreshService) validateGalleries(ctx context.Context, hotels []domain.Hotel) {
	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup

	for i := range hotels {
		if len(hotels[i].Gallery) == 0 {
			continue
		}
		// context canceled: stop scheduling, remaining galleries stay as fetched
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)
			hotels[i].Gallery = s.prober.Validate(ctx, hotels[i].Gallery)
		}(i)
	}
	wg.Wait()
}
