// Package imageprobe checks gallery image URLs for reachability so dead
// links are dropped at ingestion time.
package imageprobe

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"stayfinder/internal/adapters/observability"
)

type Prober struct {
	hc      *http.Client
	workers int
}

func New(workers int, timeout time.Duration) *Prober {
	if workers <= 0 {
		workers = 8
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Prober{
		hc:      &http.Client{Timeout: timeout},
		workers: workers,
	}
}

// Validate issues a HEAD request per URL concurrently and returns the URLs
// that answered 2xx, preserving relative order. A failed probe never aborts
// the others; the URL is silently excluded. All failing yields an empty
// slice, not an error.
func (p *Prober) Validate(ctx context.Context, urls []string) []string {
	alive := make([]bool, len(urls))

	g := new(errgroup.Group)
	g.SetLimit(p.workers)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			alive[i] = p.head(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]string, 0, len(urls))
	for i, u := range urls {
		if alive[i] {
			out = append(out, u)
		}
	}
	return out
}

func (p *Prober) head(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		observability.ObserveProbe("error")
		return false
	}
	start := time.Now()
	resp, err := p.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("imageprobe", "HEAD", 0, time.Since(start))
		observability.ObserveProbe("error")
		return false
	}
	resp.Body.Close()
	observability.ObserveExternal("imageprobe", "HEAD", resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		observability.ObserveProbe("ok")
		return true
	}
	observability.ObserveProbe("dead")
	return false
}
