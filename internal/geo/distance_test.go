package geo_test

import (
	"math"
	"testing"

	"stayfinder/internal/geo"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	lat, lon := 40.7128, -74.006
	if d := geo.Distance(lat, lon, lat, lon); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	// London <-> Paris
	d1 := geo.Distance(51.5074, -0.1278, 48.8566, 2.3522)
	d2 := geo.Distance(48.8566, 2.3522, 51.5074, -0.1278)
	if math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistance_KnownPair(t *testing.T) {
	// London to Paris is ~343 km city center to city center.
	d := geo.Distance(51.5074, -0.1278, 48.8566, 2.3522)
	if d < 330 || d > 350 {
		t.Fatalf("London-Paris distance out of range: %v", d)
	}
}
