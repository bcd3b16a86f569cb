package app

import (
	"sort"
	"strings"

	"stayfinder/internal/domain"
)

// ApplyFilters derives the filtered, sorted view of hotels. Predicates are
// conjunctive and each is inactive when its bound is unset; the sort is
// stable so ties keep their prior relative order. Pure and idempotent: the
// input slice is never modified.
func ApplyFilters(hotels []domain.Hotel, f domain.Filters) []domain.Hotel {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if f.City != "" && !strings.EqualFold(h.Location.City, f.City) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(h.Name), q) &&
			!strings.Contains(strings.ToLower(h.Location.City), q) {
			continue
		}
		if f.MinPrice != nil && h.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && h.Price > *f.MaxPrice {
			continue
		}
		// exact-set membership: a 4.5-star hotel does not match stars=[4]
		if len(f.Stars) > 0 && !containsFloat(f.Stars, h.Stars) {
			continue
		}
		if len(f.UserRatings) > 0 && !meetsAnyFloor(f.UserRatings, h.UserRating) {
			continue
		}
		if f.MaxDistance != nil && h.DistanceToCenter > *f.MaxDistance {
			continue
		}
		out = append(out, h)
	}

	sortHotels(out, f.SortBy)
	return out
}

func containsFloat(set []float64, v float64) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// meetsAnyFloor is OR across the selected thresholds: the hotel passes when
// its rating meets or exceeds at least one of them.
func meetsAnyFloor(floors []float64, rating float64) bool {
	for _, f := range floors {
		if rating >= f {
			return true
		}
	}
	return false
}

func sortHotels(hs []domain.Hotel, by domain.SortOption) {
	var less func(a, b domain.Hotel) bool
	switch by {
	case domain.SortPriceAsc:
		less = func(a, b domain.Hotel) bool { return a.Price < b.Price }
	case domain.SortPriceDesc:
		less = func(a, b domain.Hotel) bool { return a.Price > b.Price }
	case domain.SortRatingAsc:
		less = func(a, b domain.Hotel) bool { return a.UserRating < b.UserRating }
	case domain.SortRatingDesc:
		less = func(a, b domain.Hotel) bool { return a.UserRating > b.UserRating }
	case domain.SortStarsAsc:
		less = func(a, b domain.Hotel) bool { return a.Stars < b.Stars }
	case domain.SortStarsDesc:
		less = func(a, b domain.Hotel) bool { return a.Stars > b.Stars }
	case domain.SortDistanceAsc:
		less = func(a, b domain.Hotel) bool { return a.DistanceToCenter < b.DistanceToCenter }
	case domain.SortDistanceDesc:
		less = func(a, b domain.Hotel) bool { return a.DistanceToCenter > b.DistanceToCenter }
	default:
		// unknown or empty selector keeps feed order
		return
	}
	sort.SliceStable(hs, func(i, j int) bool { return less(hs[i], hs[j]) })
}
