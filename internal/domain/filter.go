package domain

// SortOption selects the single sort key applied after filtering.
// Anything outside the known set leaves the list in feed order.
type SortOption string

const (
	SortPriceAsc     SortOption = "priceAsc"
	SortPriceDesc    SortOption = "priceDesc"
	SortRatingAsc    SortOption = "ratingAsc"
	SortRatingDesc   SortOption = "ratingDesc"
	SortStarsAsc     SortOption = "starsAsc"
	SortStarsDesc    SortOption = "starsDesc"
	SortDistanceAsc  SortOption = "distanceAsc"
	SortDistanceDesc SortOption = "distanceDesc"
)

// Filters is the transient query state. Every predicate is optional and
// inactive when its bound is unset/empty; all active predicates are AND'd.
// MinPrice > MaxPrice is not rejected — it simply yields an empty result.
type Filters struct {
	Query string // matches name or city, case-insensitive substring
	City  string // exact city name, case-insensitive (city pages)

	MinPrice *float64
	MaxPrice *float64

	// Stars is exact-set membership, not "at least". Star values in the
	// feed are fractional (4.5), so an integer-only set never matches a
	// half-star hotel.
	Stars []float64

	// UserRatings are floors: a hotel passes when its rating meets or
	// exceeds at least one selected threshold.
	UserRatings []float64

	MaxDistance *float64 // km

	SortBy SortOption
}
